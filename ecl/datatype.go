package ecl

import (
	"fmt"
	"math"
	"strconv"

	"github.com/openpbs/go-pbs/attr"
)

// maxLong is the 32-bit LONG_MAX boundary the original datatype verifiers
// reject at, preserved here even on 64-bit Go so a value round-trips the
// same way through a mixed fleet of 32- and 64-bit servers.
const maxLong = math.MaxInt32

// datatypeVerifier checks pure syntax: it never needs catalog context beyond
// the entry's own Datatype ID, unlike a ValueVerifier.
type datatypeVerifier func(value string) error

var datatypeVerifiers = map[attr.DatatypeVerifierID]datatypeVerifier{
	attr.DVBool:       verifyBool,
	attr.DVShort:       verifyShort,
	attr.DVLong:        verifyLong,
	attr.DVLongLong:    verifyLongLong,
	attr.DVFloat:       verifyFloat,
	attr.DVSize:        verifySize,
	attr.DVTime:        verifyTime,
	attr.DVString:      verifyNonEmptyString,
	attr.DVEntityLimit: verifyEntityLimit,
}

func verifyBool(value string) error {
	if _, err := attr.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value %q", value)
	}
	return nil
}

func verifyShort(value string) error {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid short integer value %q", value)
	}
	if n > math.MaxInt16 || n < math.MinInt16 {
		return fmt.Errorf("short integer value %q out of range", value)
	}
	return nil
}

func verifyLong(value string) error {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", value)
	}
	if n >= maxLong {
		return fmt.Errorf("integer value %q exceeds maximum", value)
	}
	return nil
}

func verifyLongLong(value string) error {
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return fmt.Errorf("invalid long integer value %q", value)
	}
	return nil
}

func verifyFloat(value string) error {
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return fmt.Errorf("invalid float value %q", value)
	}
	return nil
}

func verifySize(value string) error {
	n, err := attr.ParseSize(value)
	if err != nil {
		return fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n >= maxLong {
		return fmt.Errorf("size value %q exceeds maximum", value)
	}
	return nil
}

func verifyTime(value string) error {
	if _, err := attr.ParseDuration(value); err != nil {
		return fmt.Errorf("invalid time value %q: %w", value, err)
	}
	return nil
}

func verifyNonEmptyString(value string) error {
	if value == "" {
		return fmt.Errorf("empty string value")
	}
	return nil
}

func verifyEntityLimit(value string) error {
	if _, err := attr.ParseEntityLimits(value); err != nil {
		return fmt.Errorf("invalid entity limit value %q: %w", value, err)
	}
	return nil
}

// VerifyDatatype runs the datatype verifier registered for id, if any. A
// missing id (DVNone, or one with no wired check) is not an error: not every
// catalog entry carries a syntactic verifier.
func VerifyDatatype(id attr.DatatypeVerifierID, value string) error {
	v, ok := datatypeVerifiers[id]
	if !ok {
		return nil
	}
	return v(value)
}
