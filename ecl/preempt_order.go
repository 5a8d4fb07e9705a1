package ecl

import (
	"fmt"
	"strconv"
	"strings"
)

// PreemptMethod is one step a scheduler tries, in order, when preempting a
// job to make room for a higher-priority one.
type PreemptMethod int

// Preemption methods, matching the C enum preempt_method ordering.
const (
	PreemptSuspend PreemptMethod = iota
	PreemptCheckpoint
	PreemptRequeue
	PreemptDelete
)

func (m PreemptMethod) letter() byte {
	switch m {
	case PreemptSuspend:
		return 'S'
	case PreemptCheckpoint:
		return 'C'
	case PreemptRequeue:
		return 'R'
	case PreemptDelete:
		return 'D'
	default:
		return '?'
	}
}

// PreemptOrderRange is one "<methods> <percentage>" step of a preempt_order
// value: Methods lists the preemption attempts to try, in order, for jobs
// below the priority percentage cutoff named by HighRange.
type PreemptOrderRange struct {
	Methods   []PreemptMethod
	HighRange int
}

var letterToMethod = map[byte]PreemptMethod{
	'S': PreemptSuspend,
	'C': PreemptCheckpoint,
	'R': PreemptRequeue,
	'D': PreemptDelete,
}

// ParsePreemptOrder parses a scheduler preempt_order attribute value, a
// whitespace-separated sequence of method-letter tokens (each of "S", "C",
// "R", "D" used at most once per token) optionally followed by an integer
// percentage boundary, e.g. "SCR 50 SC 25 S". The last token implicitly
// covers priority 0 up to the previous boundary.
func ParsePreemptOrder(value string) ([]PreemptOrderRange, error) {
	toks := strings.Fields(value)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty preempt_order value")
	}
	if toks[0] != "" && toks[0][0] >= '0' && toks[0][0] <= '9' {
		return nil, fmt.Errorf("malformed preempt_order value %q: must start with a method token", value)
	}

	var ranges []PreemptOrderRange
	high := 100
	i := 0
	for i < len(toks) {
		tok := toks[i]
		if len(tok) > 0 && tok[0] >= '0' && tok[0] <= '9' {
			return nil, fmt.Errorf("malformed preempt_order value %q: unexpected number token %q", value, tok)
		}
		var methods []PreemptMethod
		seen := make(map[byte]bool)
		for j := 0; j < len(tok); j++ {
			m, ok := letterToMethod[tok[j]]
			if !ok {
				return nil, fmt.Errorf("malformed preempt_order value %q: unknown method letter %q", value, tok[j])
			}
			if seen[tok[j]] {
				return nil, fmt.Errorf("malformed preempt_order value %q: method %q repeated in token %q", value, tok[j], tok)
			}
			seen[tok[j]] = true
			methods = append(methods, m)
		}
		i++
		thisHigh := high
		if i < len(toks) && len(toks[i]) > 0 && toks[i][0] >= '0' && toks[i][0] <= '9' {
			n, err := strconv.Atoi(toks[i])
			if err != nil {
				return nil, fmt.Errorf("malformed preempt_order value %q: bad percentage %q", value, toks[i])
			}
			high = n
			i++
		}
		ranges = append(ranges, PreemptOrderRange{Methods: methods, HighRange: thisHigh})
	}
	return ranges, nil
}

// FormatPreemptOrder renders ranges back to the canonical token form.
func FormatPreemptOrder(ranges []PreemptOrderRange) string {
	var parts []string
	for i, r := range ranges {
		letters := make([]byte, len(r.Methods))
		for j, m := range r.Methods {
			letters[j] = m.letter()
		}
		parts = append(parts, string(letters))
		if i < len(ranges)-1 {
			parts = append(parts, strconv.Itoa(ranges[i+1].HighRange))
		}
	}
	return strings.Join(parts, " ")
}

// VerifyPreemptOrder implements the VVPreemptOrder value verifier.
func VerifyPreemptOrder(value string) error {
	_, err := ParsePreemptOrder(value)
	return err
}
