// Package qmgr implements the qmgr line-oriented administrative REPL: its
// tokenizer, directive parser, active-object-set executor, and formatted
// print output.
package qmgr

import "fmt"

// ParseQuoted is the shared quote-aware value parser (pbs_quote_parse):
// given the unconsumed remainder of a line starting at an attr-op value, it
// returns the parsed value and the index of the first byte past it.
//
// Rules:
//   - '&' is reserved and always illegal.
//   - Single or double quotes delimit a quoted region; switching quote
//     styles mid-value is not allowed (the other quote character is literal
//     once inside one kind of quote).
//   - Outside quotes, ',' and unquoted whitespace terminate the value.
//   - allowWhite accepts unquoted whitespace inside the value (used for
//     entity-limit attributes, whose bracketed values legitimately contain
//     spaces).
//   - An unterminated quote is an error.
func ParseQuoted(s string, allowWhite bool) (value string, next int, err error) {
	var out []byte
	var quote byte // 0, '\'', or '"'
	i := 0
	for i < len(s) {
		c := s[i]

		if c == '&' {
			return "", i, fmt.Errorf("illegal character '&' at offset %d", i)
		}
		if !isPrintable(c) && quote == 0 {
			return "", i, fmt.Errorf("non-printable character at offset %d", i)
		}

		if quote != 0 {
			if c == quote {
				quote = 0
				i++
				continue
			}
			out = append(out, c)
			i++
			continue
		}

		switch {
		case c == '\'' || c == '"':
			if len(out) > 0 {
				// A quote opening mid-token is allowed; PBS values may mix
				// e.g. abc'def ghi'.
			}
			quote = c
			i++
		case c == ',':
			return string(out), i, nil
		case c == ' ' || c == '\t':
			if allowWhite {
				out = append(out, c)
				i++
				continue
			}
			return string(out), i, nil
		default:
			out = append(out, c)
			i++
		}
	}
	if quote != 0 {
		return "", i, fmt.Errorf("unterminated quote starting with %q", quote)
	}
	return string(out), i, nil
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
