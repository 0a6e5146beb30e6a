package template

import (
	"strings"

	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/errors"
)

// FragmentKind discriminates the two fragment forms.
type FragmentKind int

const (
	// FragmentLiteral is a span of literal template text.
	FragmentLiteral FragmentKind = iota
	// FragmentParameter is a `{}` or `{:hint}` placeholder.
	FragmentParameter
)

// Fragment is one parsed piece of a template. For literals, Lit holds the
// text with doubled braces collapsed; for parameters, Hint holds the display
// hint the matching argument must be encoded with.
type Fragment struct {
	Lit  string
	Kind FragmentKind
	Hint logwire.DisplayHint
}

// Parse splits a format template into fragments in strict left-to-right
// order. It returns a parse error for unmatched braces, placeholders with no
// closing brace, and malformed placeholder bodies; on error no fragments are
// returned.
func Parse(format string) ([]Fragment, error) {
	var frags []Fragment

	// Index after the `}` of the last placeholder.
	end := 0

	// Braces are ASCII, so byte scanning is UTF-8 safe.
	for i := 0; i < len(format); i++ {
		if format[i] != '{' {
			continue
		}

		if i+1 < len(format) && format[i+1] == '{' {
			// Escaped `{{`, still part of the pending literal.
			i++
			continue
		}

		if i > end {
			lit, err := unescapeLiteral(format[end:i])
			if err != nil {
				return nil, err
			}
			frags = append(frags, Fragment{Kind: FragmentLiteral, Lit: lit})
		}

		// The placeholder ends at the next `}`.
		rel := strings.IndexByte(format[i+1:], '}')
		if rel < 0 {
			return nil, errors.MissingBrace()
		}

		hint, err := parseParam(format[i+1 : i+1+rel])
		if err != nil {
			return nil, err
		}
		frags = append(frags, Fragment{Kind: FragmentParameter, Hint: hint})

		end = i + rel + 2
		i = end - 1
	}

	// Trailing literal.
	if end != len(format) {
		lit, err := unescapeLiteral(format[end:])
		if err != nil {
			return nil, err
		}
		frags = append(frags, Fragment{Kind: FragmentLiteral, Lit: lit})
	}

	return frags, nil
}

// unescapeLiteral collapses `{{` and `}}` to single braces and rejects any
// brace that does not pair up into an escape.
func unescapeLiteral(s string) (string, error) {
	// A run of braces toggles the flag per brace; a flag still set when a
	// non-brace character (or the end of the span) arrives means the run had
	// odd length, i.e. an unescaped brace.
	lastOpen := false
	lastClose := false
	for _, c := range s {
		switch c {
		case '{':
			lastOpen = !lastOpen
		case '}':
			lastClose = !lastClose
		default:
			if lastOpen {
				return "", errors.UnmatchedBrace('{')
			}
			if lastClose {
				return "", errors.UnmatchedBrace('}')
			}
		}
	}
	if lastOpen {
		return "", errors.UnmatchedBrace('{')
	}
	if lastClose {
		return "", errors.UnmatchedBrace('}')
	}

	if !strings.ContainsAny(s, "{}") {
		return s, nil
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "{{", "{"), "}}", "}"), nil
}

// parseParam parses a placeholder body (the text between the braces):
// empty for the default hint, or `:` followed by a hint keyword.
func parseParam(body string) (logwire.DisplayHint, error) {
	if body == "" {
		return logwire.HintDefault, nil
	}

	keyword, ok := strings.CutPrefix(body, ":")
	if !ok {
		return 0, errors.UnexpectedContent(body)
	}
	if keyword == "" {
		return 0, errors.EmptyHint()
	}

	switch keyword {
	case "x":
		return logwire.HintLowerHex, nil
	case "X":
		return logwire.HintUpperHex, nil
	case "ipv4", "IPv4":
		return logwire.HintIPv4, nil
	case "ipv6", "IPv6":
		return logwire.HintIPv6, nil
	}
	return 0, errors.UnknownHint(keyword)
}
