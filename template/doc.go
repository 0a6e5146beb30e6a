// Package template parses logwire format templates into ordered fragments.
//
// A template is literal text interspersed with placeholder blocks:
//
//	"request from {:ipv4} took {} ms"
//
// Parse classifies the template into literal fragments and parameter
// fragments. Doubled braces escape to single braces inside literals
// ("{{" -> "{", "}}" -> "}"); a lone unmatched brace is a parse error.
// A placeholder body is either empty (default rendering) or a colon followed
// by a display hint keyword: x, X, ipv4, IPv4, ipv6 or IPv6.
//
//	frags, err := template.Parse("foo {} bar {:x}")
//	// [Literal "foo ", Parameter default, Literal " bar ", Parameter x]
//
// Fragment order is the template's left-to-right order. Record assembly
// relies on that order to pair parameter fragments with positional call-site
// arguments, so it must be preserved by any consumer of the fragment list.
//
// Parsing is a pure function: it runs once per distinct template, before any
// record is encoded, and shares no state between calls.
package template
