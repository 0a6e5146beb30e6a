package template_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tracekit/logwire"
	logwireerrors "github.com/tracekit/logwire/errors"
	"github.com/tracekit/logwire/template"
)

func lit(s string) template.Fragment {
	return template.Fragment{Kind: template.FragmentLiteral, Lit: s}
}

func param(h logwire.DisplayHint) template.Fragment {
	return template.Fragment{Kind: template.FragmentParameter, Hint: h}
}

func fragmentsEqual(a, b []template.Fragment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []template.Fragment
	}{
		{
			name:   "empty",
			format: "",
			want:   nil,
		},
		{
			name:   "literal only",
			format: "plain text",
			want:   []template.Fragment{lit("plain text")},
		},
		{
			name:   "default and hex parameters",
			format: "foo {} bar {:x}",
			want: []template.Fragment{
				lit("foo "),
				param(logwire.HintDefault),
				lit(" bar "),
				param(logwire.HintLowerHex),
			},
		},
		{
			name:   "all hints",
			format: "foo {} bar {:x} test {:X} ayy {:ipv4} lmao {:IPv4} hello {:ipv6} world {:IPv6}",
			want: []template.Fragment{
				lit("foo "),
				param(logwire.HintDefault),
				lit(" bar "),
				param(logwire.HintLowerHex),
				lit(" test "),
				param(logwire.HintUpperHex),
				lit(" ayy "),
				param(logwire.HintIPv4),
				lit(" lmao "),
				param(logwire.HintIPv4),
				lit(" hello "),
				param(logwire.HintIPv6),
				lit(" world "),
				param(logwire.HintIPv6),
			},
		},
		{
			name:   "escaped braces collapse",
			format: "a {{literal}} b",
			want:   []template.Fragment{lit("a {literal} b")},
		},
		{
			name:   "escaped braces around parameter",
			format: "{{{}}}",
			want: []template.Fragment{
				lit("{"),
				param(logwire.HintDefault),
				lit("}"),
			},
		},
		{
			name:   "adjacent parameters",
			format: "{}{:X}",
			want: []template.Fragment{
				param(logwire.HintDefault),
				param(logwire.HintUpperHex),
			},
		},
		{
			name:   "leading parameter",
			format: "{} tail",
			want: []template.Fragment{
				param(logwire.HintDefault),
				lit(" tail"),
			},
		},
		{
			name:   "trailing parameter",
			format: "head {}",
			want: []template.Fragment{
				lit("head "),
				param(logwire.HintDefault),
			},
		},
		{
			name:   "multibyte literal",
			format: "höhe {} müde",
			want: []template.Fragment{
				lit("höhe "),
				param(logwire.HintDefault),
				lit(" müde"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := template.Parse(tt.format)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.format, err)
			}
			if !fragmentsEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		kind   logwireerrors.Kind
	}{
		{"missing closing brace", "bad {", logwireerrors.KindMissingBrace},
		{"missing closing brace with hint", "bad {:x", logwireerrors.KindMissingBrace},
		{"unmatched closing brace", "bad }", logwireerrors.KindUnmatchedBrace},
		{"unmatched closing brace before parameter", "a } b {}", logwireerrors.KindUnmatchedBrace},
		{"odd closing brace run", "a }}} b", logwireerrors.KindUnmatchedBrace},
		{"empty hint", "{:}", logwireerrors.KindEmptyHint},
		{"unknown hint", "{:bogus}", logwireerrors.KindUnknownHint},
		{"wrong case hint", "{:IPV4}", logwireerrors.KindUnknownHint},
		{"content without colon", "{x}", logwireerrors.KindUnexpectedContent},
		{"positional index unsupported", "{0}", logwireerrors.KindUnexpectedContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags, err := template.Parse(tt.format)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error", tt.format, frags)
			}
			want := &logwireerrors.Error{Phase: logwireerrors.PhaseParse, Kind: tt.kind}
			if !errors.Is(err, want) {
				t.Errorf("Parse(%q) error = %v, want kind %s", tt.format, err, tt.kind)
			}
			if frags != nil {
				t.Errorf("Parse(%q) returned fragments alongside error", tt.format)
			}
		})
	}
}

// Error messages must name the offending text so the call site can be fixed
// from the diagnostic alone.
func TestParseErrorNamesOffender(t *testing.T) {
	_, err := template.Parse("{:bogus}")
	if err == nil || !strings.Contains(err.Error(), `"bogus"`) {
		t.Errorf("error %v does not name the bad hint", err)
	}

	_, err = template.Parse("{stray}")
	if err == nil || !strings.Contains(err.Error(), `"stray"`) {
		t.Errorf("error %v does not name the unexpected content", err)
	}
}

// reconstruct renders fragments back into template syntax, re-escaping braces
// in literals.
func reconstruct(frags []template.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		switch f.Kind {
		case template.FragmentLiteral:
			escaped := strings.ReplaceAll(f.Lit, "{", "{{")
			escaped = strings.ReplaceAll(escaped, "}", "}}")
			b.WriteString(escaped)
		case template.FragmentParameter:
			if f.Hint == logwire.HintDefault {
				b.WriteString("{}")
			} else {
				b.WriteString("{:" + f.Hint.String() + "}")
			}
		}
	}
	return b.String()
}

func TestParseReconstruction(t *testing.T) {
	// Reconstructing from fragments must reproduce the template up to
	// brace-escaping normalization (hint keyword aliases normalize to their
	// lowercase form).
	templates := []string{
		"",
		"plain",
		"foo {} bar {:x}",
		"a {{literal}} b",
		"{}{:X}{:ipv4}{:ipv6}",
		"head {} middle {:x} tail",
		"{{{}}}",
	}

	for _, format := range templates {
		frags, err := template.Parse(format)
		if err != nil {
			t.Fatalf("Parse(%q): %v", format, err)
		}
		got := reconstruct(frags)
		if got != format {
			t.Errorf("reconstruct(Parse(%q)) = %q", format, got)
		}

		// Reconstruction must itself re-parse to the same fragments.
		again, err := template.Parse(got)
		if err != nil {
			t.Fatalf("re-Parse(%q): %v", got, err)
		}
		if !fragmentsEqual(frags, again) {
			t.Errorf("re-parse of %q diverged: %+v vs %+v", got, frags, again)
		}
	}
}
