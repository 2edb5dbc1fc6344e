package htmlfmt

// Notes:
// - Tests Format through its public API only
// - Exact output is asserted for small fragments; larger fragments only check
//   the properties callers rely on (verbatim scripts, indentation, void tags)

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "nested elements are indented",
			input: "<div><p>Hello</p></div>",
			want:  "<div>\n <p>\n  Hello\n </p>\n</div>\n",
		},
		{
			name:  "single quoted attributes become double quoted",
			input: "<div class='a b'><span>x</span></div>",
			want:  "<div class=\"a b\">\n <span>\n  x\n </span>\n</div>\n",
		},
		{
			name:  "void element has no closing tag",
			input: `<div><img src="data:image/png;base64,AAA" alt=""></div>`,
			want:  "<div>\n <img src=\"data:image/png;base64,AAA\" alt=\"\">\n</div>\n",
		},
		{
			name:  "whitespace only text is dropped",
			input: "<ul>\n<li>a</li>\n</ul>",
			want:  "<ul>\n <li>\n  a\n </li>\n</ul>\n",
		},
		{
			name:  "non-breaking space is content",
			input: "<p>&nbsp;</p>",
			want:  "<p>\n \u00a0\n</p>\n",
		},
		{
			name:  "apostrophes in text are kept",
			input: "<p>Don't panic</p>",
			want:  "<p>\n Don't panic\n</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_ScriptVerbatim(t *testing.T) {
	t.Parallel()

	script := `var j = '{"data": [{"y": [1, 2]}]}'; if (a < b && c) {}`
	got, err := Format("<div><script>" + script + "</script></div>")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(got, script) {
		t.Errorf("script body altered, got %q", got)
	}
}

func TestFormat_PreVerbatim(t *testing.T) {
	t.Parallel()

	input := "<div><pre><code>line 1\n  line 2</code></pre></div>"
	got, err := Format(input)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(got, "<pre><code>line 1\n  line 2</code></pre>") {
		t.Errorf("pre content altered, got %q", got)
	}
}

func TestFormat_SVG(t *testing.T) {
	t.Parallel()

	got, err := Format(`<div><svg><circle cx="50" cy="50" r="40"/></svg></div>`)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, want := range []string{"<svg>", `<circle cx="50" cy="50" r="40">`, "</svg>"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestFormat_EscapesText(t *testing.T) {
	t.Parallel()

	got, err := Format("<p>a &amp; b &lt; c</p>")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(got, "a &amp; b &lt; c") {
		t.Errorf("text not re-escaped, got %q", got)
	}
}

func TestFormat_RawTextElementsVerbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"noscript", `<div><noscript><img src=x></noscript></div>`, `<noscript><img src=x></noscript>`},
		{"iframe", `<div><iframe><b>a & b</b></iframe></div>`, `<iframe><b>a & b</b></iframe>`},
		{"xmp", `<div><xmp><i>x</i></xmp></div>`, `<xmp><i>x</i></xmp>`},
		{"noembed", `<div><noembed><p>fallback</p></noembed></div>`, `<noembed><p>fallback</p></noembed>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Format() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
