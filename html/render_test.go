package html_test

import (
	"testing"

	rzhtml "github.com/fwojciec/razorgen/html"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "void elements self close",
			input: `<img src="a.png"><br>`,
			want:  `<img src="a.png" /><br />`,
		},
		{
			name:  "empty component renders paired",
			input: `<HeroBanner Title="x" />`,
			want:  `<HeroBanner Title="x"></HeroBanner>`,
		},
		{
			name:  "boolean attributes render bare",
			input: `<input type="checkbox" checked>`,
			want:  `<input type="checkbox" checked />`,
		},
		{
			name:  "escapes text and attribute values",
			input: `<a href="?a=1&amp;b=&quot;2&quot;">x &amp; y &lt; z</a>`,
			want:  `<a href="?a=1&amp;b=&quot;2&quot;">x &amp; y &lt; z</a>`,
		},
		{
			name:  "non-breaking spaces stay entities",
			input: `<p>a&nbsp;b</p>`,
			want:  `<p>a&nbsp;b</p>`,
		},
		{
			name:  "comments are kept",
			input: `<!-- note --><div></div>`,
			want:  `<!-- note --><div></div>`,
		},
		{
			name:  "processing instruction is kept",
			input: `<?xml version="1.0" encoding="utf-8"?><span>x</span>`,
			want:  `<?xml version="1.0" encoding="utf-8"?><span>x</span>`,
		},
		{
			name:  "single quoted attributes are normalized",
			input: `<div class='a "b"'></div>`,
			want:  `<div class="a &quot;b&quot;"></div>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := rzhtml.Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.want, rzhtml.Render(root))
		})
	}
}

func TestInnerHTML(t *testing.T) {
	t.Parallel()

	root, err := rzhtml.Parse(`<div id="x"><b>bold</b> text</div>`)
	require.NoError(t, err)

	assert.Equal(t, `<b>bold</b> text`, rzhtml.InnerHTML(root.FirstChild))
}

func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"indented fragment": `
        <div class="card">
            <h2 data-pgc-edit="Title[content]">Hello</h2>
            <p>Body &amp; more</p>
        </div>`,
		"full page": `<!DOCTYPE html>
<html lang="en">
  <head><meta charset="utf-8"><title>Home</title></head>
  <body>
    <EditForm Model="Order"><InputCheckbox id="c" /></EditForm>
    <script>var a = 1 < 2;</script>
  </body>
</html>`,
		"mixed-case raw text": `<Script>if (a < b) { x = "&amp;"; }</Script><STYLE>p > a { color: red }</STYLE>`,
		"tag soup": `<ul><li>one<li>two<p>para<div>x</span></ul>`,
		"tabs and blank lines": "\t\t<p>a</p>\n\n\t\t\t<p>b</p>\n\t \n\t\t<p>c</p>",
	}

	for name, input := range inputs {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := rzhtml.Parse(input)
			require.NoError(t, err)
			once := rzhtml.Serialize(first)

			second, err := rzhtml.Parse(once)
			require.NoError(t, err)
			twice := rzhtml.Serialize(second)

			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("serialize is not a fixed point (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestDedent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips common indentation",
			input: "    <div>\n      <p>x</p>\n    </div>",
			want:  "<div>\n  <p>x</p>\n</div>",
		},
		{
			name:  "ignores blank lines when measuring",
			input: "\n    a\n\n      b\n",
			want:  "\na\n\n  b\n",
		},
		{
			name:  "empties whitespace-only lines",
			input: "  a\n        \n  b",
			want:  "a\n\nb",
		},
		{
			name:  "no indentation is unchanged",
			input: "a\n  b",
			want:  "a\n  b",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rzhtml.Dedent(tt.input))
		})
	}
}

func TestEscapeDirectives(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mail me at info@@example.com", rzhtml.EscapeDirectives("mail me at info@example.com"))
}

func TestStripArtifacts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "prolog and wrapping span",
			input: rzhtml.Prolog + "<span><p>x</p></span>",
			want:  "<p>x</p>",
		},
		{
			name:  "prolog only",
			input: rzhtml.Prolog + "<p>x</p>",
			want:  "<p>x</p>",
		},
		{
			name:  "span without prolog is content",
			input: "<span>a</span> <span>b</span>",
			want:  "<span>a</span> <span>b</span>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rzhtml.StripArtifacts(tt.input))
		})
	}
}
