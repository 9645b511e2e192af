package markdown

import (
	"strings"
	"testing"
)

func TestRenderPreview(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"heading1", "# Title", "<h1>Title</h1>"},
		{"heading2", "## Section", "<h2>Section</h2>"},
		{"heading3", "### Detail", "<h3>Detail</h3>"},
		{"bold", "**bold**", "<strong>bold</strong>"},
		{"italic", "*soft*", "<em>soft</em>"},
		{"underline", "__under__", "<u>under</u>"},
		{"unordered item", "- one", "<li>one</li>"},
		{"ordered item", "1. first", "<li>first</li>"},
		{"second ordinal untouched", "2. second", "2. second"},
		{"line break", "hello\nworld", "hello<br>world"},
		{"double newline", "a\n\nb", "a<br><br>b"},
		{"heading inside text", "intro\n# Head", "intro<br><h1>Head</h1>"},
		{"mixed emphasis", "**a** and *b*", "<strong>a</strong> and <em>b</em>"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.in, ModePreview); got != tc.want {
				t.Fatalf("Render(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRenderBoldDoesNotProduceItalic(t *testing.T) {
	got := Render("**bold**", ModePreview)
	if strings.Contains(got, "<em>") {
		t.Fatalf("bold must be consumed before italic, got %q", got)
	}
}

func TestRenderArticleParagraphs(t *testing.T) {
	got := Render("a\n\nb", ModeArticle)
	want := `<p class="mb-4">a</p><p class="mb-4">b</p>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.Count(got, "<p") != 2 {
		t.Fatalf("expected two paragraph containers, got %q", got)
	}
}

func TestRenderArticleDecoratesTags(t *testing.T) {
	got := Render("# Head\n**b** *i* __u__\n- item", ModeArticle)
	for _, want := range []string{
		`<h1 class="mt-8 mb-6 font-semibold text-3xl">Head</h1>`,
		`<strong class="font-semibold">b</strong>`,
		`<em class="italic">i</em>`,
		`<u class="underline">u</u>`,
		`<li class="mb-2">item</li>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestRenderLeavesLinksAndImages(t *testing.T) {
	in := "[site](url) ![alt text](image-url)"
	for _, mode := range []Mode{ModePreview, ModeArticle} {
		if got := Render(in, mode); !strings.Contains(got, in) {
			t.Fatalf("mode %s: expected links untouched, got %q", mode, got)
		}
	}
}

func TestRenderDoesNotEscapeByDefault(t *testing.T) {
	in := "<script>x</script>"
	if got := Render(in, ModePreview); got != in {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestRenderEscapeHTMLOption(t *testing.T) {
	r := NewRenderer(Options{EscapeHTML: true})
	got := r.Render("**<b>**", ModePreview)
	if got != "<strong>&lt;b&gt;</strong>" {
		t.Fatalf("unexpected escaped output %q", got)
	}
}

func TestRenderUnknownModeFallsBackToPreview(t *testing.T) {
	if got := Render("# T", Mode("bogus")); got != "<h1>T</h1>" {
		t.Fatalf("expected preview rendering, got %q", got)
	}
}

func TestRenderStandardMode(t *testing.T) {
	got := Render("[site](https://example.com)", ModeStandard)
	if !strings.Contains(got, `<a href="https://example.com">site</a>`) {
		t.Fatalf("expected goldmark link, got %q", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	in := "# A\n\n**b** *c*\n- d\n1. e"
	for _, mode := range []Mode{ModePreview, ModeArticle} {
		if Render(in, mode) != Render(in, mode) {
			t.Fatalf("mode %s not deterministic", mode)
		}
	}
}

func TestRulesOrder(t *testing.T) {
	want := []string{
		RuleHeading1, RuleHeading2, RuleHeading3,
		RuleBold, RuleItalic, RuleUnderline,
		RuleUnorderedItem, RuleOrderedItem,
		RuleParagraph, RuleLineBreak,
	}
	assertRuleNames(t, Rules(ModeArticle), want)

	preview := append([]string(nil), want[:8]...)
	preview = append(preview, RuleLineBreak)
	assertRuleNames(t, Rules(ModePreview), preview)

	if Rules(ModeStandard) != nil {
		t.Fatal("standard mode is not rule based")
	}
}

func assertRuleNames(t *testing.T, rules []Rule, want []string) {
	t.Helper()
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, rule := range rules {
		if rule.Name != want[i] {
			t.Fatalf("rule %d: expected %s, got %s", i, want[i], rule.Name)
		}
	}
}
