package views

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-newshub/internal/articles"
	"github.com/goliatone/go-newshub/internal/domain"
	"github.com/goliatone/go-newshub/internal/i18n"
	"github.com/goliatone/go-newshub/internal/markdown"
	"github.com/goliatone/go-newshub/internal/navigation"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

func testLocales(t *testing.T) *i18n.Service {
	t.Helper()
	svc, err := i18n.NewDefaultService()
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	return svc
}

func sampleArticle() *articles.Article {
	return &articles.Article{
		ID:          uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Slug:        "future-of-remote-work",
		Title:       "The Future of Remote Work",
		Content:     "# Intro\n\nSome **bold** text",
		Author:      "Sarah Johnson",
		Category:    "Business",
		Tags:        []string{"remote", "work", "future", "tech"},
		Status:      domain.StatusDraft,
		PublishedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestArticleCard(t *testing.T) {
	locales := testLocales(t)
	card := ArticleCard(sampleArticle(), locales.Locale("es"))

	if card.StatusLabel != "Borrador" || card.ReadMore != "Leer más" {
		t.Fatalf("unexpected labels %+v", card)
	}
	if len(card.Tags) != CardTagLimit || card.Tags[2] != "future" {
		t.Fatalf("expected first three tags, got %v", card.Tags)
	}
	if card.Date != "Jan 15, 2024" || card.Published {
		t.Fatalf("unexpected card %+v", card)
	}
	if card.Direction != interfaces.DirectionLTR {
		t.Fatalf("expected ltr, got %q", card.Direction)
	}
}

func TestArticleDetailRendersArticleMode(t *testing.T) {
	locales := testLocales(t)
	detail := ArticleDetail(sampleArticle(), locales.Locale("ar"), markdown.NewRenderer(markdown.Options{}))

	if detail.Date != "January 15, 2024" {
		t.Fatalf("unexpected date %q", detail.Date)
	}
	if detail.Direction != interfaces.DirectionRTL {
		t.Fatalf("expected rtl, got %q", detail.Direction)
	}
	if !strings.HasPrefix(detail.Body, `<p class="mb-4">`) || !strings.Contains(detail.Body, `<strong class="font-semibold">bold</strong>`) {
		t.Fatalf("unexpected body %q", detail.Body)
	}
}

func TestManagementRows(t *testing.T) {
	locales := testLocales(t)
	published := sampleArticle()
	published.Status = domain.StatusPublished
	view := Management(articles.Stats{Total: 2, Published: 1, Drafts: 1}, []*articles.Article{published, nil, sampleArticle()}, locales.Locale("en"))

	if view.Heading != "Manage Articles" || len(view.Rows) != 2 {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.Rows[0].StatusLabel != "Published" || view.Rows[1].StatusLabel != "Draft" {
		t.Fatalf("unexpected labels %+v", view.Rows)
	}
}

func TestEditorPreview(t *testing.T) {
	locales := testLocales(t)
	preview := EditorPreview("## Hi\n- item", locales.Locale("en"), markdown.NewRenderer(markdown.Options{}))
	if preview.HTML != "<h2>Hi</h2><br><li>item</li>" {
		t.Fatalf("unexpected preview %q", preview.HTML)
	}
	if preview.Label != "Preview" {
		t.Fatalf("unexpected label %q", preview.Label)
	}
}

func TestTabsHighlightHomeOnDetail(t *testing.T) {
	locales := testLocales(t)
	state := navigation.NewState()
	state.ViewArticle(uuid.New())

	tabs := Tabs(state, locales.Locale("es"))
	if len(tabs) != 3 || !tabs[0].Active || tabs[0].Label != "Inicio" {
		t.Fatalf("unexpected tabs %+v", tabs)
	}
	if tabs[2].Label != "Gestión" || tabs[2].Active {
		t.Fatalf("unexpected management tab %+v", tabs[2])
	}
}

func TestNilInputs(t *testing.T) {
	if card := ArticleCard(nil, nil); card.Direction != interfaces.DirectionLTR {
		t.Fatalf("unexpected card %+v", card)
	}
	if preview := EditorPreview("x", nil, nil); preview.Label != "preview" || preview.HTML != "" {
		t.Fatalf("unexpected preview %+v", preview)
	}
}
