package views

import (
	"slices"
	"time"

	"github.com/goliatone/go-newshub/internal/articles"
	"github.com/goliatone/go-newshub/internal/navigation"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

const (
	DetailDateLayout = "January 2, 2006"
	CardDateLayout   = "Jan 2, 2006"
)

// CardTagLimit caps the tags shown on a card.
const CardTagLimit = 3

func direction(locale interfaces.LocaleProvider) interfaces.Direction {
	if locale != nil && locale.IsRTL() {
		return interfaces.DirectionRTL
	}
	return interfaces.DirectionLTR
}

func translate(locale interfaces.LocaleProvider, key string) string {
	if locale == nil {
		return key
	}
	return locale.Translate(key)
}

func formatDate(ts time.Time, layout string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(layout)
}

// Card is a list entry on the home page.
type Card struct {
	ID          string
	Slug        string
	Title       string
	Summary     string
	ImageURL    string
	Author      string
	Category    string
	Tags        []string
	Date        string
	Published   bool
	StatusLabel string
	ReadMore    string
	Edit        string
	Delete      string
	Direction   interfaces.Direction
}

// ArticleCard projects a into a home page card.
func ArticleCard(a *articles.Article, locale interfaces.LocaleProvider) Card {
	if a == nil {
		return Card{Direction: direction(locale)}
	}
	tags := a.Tags
	if len(tags) > CardTagLimit {
		tags = tags[:CardTagLimit]
	}
	return Card{
		ID:          a.ID.String(),
		Slug:        a.Slug,
		Title:       a.Title,
		Summary:     a.Summary,
		ImageURL:    a.ImageURL,
		Author:      a.Author,
		Category:    a.Category,
		Tags:        slices.Clone(tags),
		Date:        formatDate(a.PublishedAt, CardDateLayout),
		Published:   a.IsPublished(),
		StatusLabel: translate(locale, a.Status.TranslationKey()),
		ReadMore:    translate(locale, "readMore"),
		Edit:        translate(locale, "edit"),
		Delete:      translate(locale, "delete"),
		Direction:   direction(locale),
	}
}

// Detail is the full article page.
type Detail struct {
	Title     string
	Author    string
	Category  string
	ImageURL  string
	Tags      []string
	Date      string
	Body      string
	Direction interfaces.Direction
}

// ArticleDetail renders a's body in article mode.
func ArticleDetail(a *articles.Article, locale interfaces.LocaleProvider, renderer interfaces.MarkdownRenderer) Detail {
	if a == nil {
		return Detail{Direction: direction(locale)}
	}
	detail := Detail{
		Title:     a.Title,
		Author:    a.Author,
		Category:  a.Category,
		ImageURL:  a.ImageURL,
		Tags:      slices.Clone(a.Tags),
		Date:      formatDate(a.PublishedAt, DetailDateLayout),
		Direction: direction(locale),
	}
	if renderer != nil {
		detail.Body = renderer.Render(a.Content, interfaces.RenderModeArticle)
	}
	return detail
}

// ManagementRow is one line of the management table.
type ManagementRow struct {
	ID          string
	Title       string
	Author      string
	Category    string
	Date        string
	Published   bool
	StatusLabel string
}

// ManagementView is the management page model.
type ManagementView struct {
	Heading   string
	CreateNew string
	Edit      string
	Delete    string
	Stats     articles.Stats
	Rows      []ManagementRow
	Direction interfaces.Direction
}

// Management builds the management table in list order.
func Management(stats articles.Stats, list []*articles.Article, locale interfaces.LocaleProvider) ManagementView {
	view := ManagementView{
		Heading:   translate(locale, "manageArticles"),
		CreateNew: translate(locale, "createNew"),
		Edit:      translate(locale, "edit"),
		Delete:    translate(locale, "delete"),
		Stats:     stats,
		Rows:      make([]ManagementRow, 0, len(list)),
		Direction: direction(locale),
	}
	for _, a := range list {
		if a == nil {
			continue
		}
		view.Rows = append(view.Rows, ManagementRow{
			ID:          a.ID.String(),
			Title:       a.Title,
			Author:      a.Author,
			Category:    a.Category,
			Date:        formatDate(a.PublishedAt, CardDateLayout),
			Published:   a.IsPublished(),
			StatusLabel: translate(locale, a.Status.TranslationKey()),
		})
	}
	return view
}

// Preview is the editor's live preview pane.
type Preview struct {
	Label     string
	HTML      string
	Direction interfaces.Direction
}

// EditorPreview renders content in preview mode.
func EditorPreview(content string, locale interfaces.LocaleProvider, renderer interfaces.MarkdownRenderer) Preview {
	preview := Preview{
		Label:     translate(locale, "preview"),
		Direction: direction(locale),
	}
	if renderer != nil {
		preview.HTML = renderer.Render(content, interfaces.RenderModePreview)
	}
	return preview
}

// Tab is a header navigation entry.
type Tab struct {
	Page   navigation.Page
	Label  string
	Active bool
}

// Tabs lists the header tabs for state.
func Tabs(state navigation.State, locale interfaces.LocaleProvider) []Tab {
	active := state.ActiveTab()
	pages := []navigation.Page{navigation.PageHome, navigation.PageEditor, navigation.PageManagement}
	tabs := make([]Tab, 0, len(pages))
	for _, page := range pages {
		tabs = append(tabs, Tab{
			Page:   page,
			Label:  translate(locale, string(page)),
			Active: page == active,
		})
	}
	return tabs
}
