package navigation

import (
	"strings"

	"github.com/google/uuid"
)

// Page identifies a top-level screen.
type Page string

const (
	PageHome          Page = "home"
	PageEditor        Page = "editor"
	PageManagement    Page = "management"
	PageArticleDetail Page = "article-detail"
)

const (
	NoticeArticleCreated = "Article created successfully!"
	NoticeArticleUpdated = "Article updated successfully!"
)

// Pages lists every page in tab order followed by the detail page.
func Pages() []Page {
	return []Page{PageHome, PageEditor, PageManagement, PageArticleDetail}
}

// ParsePage accepts a page name in any case.
func ParsePage(input string) (Page, bool) {
	candidate := Page(strings.ToLower(strings.TrimSpace(input)))
	for _, page := range Pages() {
		if page == candidate {
			return page, true
		}
	}
	return "", false
}

// State tracks the current page and the article under edit or view.
// The zero value is not ready for use; call NewState.
type State struct {
	Page      Page
	EditingID uuid.UUID
	ViewingID uuid.UUID
}

// NewState starts on the home page.
func NewState() State {
	return State{Page: PageHome}
}

// Editing reports whether the editor holds an existing article.
func (s State) Editing() bool {
	return s.EditingID != uuid.Nil
}

// ActiveTab is the tab highlighted in the header. The detail page belongs to
// home.
func (s State) ActiveTab() Page {
	if s.Page == PageArticleDetail {
		return PageHome
	}
	return s.Page
}

// ChangePage moves to page and clears any editing or viewing target.
// Unknown pages are ignored.
func (s *State) ChangePage(page Page) {
	if _, ok := ParsePage(string(page)); !ok {
		return
	}
	s.Page = page
	s.EditingID = uuid.Nil
	s.ViewingID = uuid.Nil
}

// EditArticle opens the editor for id.
func (s *State) EditArticle(id uuid.UUID) {
	s.EditingID = id
	s.Page = PageEditor
}

// ViewArticle opens the detail page for id.
func (s *State) ViewArticle(id uuid.UUID) {
	s.ViewingID = id
	s.Page = PageArticleDetail
}

// BackFromArticle returns from the detail page to home.
func (s *State) BackFromArticle() {
	s.ViewingID = uuid.Nil
	s.Page = PageHome
}

// CreateNew opens an empty editor.
func (s *State) CreateNew() {
	s.EditingID = uuid.Nil
	s.Page = PageEditor
}

// SaveArticle leaves the editor for management and returns the notice to show.
func (s *State) SaveArticle(updated bool) string {
	s.EditingID = uuid.Nil
	s.Page = PageManagement
	if updated {
		return NoticeArticleUpdated
	}
	return NoticeArticleCreated
}

// CancelEdit leaves the editor for management without saving.
func (s *State) CancelEdit() {
	s.EditingID = uuid.Nil
	s.Page = PageManagement
}
