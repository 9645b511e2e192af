package articles

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-newshub/internal/domain"
	"github.com/goliatone/go-newshub/internal/identity"
)

type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(value string) (string, error) {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), " ", "-"), nil
}

func newTestService(t *testing.T, seed bool) (Service, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	if seed {
		if err := SeedFixtures(context.Background(), repo); err != nil {
			t.Fatalf("SeedFixtures: %v", err)
		}
	}
	fixed := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	svc := NewService(repo,
		WithClock(func() time.Time { return fixed }),
		WithSlugNormalizer(lowerNormalizer{}),
	)
	return svc, repo
}

func validForm() FormData {
	form := NewFormData()
	form.Title = "Hello World"
	form.Content = "# Hello\n\nBody"
	form.Summary = "Greeting"
	return form
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	form := validForm()
	form.AddTag(" news ")
	created, err := svc.Create(ctx, form)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.Slug != "hello-world" {
		t.Fatalf("expected slug hello-world, got %q", created.Slug)
	}
	if created.ID != identity.ArticleUUID("hello-world") {
		t.Fatalf("expected deterministic id, got %s", created.ID)
	}
	if created.Status != domain.StatusDraft {
		t.Fatalf("expected draft status, got %s", created.Status)
	}
	if created.Author != DefaultAuthor {
		t.Fatalf("expected default author, got %q", created.Author)
	}
	if len(created.Tags) != 1 || created.Tags[0] != "news" {
		t.Fatalf("unexpected tags %#v", created.Tags)
	}
	if !created.PublishedAt.Equal(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected published at %v", created.PublishedAt)
	}

	second, err := svc.Create(ctx, validForm())
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if second.Slug != "hello-world-2" {
		t.Fatalf("expected suffixed slug, got %q", second.Slug)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	form := validForm()
	form.Title = "   "
	_, err := svc.Create(ctx, form)
	if !errors.Is(err, ErrInvalidArticle) {
		t.Fatalf("expected ErrInvalidArticle, got %v", err)
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, ok := fieldErrs["title"]; !ok {
		t.Fatalf("expected title error, got %v", fieldErrs)
	}

	form = validForm()
	form.Status = "archived"
	if _, err := svc.Create(ctx, form); !errors.Is(err, ErrInvalidArticle) {
		t.Fatalf("expected invalid status rejection, got %v", err)
	}

	form = validForm()
	form.ImageURL = "not a url"
	if _, err := svc.Create(ctx, form); !errors.Is(err, ErrInvalidArticle) {
		t.Fatalf("expected invalid image rejection, got %v", err)
	}

	form = validForm()
	form.Category = "Gardening"
	if _, err := svc.Create(ctx, form); !errors.Is(err, ErrCategoryUnknown) {
		t.Fatalf("expected ErrCategoryUnknown, got %v", err)
	}
}

func TestServiceUpdatePublishesDraft(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	draft, err := svc.GetBySlug(ctx, "digital-marketing-evolution-2024")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if draft.IsPublished() {
		t.Fatal("fixture should be a draft")
	}

	form := draft.FormData()
	form.Status = domain.StatusPublished
	form.RemoveTag("trends")
	updated, err := svc.Update(ctx, draft.ID, form)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsPublished() {
		t.Fatal("expected published article")
	}
	if updated.Slug != draft.Slug || updated.ID != draft.ID {
		t.Fatal("slug and id must be stable across updates")
	}
	want := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	if !updated.PublishedAt.Equal(want) || !updated.UpdatedAt.Equal(want) {
		t.Fatalf("expected timestamps restamped, got %v / %v", updated.PublishedAt, updated.UpdatedAt)
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("expected tag removal, got %#v", updated.Tags)
	}
	if updated.Author != "David Park" {
		t.Fatalf("expected author preserved, got %q", updated.Author)
	}
}

func TestServiceUpdateMissing(t *testing.T) {
	svc, _ := newTestService(t, false)
	_, err := svc.Update(context.Background(), identity.ArticleUUID("missing"), validForm())
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	article, err := svc.GetBySlug(ctx, "future-of-remote-work")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if err := svc.Delete(ctx, article.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, article.ID); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
	if err := svc.Delete(ctx, article.ID); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestServiceStats(t *testing.T) {
	svc, _ := newTestService(t, true)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != (Stats{Total: 4, Published: 3, Drafts: 1}) {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestServiceListHomeQuery(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	all, err := svc.List(ctx, HomeQuery("", CategoryAll))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	assertSlugs(t, all, "future-of-remote-work", "major-tech-conference-ai-breakthroughs", "sustainable-business-practices")

	tech, _ := svc.List(ctx, HomeQuery("", "Technology"))
	if len(tech) != 2 {
		t.Fatalf("expected 2 technology articles, got %d", len(tech))
	}

	bySummary, _ := svc.List(ctx, HomeQuery("CLIMATE change", ""))
	assertSlugs(t, bySummary, "sustainable-business-practices")

	drafts, _ := svc.List(ctx, HomeQuery("digital", ""))
	if len(drafts) != 0 {
		t.Fatalf("home query must hide drafts, got %d", len(drafts))
	}
}

func TestServiceListManagementQuery(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	all, _ := svc.List(ctx, ManagementQuery(""))
	if len(all) != 4 {
		t.Fatalf("expected every article, got %d", len(all))
	}

	byAuthor, _ := svc.List(ctx, ManagementQuery("david"))
	assertSlugs(t, byAuthor, "digital-marketing-evolution-2024")

	byCategory, _ := svc.List(ctx, ManagementQuery("business"))
	assertSlugs(t, byCategory, "sustainable-business-practices")

	bySummaryOnly, _ := svc.List(ctx, ManagementQuery("revolutionizing"))
	if len(bySummaryOnly) != 0 {
		t.Fatalf("management search must ignore summaries, got %d", len(bySummaryOnly))
	}
}

func TestServiceListFuzzy(t *testing.T) {
	svc, _ := newTestService(t, true)
	query := ManagementQuery("rmtwrk")
	query.Fuzzy = true

	got, err := svc.List(context.Background(), query)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) == 0 || got[0].Slug != "future-of-remote-work" {
		t.Fatalf("expected remote work article ranked first, got %v", slugsOf(got))
	}
}

func TestServiceCategories(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, WithCategories([]string{" Local ", "Local", "", "World"}))
	got := svc.Categories()
	if len(got) != 2 || got[0] != "Local" || got[1] != "World" {
		t.Fatalf("unexpected categories %#v", got)
	}
	got[0] = "mutated"
	if svc.Categories()[0] != "Local" {
		t.Fatal("Categories must return a copy")
	}
}

func assertSlugs(t *testing.T, got []*Article, want ...string) {
	t.Helper()
	slugs := slugsOf(got)
	if len(slugs) != len(want) {
		t.Fatalf("expected %v, got %v", want, slugs)
	}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, slugs)
		}
	}
}

func slugsOf(records []*Article) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Slug
	}
	return out
}
