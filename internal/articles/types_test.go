package articles

import "testing"

func TestFormDataTags(t *testing.T) {
	form := NewFormData()
	if form.Category != "Technology" || form.Status != "draft" {
		t.Fatalf("unexpected defaults %+v", form)
	}

	if !form.AddTag("  go ") {
		t.Fatal("expected tag to be added")
	}
	if form.AddTag("go") {
		t.Fatal("duplicate tag must be ignored")
	}
	if form.AddTag("   ") {
		t.Fatal("blank tag must be ignored")
	}
	form.AddTag("cms")
	form.RemoveTag("go")
	if len(form.Tags) != 1 || form.Tags[0] != "cms" {
		t.Fatalf("unexpected tags %#v", form.Tags)
	}
	form.RemoveTag("absent")
	if len(form.Tags) != 1 {
		t.Fatalf("removing an absent tag changed %#v", form.Tags)
	}
}

func TestArticleFormDataCopiesTags(t *testing.T) {
	article := &Article{Title: "T", Tags: []string{"a"}}
	form := article.FormData()
	form.Tags[0] = "b"
	if article.Tags[0] != "a" {
		t.Fatal("FormData must not alias article tags")
	}
}
