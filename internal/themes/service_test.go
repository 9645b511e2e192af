package themes

import (
	"errors"
	"strings"
	"testing"
)

func TestPreferenceToggle(t *testing.T) {
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Fatal("expected light and dark to toggle")
	}
	if Light.Toggle().Toggle() != Light {
		t.Fatal("double toggle must restore preference")
	}
	if Dark.ClassName() != "dark" || Light.ClassName() != "" {
		t.Fatal("unexpected class names")
	}
	if p, ok := ParsePreference(" DARK "); !ok || p != Dark {
		t.Fatalf("ParsePreference = %q, %v", p, ok)
	}
	if _, ok := ParsePreference("sepia"); ok {
		t.Fatal("expected sepia to be rejected")
	}
}

func TestServiceSelect(t *testing.T) {
	svc, err := NewService(Config{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if svc.DefaultPreference() != Light {
		t.Fatalf("expected light default, got %q", svc.DefaultPreference())
	}

	dark := svc.Select(Dark)
	if dark.Theme != "newshub" || dark.Version != "1.0.0" {
		t.Fatalf("unexpected theme %+v", dark)
	}
	if dark.ClassName != "dark" || dark.Tokens["background"] != "#0a0a0a" {
		t.Fatalf("unexpected dark selection %+v", dark)
	}

	light := svc.Select(Preference("bogus"))
	if light.Preference != Light || light.Tokens["background"] != "#ffffff" {
		t.Fatalf("unexpected fallback selection %+v", light)
	}
}

func TestServiceDefaultVariant(t *testing.T) {
	svc, err := NewService(Config{DefaultVariant: "dark"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if svc.DefaultPreference() != Dark {
		t.Fatalf("expected dark default, got %q", svc.DefaultPreference())
	}
}

func TestParseManifestValidation(t *testing.T) {
	_, err := ParseManifest(strings.NewReader(`{"name":"x","version":"1","variants":{"light":{}}}`))
	if !errors.Is(err, ErrManifestVariantMissing) {
		t.Fatalf("expected ErrManifestVariantMissing, got %v", err)
	}
	_, err = ParseManifest(strings.NewReader(`{"version":"1"}`))
	if !errors.Is(err, ErrManifestNameRequired) {
		t.Fatalf("expected ErrManifestNameRequired, got %v", err)
	}
}

func TestServiceWithCustomManifest(t *testing.T) {
	custom := &Manifest{
		Name:    "broadsheet",
		Version: "2.0.0",
		Variants: map[string]Variant{
			"light": {Tokens: map[string]string{"background": "#fdf6e3"}},
			"dark":  {Class: "dark broadsheet", Tokens: map[string]string{"background": "#002b36"}},
		},
	}
	svc, err := NewService(Config{DefaultTheme: "broadsheet"}, WithManifest(custom))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	sel := svc.Select(Dark)
	if sel.Theme != "broadsheet" || sel.Version != "2.0.0" || sel.ClassName != "dark broadsheet" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}
