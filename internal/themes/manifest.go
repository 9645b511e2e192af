package themes

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed assets/theme.json
var defaultManifestData []byte

var (
	ErrManifestNameRequired    = errors.New("themes: manifest missing name")
	ErrManifestVersionRequired = errors.New("themes: manifest missing version")
	ErrManifestVariantMissing  = errors.New("themes: manifest must define light and dark variants")
)

// Manifest mirrors the theme.json structure.
type Manifest struct {
	Name        string             `json:"name"`
	Version     string             `json:"version"`
	Description string             `json:"description,omitempty"`
	Variants    map[string]Variant `json:"variants"`
}

// Variant holds the class and design tokens for one preference.
type Variant struct {
	Class  string            `json:"class"`
	Tokens map[string]string `json:"tokens,omitempty"`
}

// DefaultManifest returns the embedded newshub theme.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(strings.NewReader(string(defaultManifestData)))
}

// LoadManifest reads and parses a manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("themes: open manifest: %w", err)
	}
	defer file.Close()
	return ParseManifest(file)
}

// ParseManifest decodes and validates manifest JSON.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var manifest Manifest
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("themes: parse manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Validate checks the fields the service depends on.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrManifestNameRequired
	}
	if strings.TrimSpace(m.Version) == "" {
		return ErrManifestVersionRequired
	}
	for _, pref := range []Preference{Light, Dark} {
		if _, ok := m.Variants[string(pref)]; !ok {
			return fmt.Errorf("%w: %s", ErrManifestVariantMissing, pref)
		}
	}
	return nil
}
