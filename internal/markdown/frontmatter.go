package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the YAML header carried by article sources.
type FrontMatter struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Slug     string    `yaml:"slug"`
	Summary  string    `yaml:"summary"`
	Status   string    `yaml:"status"`
	Author   string    `yaml:"author"`
	Category string    `yaml:"category"`
	Image    string    `yaml:"image"`
	Tags     []string  `yaml:"tags"`
	Date     time.Time `yaml:"date"`
	Updated  time.Time `yaml:"updated"`
}

// ParseFrontMatter splits source into its header and Markdown body. Sources
// without a header return a zero FrontMatter and the full body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Updated.IsZero() {
		meta.Updated = meta.Date
	}
	meta.Tags = append([]string(nil), meta.Tags...)
	return meta, body, nil
}
