package i18n

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goliatone/go-newshub/internal/validation"
)

// Fixture is a serialised bundle of configuration and locale tables.
type Fixture struct {
	Config       Config                       `json:"config"`
	Translations map[string]map[string]string `json:"translations"`
}

//go:embed testdata/translations_fixture.json
var defaultFixtureData []byte

//go:embed schema/fixture.schema.json
var fixtureSchemaData []byte

var (
	fixtureSchemaOnce sync.Once
	fixtureSchema     *validation.Schema
	fixtureSchemaErr  error
)

// ErrLoaderPathRequired is returned by Load when the loader has no path.
var ErrLoaderPathRequired = errors.New("i18n: loader path cannot be empty")

// DefaultFixture loads the built-in en/es/ar tables.
func DefaultFixture() (*Fixture, error) {
	return DecodeFixture(defaultFixtureData)
}

// Loader reads locale fixtures from disk.
type Loader struct {
	path string
}

// NewLoader constructs a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the fixture file.
func (l *Loader) Load(ctx context.Context) (*Fixture, error) {
	if l == nil || l.path == "" {
		return nil, ErrLoaderPathRequired
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("i18n: read fixture %q: %w", l.path, err)
	}
	return DecodeFixture(data)
}

// DecodeFixture validates data against the fixture schema and decodes it.
func DecodeFixture(data []byte) (*Fixture, error) {
	schema, err := loadFixtureSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateJSON(data); err != nil {
		return nil, fmt.Errorf("i18n: invalid fixture: %w", err)
	}

	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("i18n: decode fixture: %w", err)
	}
	if fx.Translations == nil {
		fx.Translations = map[string]map[string]string{}
	}
	return &fx, nil
}

func loadFixtureSchema() (*validation.Schema, error) {
	fixtureSchemaOnce.Do(func() {
		fixtureSchema, fixtureSchemaErr = validation.Compile(fixtureSchemaData)
	})
	if fixtureSchemaErr != nil {
		return nil, fmt.Errorf("i18n: fixture schema: %w", fixtureSchemaErr)
	}
	return fixtureSchema, nil
}
