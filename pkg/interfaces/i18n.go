package interfaces

// Direction is the reading direction of a locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Translator resolves a key into display text. Implementations return the key
// itself when no translation exists.
type Translator interface {
	Translate(key string) string
}

// LocaleProvider is a translator that also knows its reading direction.
type LocaleProvider interface {
	Translator
	IsRTL() bool
}
