package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity type to prevent cross-entity collisions.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleUUID identifies an article by its slug.
func ArticleUUID(slug string) uuid.UUID {
	return UUID("newshub:article:" + strings.ToLower(strings.TrimSpace(slug)))
}

// LocaleUUID identifies a locale table by its tag.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("newshub:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}
