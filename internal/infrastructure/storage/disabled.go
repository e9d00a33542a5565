package storage

import (
	"context"
	"io"

	domainerrors "tradeport.backend/internal/domain/errors"
)

// disabledStore stands in when no bucket is configured. Every operation
// fails with a 503 instead of leaving callers holding a nil ObjectStore.
type disabledStore struct{}

// Disabled returns an ObjectStore whose operations always fail with a
// service-unavailable error.
func Disabled() ObjectStore {
	return disabledStore{}
}

func (disabledStore) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", domainerrors.Unavailable("document storage is not configured")
}

func (disabledStore) Delete(context.Context, string) error {
	return domainerrors.Unavailable("document storage is not configured")
}

func (disabledStore) URL(string) string {
	return ""
}
