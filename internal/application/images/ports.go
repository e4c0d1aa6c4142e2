package images

import (
	"context"
	"io"
	"time"
)

// Signer issues a temporary, displayable URL for an object key in the private
// bucket. Signed URLs expire (one hour in production), so they are resolved
// per display session and never persisted.
type Signer interface {
	SignedGetURL(ctx context.Context, key string) (string, error)
}

// ObjectInfo describes one stored image.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	URL          string    `json:"url"`
}

// Storage is the full object-storage port used by the image routes: upload,
// listing, deletion and signing.
type Storage interface {
	Signer
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}
