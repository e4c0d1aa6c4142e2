// Package images maps stored photo references to displayable URLs. A product
// persists a durable reference — an absolute URL or a bare storage key —
// and this package decides, per display, whether that reference can be shown
// as-is or needs a temporary signed URL from the private bucket.
package images

import (
	"context"
	"net/url"
	"strings"
)

// Resolver turns a photo reference into a displayable URL.
//
//   - absolute URL outside the private bucket: passed through unchanged
//   - absolute URL on the private bucket host: the key is derived from the
//     path and signed
//   - anything else: treated as a bare key and signed
//
// Results are never cached here; signed URLs expire and must be re-resolved.
type Resolver struct {
	signer     Signer
	bucketHost string
}

// NewResolver builds a resolver. bucketHost is the private bucket's virtual
// host, e.g. "polyproducts.s3.amazonaws.com".
func NewResolver(signer Signer, bucketHost string) *Resolver {
	return &Resolver{signer: signer, bucketHost: bucketHost}
}

// Resolve returns the displayable URL for ref, or "" for an empty reference.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		u, err := url.Parse(ref)
		if err == nil {
			if u.Hostname() == r.bucketHost {
				key := strings.TrimLeft(u.Path, "/")
				return r.signer.SignedGetURL(ctx, key)
			}
			// Some other public URL: usable as-is.
			return ref, nil
		}
		// Unparseable: fall through and treat it as a key.
	}

	return r.signer.SignedGetURL(ctx, ref)
}
