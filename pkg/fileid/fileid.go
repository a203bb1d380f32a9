// Package fileid encodes filesystem paths into opaque identifiers that are
// safe to embed in URLs and request bodies. The encoding is a pure transform:
// no registry, no state, decode always recovers the exact path.
package fileid

import (
	"encoding/base64"
	"fmt"
)

// Encode returns the URL-safe, unpadded base64 encoding of path.
func Encode(path string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(path))
}

// Decode reverses Encode. It fails when id is not valid base64 for the
// URL-safe alphabet; it never checks that the decoded path exists.
func Decode(id string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", fmt.Errorf("invalid file id %q: %w", id, err)
	}
	return string(raw), nil
}
