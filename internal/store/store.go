// Package store implements the persistent document store backing the
// portal's mock database: a key/value table holding the serialized
// directory and session documents.
package store

import "context"

// Storage keys for the two top-level documents.
const (
	KeyDirectory = "ict_portal_data"
	KeySession   = "ict_portal_session"
)

// Adapter is the persistence contract used by the directory and session
// layers. Saved bytes round-trip exactly; Load returns (nil, nil) when the
// key is absent.
//
// Writes complete synchronously before the call returns, so a later Load
// in the same process always observes the latest Save.
type Adapter interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
	Clear(ctx context.Context, key string) error
}
