package ports

import "context"

// RecordStore is the durable key→JSON persistence boundary. Writes overwrite
// wholesale at single-key granularity; there is no merge, no locking, and no
// cross-key transaction — concurrent writers race and the last write wins.
//
// Read returns (nil, nil) when the key is absent. Implementations surface only
// transport errors; callers treat unparsable payloads the same as absent.
type RecordStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}
