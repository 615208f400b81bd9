// Package storage wraps the external key-value store behind a small
// Store interface and provides typed load/save for the three record
// kinds the application persists: the job collection, the user profile
// and the favorite-id list.
package storage

// Storage keys. The legacy names are kept so existing data exports
// stay readable.
const (
	KeyJobs      = "jobAppAllJobs"
	KeyProfile   = "jobAppUserProfile"
	KeyFavorites = "jobAppFavorites"
)

// Store is a string-keyed key-value store holding serialized records.
// Get returns found=false when the key has never been written.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}
