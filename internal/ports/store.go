package ports

// KeyValueStore is the synchronous persistence capability used by the
// favorites ledger
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value
	Set(key, value string) error
}
