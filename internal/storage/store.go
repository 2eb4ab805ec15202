package storage

// KeyValueStore is the string-keyed persistence collaborator used for
// saved settings. GetItem reports ok=false when the key was never set.
type KeyValueStore interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}
