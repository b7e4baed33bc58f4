package persist

// KVStore is a durable key-value store. Get returns ErrKeyNotFound
// (possibly wrapped) when the key has no value; Delete of a missing
// key is not an error.
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
