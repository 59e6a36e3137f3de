package publish

import (
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/hypertext-dev/hypertext/internal/errors"
)

const bucketDigests = "digests"

// Cache maps object keys to the digest of the last uploaded body.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.New("H041").WithDetail(path).Wrap(err)
	}

	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.New("H041").
			WithDetail(path).
			WithSuggestion("Another publish may be running; wait for it or remove the cache file").
			Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketDigests))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.New("H041").WithDetail(path).Wrap(err)
	}
	return &Cache{db: db}, nil
}

// Digest returns the digest recorded for key, or "" if there is none.
func (c *Cache) Digest(key string) (string, error) {
	var digest string
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketDigests)).Get([]byte(key)); v != nil {
			digest = string(v)
		}
		return nil
	})
	if err != nil {
		return "", errors.New("H041").Wrap(err)
	}
	return digest, nil
}

// Put records digest for key.
func (c *Cache) Put(key, digest string) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketDigests)).Put([]byte(key), []byte(digest))
	})
	if err != nil {
		return errors.New("H041").Wrap(err)
	}
	return nil
}

// Delete forgets key.
func (c *Cache) Delete(key string) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketDigests)).Delete([]byte(key))
	})
	if err != nil {
		return errors.New("H041").Wrap(err)
	}
	return nil
}

// Keys returns every key in the cache in byte order.
func (c *Cache) Keys() ([]string, error) {
	var keys []string
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketDigests)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, errors.New("H041").Wrap(err)
	}
	return keys, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
