package cart

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// Storage mirrors the cart item sequence to a durable local store. Load
// returns (nil, nil) when nothing has been saved yet.
type Storage interface {
	Load() ([]LineItem, error)
	Save(items []LineItem) error
	Close() error
}

var (
	cartBucket = []byte("storefront")
	cartKey    = []byte("cart")
)

// BoltStorage keeps the serialized item sequence under a single key in a
// local bbolt file, the moral equivalent of browser local storage.
type BoltStorage struct {
	db *bolt.DB
}

func NewBoltStorage(file string) (*BoltStorage, error) {
	db, err := bolt.Open(file, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open cart storage")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init cart storage")
	}
	return &BoltStorage{db: db}, nil
}

func (s *BoltStorage) Load() ([]LineItem, error) {
	var items []LineItem
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(cartBucket).Get(cartKey)
		if data == nil {
			return nil
		}
		return jsoniter.Unmarshal(data, &items)
	})
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	return items, nil
}

func (s *BoltStorage) Save(items []LineItem) error {
	data, err := jsoniter.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "serialize cart")
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Put(cartKey, data)
	})
	return errors.Wrap(err, "save cart")
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}
