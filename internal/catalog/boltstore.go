package catalog

import (
	"context"
	"encoding/binary"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/Kajalkumari31/ministore/internal/domain"
)

var productBucket = []byte("products")

// BoltProductStore is the embedded document-store backend. Products are kept
// as JSON documents in a single bucket, keyed by big-endian id so iteration
// order matches creation order.
type BoltProductStore struct {
	db *bolt.DB
}

func NewBoltProductStore(file string) (*BoltProductStore, error) {
	db, err := bolt.Open(file, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(productBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return &BoltProductStore{db: db}, nil
}

func (s *BoltProductStore) List(ctx context.Context, filter string) ([]domain.Product, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	var rows []domain.Product
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(productBucket).ForEach(func(k, v []byte) error {
			var p domain.Product
			if err := jsoniter.Unmarshal(v, &p); err != nil {
				zap.L().Warn("skipping undecodable product document", zap.Error(err))
				return nil
			}
			if filter != "" && !strings.Contains(strings.ToLower(p.Title), filter) {
				return nil
			}
			rows = append(rows, p)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (s *BoltProductStore) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(productBucket).Get(idKey(id))
		if v == nil {
			return domain.ErrNotFound
		}
		return jsoniter.Unmarshal(v, &p)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return &p, nil
}

func (s *BoltProductStore) Create(ctx context.Context, p *domain.Product) error {
	data, err := jsoniter.Marshal(p)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(productBucket).Put(idKey(p.ID), data)
	})
	if err != nil {
		return errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return nil
}

func (s *BoltProductStore) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.View(func(tx *bolt.Tx) error {
		total = int64(tx.Bucket(productBucket).Stats().KeyN)
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return total, nil
}

func (s *BoltProductStore) Reset(ctx context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(productBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(productBucket)
		return err
	})
	if err != nil {
		return errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return nil
}

func (s *BoltProductStore) Close() error {
	return s.db.Close()
}

func idKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}
