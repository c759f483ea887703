package ratelimit

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var bucketName = []byte("counters")

// Limiter is a per-key daily submission counter backed by bbolt, so the
// counters survive restarts. Keys are bucketed by calendar day; Prune
// discards the stale day buckets.
type Limiter struct {
	db  *bbolt.DB
	max int
}

// NewLimiter opens (or creates) the counter database at path. max is the
// number of allowed submissions per key per day.
func NewLimiter(path string, max int) (*Limiter, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open ratelimit db")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create ratelimit bucket")
	}
	return &Limiter{db: db, max: max}, nil
}

// Allow increments the counter for key and reports whether the submission
// is within today's limit.
func (l *Limiter) Allow(key string) (bool, error) {
	if key == "" {
		return true, nil
	}
	dayKey := []byte(fmt.Sprintf("%s:%s", time.Now().Format("2006-01-02"), key))

	allowed := true
	err := l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		count := cast.ToInt(string(bucket.Get(dayKey)))
		if count >= l.max {
			allowed = false
			return nil
		}
		return bucket.Put(dayKey, []byte(cast.ToString(count+1)))
	})
	if err != nil {
		return true, errors.Wrap(err, "update ratelimit counter")
	}
	return allowed, nil
}

// Prune removes counters from previous days. Deletion goes through the
// cursor, the only delete bbolt allows during iteration.
func (l *Limiter) Prune() {
	today := []byte(time.Now().Format("2006-01-02"))
	err := l.db.Update(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketName).Cursor()
		for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
			if !bytes.HasPrefix(k, today) {
				if err := cursor.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to prune ratelimit counters", zap.Error(err))
	}
}

// Close closes the underlying database.
func (l *Limiter) Close() error {
	return l.db.Close()
}
