package ratelimit

import (
	"fmt"
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

func TestAllowWithinLimit(t *testing.T) {
	limiter, err := NewLimiter(filepath.Join(t.TempDir(), "ratelimit.db"), 3)
	if err != nil {
		t.Fatalf("open limiter: %v", err)
	}
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("1.2.3.4|jess@example.com")
		if err != nil {
			t.Fatalf("allow failed: %v", err)
		}
		if !allowed {
			t.Fatalf("submission %d blocked below limit", i+1)
		}
	}

	allowed, err := limiter.Allow("1.2.3.4|jess@example.com")
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if allowed {
		t.Error("submission above limit not blocked")
	}
}

func TestAllowSeparateKeys(t *testing.T) {
	limiter, err := NewLimiter(filepath.Join(t.TempDir(), "ratelimit.db"), 1)
	if err != nil {
		t.Fatalf("open limiter: %v", err)
	}
	defer limiter.Close()

	if allowed, _ := limiter.Allow("a"); !allowed {
		t.Fatal("first key blocked")
	}
	if allowed, _ := limiter.Allow("b"); !allowed {
		t.Error("second key blocked by first key's counter")
	}
	if allowed, _ := limiter.Allow("a"); allowed {
		t.Error("first key not blocked at limit")
	}
}

func TestPruneRemovesOnlyStaleCounters(t *testing.T) {
	limiter, err := NewLimiter(filepath.Join(t.TempDir(), "ratelimit.db"), 3)
	if err != nil {
		t.Fatalf("open limiter: %v", err)
	}
	defer limiter.Close()

	// today's counter, written through the public path
	if allowed, _ := limiter.Allow("today-key"); !allowed {
		t.Fatal("seed submission blocked")
	}

	// stale day buckets seeded directly
	err = limiter.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		for i := 0; i < 10; i++ {
			key := fmt.Sprintf("2020-01-%02d|stale-key-%d", i+1, i)
			if err := bucket.Put([]byte(key), []byte("3")); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed stale counters: %v", err)
	}

	limiter.Prune()

	var remaining []string
	err = limiter.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			remaining = append(remaining, string(k))
			return nil
		})
	})
	if err != nil {
		t.Fatalf("scan counters: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("remaining keys = %v, want only today's counter", remaining)
	}

	// today's counter survived with its count intact
	if allowed, _ := limiter.Allow("today-key"); !allowed {
		t.Error("today's counter lost by prune")
	}
}

func TestEmptyKeyAlwaysAllowed(t *testing.T) {
	limiter, err := NewLimiter(filepath.Join(t.TempDir(), "ratelimit.db"), 1)
	if err != nil {
		t.Fatalf("open limiter: %v", err)
	}
	defer limiter.Close()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow("")
		if err != nil || !allowed {
			t.Fatalf("empty key must always pass, got %v %v", allowed, err)
		}
	}
}
