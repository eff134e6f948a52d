package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/store"
)

func recs(ids ...string) []core.Recommendation {
	out := make([]core.Recommendation, 0, len(ids))
	for i, id := range ids {
		out = append(out, core.Recommendation{
			ProductID: id,
			Score:     1.0 - float64(i)*0.1,
			Reason:    core.DefaultReason,
		})
	}
	return out
}

func TestCache_PutGet(t *testing.T) {
	ms := store.NewMemoryStore()
	defer ms.Close()
	c := New(ms)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "p1"); ok {
		t.Fatal("empty cache must miss")
	}

	if err := c.Put(ctx, "p1", recs("a", "b")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	doc, ok := c.Get(ctx, "p1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if doc.ProductID != "p1" || len(doc.Recommendations) != 2 {
		t.Errorf("unexpected doc: %+v", doc)
	}
	if doc.TTLSeconds != int(core.DefaultCacheTTL/time.Second) {
		t.Errorf("ttl = %d, want %d", doc.TTLSeconds, int(core.DefaultCacheTTL/time.Second))
	}
}

func TestCache_UpsertReplacesWholesale(t *testing.T) {
	ms := store.NewMemoryStore()
	defer ms.Close()
	c := New(ms)
	ctx := context.Background()

	c.Put(ctx, "p1", recs("a", "b", "c"))
	c.Put(ctx, "p1", recs("z"))

	doc, ok := c.Get(ctx, "p1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(doc.Recommendations) != 1 || doc.Recommendations[0].ProductID != "z" {
		t.Errorf("upsert did not replace wholesale: %+v", doc.Recommendations)
	}
}

func TestCache_ExpiredReadIsMiss(t *testing.T) {
	base := time.Now()
	current := base
	clock := func() time.Time { return current }

	ms := store.NewMemoryStore()
	defer ms.Close()
	c := New(ms, WithClock(clock))
	ctx := context.Background()

	c.Put(ctx, "p1", recs("a"))

	current = base.Add(59 * time.Minute)
	if _, ok := c.Get(ctx, "p1"); !ok {
		t.Error("entry must still be fresh before TTL")
	}

	current = base.Add(61 * time.Minute)
	if _, ok := c.Get(ctx, "p1"); ok {
		t.Error("expired entry must read as miss")
	}
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	ms := store.NewMemoryStore()
	defer ms.Close()
	c := New(ms)
	ctx := context.Background()

	if err := ms.Set(ctx, "rec:p1", []byte("{not json")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := c.Get(ctx, "p1"); ok {
		t.Error("corrupt entry must read as miss")
	}
}

func TestCache_CustomTTL(t *testing.T) {
	base := time.Now()
	current := base
	clock := func() time.Time { return current }

	ms := store.NewMemoryStore()
	defer ms.Close()
	c := New(ms, WithTTL(time.Minute), WithClock(clock))
	ctx := context.Background()

	c.Put(ctx, "p1", recs("a"))
	current = base.Add(2 * time.Minute)
	if _, ok := c.Get(ctx, "p1"); ok {
		t.Error("entry must expire after custom TTL")
	}
}
