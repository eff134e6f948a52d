package history

import (
	"context"
	"testing"
	"time"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

func TestMemoryStore_RecentByUser(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	events := []*core.InteractionEvent{
		{UserID: "u1", ProductID: "p1", Type: core.InteractionView, CreatedAt: now.Add(-4 * time.Minute)},
		{UserID: "u1", ProductID: "p2", Type: core.InteractionPurchase, CreatedAt: now.Add(-3 * time.Minute)},
		{UserID: "u2", ProductID: "p3", Type: core.InteractionPurchase, CreatedAt: now.Add(-2 * time.Minute)},
		{UserID: "u1", ProductID: "p4", Type: core.InteractionWishlist, CreatedAt: now.Add(-1 * time.Minute)},
	}
	for _, ev := range events {
		if err := ms.Append(ctx, ev); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := ms.RecentByUser(ctx, "u1", []core.InteractionType{core.InteractionPurchase, core.InteractionWishlist}, 10)
	if err != nil {
		t.Fatalf("RecentByUser() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	// 时间倒序：最近的在前
	if got[0].ProductID != "p4" || got[1].ProductID != "p2" {
		t.Errorf("order = [%s %s], want [p4 p2]", got[0].ProductID, got[1].ProductID)
	}

	// limit 截断
	got, err = ms.RecentByUser(ctx, "u1", nil, 1)
	if err != nil {
		t.Fatalf("RecentByUser() error = %v", err)
	}
	if len(got) != 1 || got[0].ProductID != "p4" {
		t.Errorf("limited result = %v, want [p4]", got)
	}
}

func TestMemoryStore_ViewCounts(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		ms.Append(ctx, &core.InteractionEvent{UserID: "u", ProductID: "p1", Type: core.InteractionView, CreatedAt: now})
	}
	ms.Append(ctx, &core.InteractionEvent{UserID: "u", ProductID: "p2", Type: core.InteractionView, CreatedAt: now})
	// 非 view 行为不计数
	ms.Append(ctx, &core.InteractionEvent{UserID: "u", ProductID: "p2", Type: core.InteractionClick, CreatedAt: now})

	counts, err := ms.ViewCounts(ctx, []string{"p1", "p2", "p3"})
	if err != nil {
		t.Fatalf("ViewCounts() error = %v", err)
	}
	if counts["p1"] != 3 {
		t.Errorf("counts[p1] = %d, want 3", counts["p1"])
	}
	if counts["p2"] != 1 {
		t.Errorf("counts[p2] = %d, want 1", counts["p2"])
	}
	if _, ok := counts["p3"]; ok {
		t.Error("p3 has no views, must be absent")
	}
}
