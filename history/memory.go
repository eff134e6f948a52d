// Package history 提供 core.InteractionStore 的内存与 Redis 实现。
package history

import (
	"context"
	"sync"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// MemoryStore 是内存行为日志，append-only，用于测试/开发/原型。
type MemoryStore struct {
	mu     sync.RWMutex
	events []*core.InteractionEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(ctx context.Context, event *core.InteractionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *event
	m.events = append(m.events, &cp)
	return nil
}

func (m *MemoryStore) RecentByUser(
	ctx context.Context,
	userID string,
	types []core.InteractionType,
	limit int,
) ([]*core.InteractionEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	typeSet := make(map[core.InteractionType]struct{}, len(types))
	for _, t := range types {
		typeSet[t] = struct{}{}
	}

	// 追加写保证时间有序，从尾部往前扫即按时间倒序
	var out []*core.InteractionEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		ev := m.events[i]
		if ev.UserID != userID {
			continue
		}
		if len(typeSet) > 0 {
			if _, ok := typeSet[ev.Type]; !ok {
				continue
			}
		}
		cp := *ev
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryStore) ViewCounts(ctx context.Context, productIDs []string) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idSet := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		idSet[id] = struct{}{}
	}

	counts := make(map[string]int64, len(productIDs))
	for _, ev := range m.events {
		if ev.Type != core.InteractionView {
			continue
		}
		if _, ok := idSet[ev.ProductID]; !ok {
			continue
		}
		counts[ev.ProductID]++
	}
	return counts, nil
}

var _ core.InteractionStore = (*MemoryStore)(nil)
