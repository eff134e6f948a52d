// Package catalog 提供 core.CatalogReader 的内存实现。
// 店铺侧的真实目录存储（MongoDB/MySQL）由 CRUD 层适配；
// 内存实现用于测试/开发/原型，同时支持写入以便构造数据。
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

// MemoryCatalog 是内存商品目录，RWMutex 保护，保持写入顺序遍历。
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]*core.Product
	order    []string // 写入顺序，保证扫描结果确定
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products: make(map[string]*core.Product),
	}
}

// Put 写入/覆盖商品记录（测试与原型用；推荐引擎自身只读）。
func (m *MemoryCatalog) Put(p *core.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *p
	if _, ok := m.products[p.ID]; !ok {
		m.order = append(m.order, p.ID)
	}
	m.products[p.ID] = &cp
}

func (m *MemoryCatalog) GetProduct(ctx context.Context, id string) (*core.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, core.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryCatalog) FindByCategory(ctx context.Context, category string, limit int) ([]*core.Product, error) {
	return m.scan(limit, func(p *core.Product) bool {
		return p.Category == category
	})
}

func (m *MemoryCatalog) FindByPriceBetween(ctx context.Context, low, high float64, limit int) ([]*core.Product, error) {
	return m.scan(limit, func(p *core.Product) bool {
		return p.Price >= low && p.Price <= high
	})
}

func (m *MemoryCatalog) FindByVendor(ctx context.Context, vendorID string, limit int) ([]*core.Product, error) {
	return m.scan(limit, func(p *core.Product) bool {
		return p.VendorID == vendorID
	})
}

func (m *MemoryCatalog) FindRecent(ctx context.Context, category string, since time.Time, limit int) ([]*core.Product, error) {
	return m.scan(limit, func(p *core.Product) bool {
		return p.Category == category && p.CreatedAt.After(since)
	})
}

func (m *MemoryCatalog) scan(limit int, match func(*core.Product) bool) ([]*core.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*core.Product
	for _, id := range m.order {
		if limit > 0 && len(out) >= limit {
			break
		}
		p := m.products[id]
		if match(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

var _ core.CatalogReader = (*MemoryCatalog)(nil)
