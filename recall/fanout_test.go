package recall

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pkg/utils"
)

// stubSource 返回固定候选或固定错误。
type stubSource struct {
	name  string
	items []*core.Item
	err   error
	delay time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Recall(ctx context.Context, _ *core.RecommendContext) ([]*core.Item, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, s.err
}

func item(id, signal string) *core.Item {
	it := core.NewItem(id)
	it.PutLabel(core.LabelSignal, utils.Label{Value: signal, Source: "recall"})
	return it
}

func TestFanout_MergesSignalLabels(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "category", items: []*core.Item{item("p1", core.SignalCategory), item("p2", core.SignalCategory)}},
			&stubSource{name: "price_band", items: []*core.Item{item("p1", core.SignalPriceBand)}},
		},
	}

	out, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d items, want 2", len(out))
	}

	byID := make(map[string]*core.Item, len(out))
	for _, it := range out {
		byID[it.ID] = it
	}

	signals := byID["p1"].Signals()
	if len(signals) != 2 || signals[0] != core.SignalCategory || signals[1] != core.SignalPriceBand {
		t.Errorf("p1 signals = %v, want [category price_band]", signals)
	}
	if got := byID["p2"].Signals(); len(got) != 1 || got[0] != core.SignalCategory {
		t.Errorf("p2 signals = %v, want [category]", got)
	}
}

func TestFanout_PartialFailureKeepsOtherSources(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "broken", err: errors.New("store down")},
			&stubSource{name: "vendor", items: []*core.Item{item("p3", core.SignalVendor)}},
		},
	}

	out, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "p3" {
		t.Errorf("got %v, want single item p3", out)
	}
}

func TestFanout_TimeoutDropsSlowSource(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "slow", delay: 200 * time.Millisecond, items: []*core.Item{item("slow1", core.SignalTrending)}},
			&stubSource{name: "fast", items: []*core.Item{item("fast1", core.SignalCategory)}},
		},
		Timeout: 20 * time.Millisecond,
	}

	out, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "fast1" {
		t.Errorf("got %v, want single item fast1", out)
	}
}

func TestFanout_DeterministicOrderAcrossRuns(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "a", delay: 10 * time.Millisecond, items: []*core.Item{item("x", core.SignalCategory)}},
			&stubSource{name: "b", items: []*core.Item{item("y", core.SignalVendor)}},
		},
	}

	// 信号 a 更慢，但合并顺序仍按 Sources 顺序
	for i := 0; i < 3; i++ {
		out, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		if len(out) != 2 || out[0].ID != "x" || out[1].ID != "y" {
			t.Fatalf("run %d: order = %v, want [x y]", i, out)
		}
	}
}
