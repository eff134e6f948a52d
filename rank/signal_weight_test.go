package rank

import (
	"context"
	"math"
	"testing"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/pkg/utils"
)

func itemWithSignals(id string, signals ...string) *core.Item {
	it := core.NewItem(id)
	for _, s := range signals {
		it.PutLabel(core.LabelSignal, utils.Label{Value: s, Source: "recall"})
	}
	return it
}

func TestSignalWeight_Process(t *testing.T) {
	tests := []struct {
		name       string
		weights    core.SignalWeights
		items      []*core.Item
		wantScores map[string]float64
		wantOrder  []string
	}{
		{
			name:    "accumulates weight per signal",
			weights: core.DefaultSignalWeights(),
			items: []*core.Item{
				itemWithSignals("a", core.SignalVendor),
				itemWithSignals("b", core.SignalCategory, core.SignalPriceBand),
				itemWithSignals("c", core.SignalCategory),
			},
			wantScores: map[string]float64{"a": 0.20, "b": 0.55, "c": 0.35},
			wantOrder:  []string{"b", "c", "a"},
		},
		{
			name:    "duplicate signal counted once",
			weights: core.DefaultSignalWeights(),
			items: []*core.Item{
				itemWithSignals("a", core.SignalCategory, core.SignalCategory, core.SignalCategory),
			},
			wantScores: map[string]float64{"a": 0.35},
			wantOrder:  []string{"a"},
		},
		{
			name:    "unknown signal scores zero",
			weights: core.DefaultSignalWeights(),
			items: []*core.Item{
				itemWithSignals("a", "mystery"),
				itemWithSignals("b", core.SignalTrending),
			},
			wantScores: map[string]float64{"a": 0, "b": 0.10},
			wantOrder:  []string{"b", "a"},
		},
		{
			name: "alternate weights",
			weights: core.SignalWeights{
				Category: 0.1, PriceBand: 0.1, Vendor: 0.1, History: 0.1, Trending: 0.6,
			},
			items: []*core.Item{
				itemWithSignals("a", core.SignalCategory, core.SignalPriceBand),
				itemWithSignals("b", core.SignalTrending),
			},
			wantScores: map[string]float64{"a": 0.2, "b": 0.6},
			wantOrder:  []string{"b", "a"},
		},
		{
			name:    "ties keep input order",
			weights: core.DefaultSignalWeights(),
			items: []*core.Item{
				itemWithSignals("first", core.SignalVendor),
				itemWithSignals("second", core.SignalVendor),
				itemWithSignals("third", core.SignalPriceBand),
			},
			wantScores: map[string]float64{"first": 0.20, "second": 0.20, "third": 0.20},
			wantOrder:  []string{"first", "second", "third"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &SignalWeight{Weights: tt.weights}
			out, err := node.Process(context.Background(), nil, tt.items)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}

			if len(out) != len(tt.wantOrder) {
				t.Fatalf("got %d items, want %d", len(out), len(tt.wantOrder))
			}
			for i, it := range out {
				if it.ID != tt.wantOrder[i] {
					t.Errorf("order[%d] = %s, want %s", i, it.ID, tt.wantOrder[i])
				}
				if want := tt.wantScores[it.ID]; math.Abs(it.Score-want) > 1e-9 {
					t.Errorf("score(%s) = %v, want %v", it.ID, it.Score, want)
				}
			}
		})
	}
}
