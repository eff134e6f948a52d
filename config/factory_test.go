package config

import (
	"context"
	"testing"
	"time"

	"github.com/ifybugsy/odiya-store-sub000/catalog"
	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/history"
	"github.com/ifybugsy/odiya-store-sub000/pipeline"
)

func testDeps() Deps {
	return Deps{
		Catalog: catalog.NewMemoryCatalog(),
		History: history.NewMemoryStore(),
	}
}

func fullPipelineConfig() *pipeline.Config {
	cfg := &pipeline.Config{}
	cfg.Pipeline.Name = "related_products"
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{
		{
			Type: "recall.fanout",
			Config: map[string]any{
				"timeout": 2,
				"sources": []any{
					map[string]any{"type": "category", "limit": 50},
					map[string]any{"type": "price_band", "limit": 30},
					map[string]any{"type": "vendor", "limit": 20},
					map[string]any{"type": "user_history", "limit": 30, "lookback": 10},
					map[string]any{"type": "trending", "limit": 20, "window_days": 30},
				},
			},
		},
		{
			Type: "filter",
			Config: map[string]any{
				"filters": []any{
					map[string]any{"type": "eligibility"},
					map[string]any{"type": "self_exclude"},
					map[string]any{"type": "rule", "name": "budget", "expr": `product.price < 1000000.0`},
				},
			},
		},
		{Type: "rank.signal_weight", Config: map[string]any{}},
		{Type: "rerank.topn", Config: map[string]any{"n": 12}},
	}
	return cfg
}

func TestDefaultFactory_BuildsFullPipeline(t *testing.T) {
	factory := DefaultFactory(testDeps())
	cfg := fullPipelineConfig()

	if err := ValidatePipelineConfig(cfg, factory); err != nil {
		t.Fatalf("ValidatePipelineConfig() error = %v", err)
	}

	pipe, err := cfg.BuildPipeline(factory)
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	if len(pipe.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(pipe.Nodes))
	}

	wantKinds := []pipeline.Kind{
		pipeline.KindRecall, pipeline.KindFilter, pipeline.KindRank, pipeline.KindReRank,
	}
	for i, node := range pipe.Nodes {
		if node.Kind() != wantKinds[i] {
			t.Errorf("node %d kind = %s, want %s", i, node.Kind(), wantKinds[i])
		}
	}

	// 空目录跑一遍确认链路可执行
	rctx := &core.RecommendContext{
		Source: &core.Product{ID: "src", Category: "X", Price: 100, Status: core.StatusApproved, CreatedAt: time.Now()},
	}
	items, err := pipe.Run(context.Background(), rctx, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("empty catalog produced %d items", len(items))
	}
}

func TestValidatePipelineConfig_UnknownType(t *testing.T) {
	factory := DefaultFactory(testDeps())
	cfg := &pipeline.Config{}
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{{Type: "rank.deepfm"}}

	if err := ValidatePipelineConfig(cfg, factory); err == nil {
		t.Error("expected error for unregistered node type")
	}
}

func TestBuildFanoutNode_UnknownSource(t *testing.T) {
	factory := DefaultFactory(testDeps())
	_, err := factory.Build("recall.fanout", map[string]any{
		"sources": []any{map[string]any{"type": "ann"}},
	})
	if err == nil {
		t.Error("expected error for unknown source type")
	}
}
