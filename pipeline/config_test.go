package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

const sampleYAML = `
pipeline:
  name: related_products
  nodes:
    - type: noop
      config:
        tag: first
    - type: noop
      config:
        tag: second
`

type noopNode struct {
	tag string
}

func (n *noopNode) Name() string { return "noop." + n.tag }
func (n *noopNode) Kind() Kind   { return KindFilter }

func (n *noopNode) Process(_ context.Context, _ *core.RecommendContext, items []*core.Item) ([]*core.Item, error) {
	return items, nil
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cfg.Pipeline.Name != "related_products" {
		t.Errorf("name = %q, want related_products", cfg.Pipeline.Name)
	}
	if len(cfg.Pipeline.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(cfg.Pipeline.Nodes))
	}

	factory := NewNodeFactory()
	factory.Register("noop", func(config map[string]any) (Node, error) {
		tag, _ := config["tag"].(string)
		return &noopNode{tag: tag}, nil
	})

	pipe, err := cfg.BuildPipeline(factory)
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	if len(pipe.Nodes) != 2 {
		t.Fatalf("pipeline has %d nodes, want 2", len(pipe.Nodes))
	}
	if pipe.Nodes[0].Name() != "noop.first" || pipe.Nodes[1].Name() != "noop.second" {
		t.Errorf("node order = [%s %s]", pipe.Nodes[0].Name(), pipe.Nodes[1].Name())
	}
}

func TestNodeFactory_UnknownType(t *testing.T) {
	factory := NewNodeFactory()
	if _, err := factory.Build("missing", nil); err == nil {
		t.Error("expected error for unknown node type")
	}
	if factory.Has("missing") {
		t.Error("Has() must be false for unregistered type")
	}
}
