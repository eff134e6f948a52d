package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ifybugsy/odiya-store-sub000/pipeline"
)

// NodeBuilder 与 pipeline.NodeBuilder 一致：根据 config 构建 Node。
type NodeBuilder = pipeline.NodeBuilder

// 全局注册表只收集不依赖外部协作方的自定义 Node；
// 需要 Catalog/History 的内置 Node 由 DefaultFactory 按 Deps 闭包注册。
var (
	customBuilders   = make(map[string]NodeBuilder)
	customBuildersMu sync.RWMutex
)

// Register 注册一种自定义 Node 的构建逻辑，建议在组件的 init 中调用。
func Register(typeName string, builder NodeBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	customBuildersMu.Lock()
	defer customBuildersMu.Unlock()
	customBuilders[typeName] = builder
}

// ValidatePipelineConfig 校验 pipeline 配置中所有 node 类型均已在 factory 注册；
// 若有未支持类型则返回包含已支持列表的错误。
func ValidatePipelineConfig(cfg *pipeline.Config, factory *pipeline.NodeFactory) error {
	if cfg == nil {
		return nil
	}
	for _, nc := range cfg.Pipeline.Nodes {
		if nc.Type == "" {
			continue
		}
		if !factory.Has(nc.Type) {
			supported := factory.Types()
			sort.Strings(supported)
			return fmt.Errorf("unsupported node type %q (supported: %v)", nc.Type, supported)
		}
	}
	return nil
}

func registerCustom(f *pipeline.NodeFactory) {
	customBuildersMu.RLock()
	defer customBuildersMu.RUnlock()
	for typeName, builder := range customBuilders {
		f.Register(typeName, builder)
	}
}
