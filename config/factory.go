// Package config 提供配置驱动的 Pipeline 组装：YAML/JSON 声明 Node 链，
// 由工厂按类型构建（召回信号、过滤器、打分、截断都可声明）。
package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ifybugsy/odiya-store-sub000/core"
	"github.com/ifybugsy/odiya-store-sub000/filter"
	"github.com/ifybugsy/odiya-store-sub000/pipeline"
	"github.com/ifybugsy/odiya-store-sub000/pkg/conv"
	"github.com/ifybugsy/odiya-store-sub000/rank"
	"github.com/ifybugsy/odiya-store-sub000/recall"
	"github.com/ifybugsy/odiya-store-sub000/rerank"
)

// Deps 是内置 Node 依赖的外部协作方，构建工厂时注入。
type Deps struct {
	Catalog core.CatalogReader
	History core.InteractionStore
	Logger  *zap.Logger
}

// DefaultFactory 返回包含所有内置 Node 的工厂，并合入全局注册的自定义 Node。
func DefaultFactory(deps Deps) *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	factory.Register("recall.fanout", buildFanoutNode(deps))
	factory.Register("filter", buildFilterNode)
	factory.Register("rank.signal_weight", buildSignalWeightNode)
	factory.Register("rerank.topn", buildTopNNode)

	registerCustom(factory)
	return factory
}

func buildFanoutNode(deps Deps) pipeline.NodeBuilder {
	return func(config map[string]any) (pipeline.Node, error) {
		sourcesConfig, ok := config["sources"].([]any)
		if !ok {
			return nil, fmt.Errorf("sources not found or invalid")
		}

		sources := make([]recall.Source, 0, len(sourcesConfig))
		for _, sc := range sourcesConfig {
			sourceMap, ok := sc.(map[string]any)
			if !ok {
				continue
			}
			src, err := buildSource(deps, sourceMap)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		}

		fanout := &recall.Fanout{
			Sources: sources,
			Logger:  deps.Logger,
		}
		if sec := conv.ConfigGetInt(config, "timeout", 0); sec > 0 {
			fanout.Timeout = time.Duration(sec) * time.Second
		}
		return fanout, nil
	}
}

func buildSource(deps Deps, sourceMap map[string]any) (recall.Source, error) {
	sourceType := conv.ConfigGet[string](sourceMap, "type", "")
	limit := conv.ConfigGetInt(sourceMap, "limit", 0)

	switch sourceType {
	case core.SignalCategory:
		return &recall.Category{Catalog: deps.Catalog, Limit: limit}, nil
	case core.SignalPriceBand:
		return &recall.PriceBand{
			Catalog: deps.Catalog,
			Limit:   limit,
			Low:     conv.ConfigGetFloat(sourceMap, "low", 0),
			High:    conv.ConfigGetFloat(sourceMap, "high", 0),
		}, nil
	case core.SignalVendor:
		return &recall.Vendor{Catalog: deps.Catalog, Limit: limit}, nil
	case core.SignalHistory:
		return &recall.UserHistory{
			History:  deps.History,
			Catalog:  deps.Catalog,
			Limit:    limit,
			Lookback: conv.ConfigGetInt(sourceMap, "lookback", 0),
		}, nil
	case core.SignalTrending:
		src := &recall.Trending{
			Catalog:    deps.Catalog,
			History:    deps.History,
			Limit:      limit,
			FetchLimit: conv.ConfigGetInt(sourceMap, "fetch_limit", 0),
		}
		if days := conv.ConfigGetInt(sourceMap, "window_days", 0); days > 0 {
			src.Window = time.Duration(days) * 24 * time.Hour
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", sourceType)
	}
}

func buildFilterNode(config map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := config["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		filterType := conv.ConfigGet[string](filterMap, "type", "")
		switch filterType {
		case "eligibility":
			filters = append(filters, &filter.Eligibility{})
		case "self_exclude":
			filters = append(filters, &filter.SelfExclude{})
		case "rule":
			name := conv.ConfigGet[string](filterMap, "name", "rule")
			expr := conv.ConfigGet[string](filterMap, "expr", "")
			if expr == "" {
				return nil, fmt.Errorf("rule filter %s: expr not found", name)
			}
			f, err := filter.NewRule(name, expr)
			if err != nil {
				return nil, err
			}
			filters = append(filters, f)
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.Node{Filters: filters}, nil
}

func buildSignalWeightNode(config map[string]any) (pipeline.Node, error) {
	weights := core.DefaultSignalWeights()
	if weightsMap, ok := config["weights"].(map[string]any); ok {
		weights.Category = conv.ConfigGetFloat(weightsMap, core.SignalCategory, weights.Category)
		weights.PriceBand = conv.ConfigGetFloat(weightsMap, core.SignalPriceBand, weights.PriceBand)
		weights.Vendor = conv.ConfigGetFloat(weightsMap, core.SignalVendor, weights.Vendor)
		weights.History = conv.ConfigGetFloat(weightsMap, core.SignalHistory, weights.History)
		weights.Trending = conv.ConfigGetFloat(weightsMap, core.SignalTrending, weights.Trending)
	}
	return &rank.SignalWeight{Weights: weights}, nil
}

func buildTopNNode(config map[string]any) (pipeline.Node, error) {
	n := conv.ConfigGetInt(config, "n", core.MaxRecommendations)
	return &rerank.TopN{N: n}, nil
}
