package history

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/ifybugsy/odiya-store-sub000/core"
)

const (
	// 每个 user:type 列表保留的行为条数上限，超出部分裁剪。
	maxListLen = 500

	viewCountKey = "product:views"
)

// RedisStore 是 Redis 实现的行为日志。
// 每个 (user, type) 一个 list（新行为 LPUSH 到头部），
// 浏览计数用一个全局 zset 维护（ZINCRBY），供 trending 信号排序。
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient 复用已有连接。
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func listKey(userID string, typ core.InteractionType) string {
	return "history:" + userID + ":" + string(typ)
}

func (r *RedisStore) Append(ctx context.Context, event *core.InteractionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := listKey(event.UserID, event.Type)
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, maxListLen-1)
	if event.Type == core.InteractionView {
		pipe.ZIncrBy(ctx, viewCountKey, 1, event.ProductID)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisStore) RecentByUser(
	ctx context.Context,
	userID string,
	types []core.InteractionType,
	limit int,
) ([]*core.InteractionEvent, error) {
	if len(types) == 0 {
		types = []core.InteractionType{
			core.InteractionView, core.InteractionClick, core.InteractionPurchase,
			core.InteractionWishlist, core.InteractionCompare, core.InteractionReview,
		}
	}

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	var all []*core.InteractionEvent
	for _, typ := range types {
		vals, err := r.client.LRange(ctx, listKey(userID, typ), 0, stop).Result()
		if err != nil {
			return nil, err
		}
		for _, v := range vals {
			var ev core.InteractionEvent
			if json.Unmarshal([]byte(v), &ev) != nil {
				continue
			}
			all = append(all, &ev)
		}
	}

	// 各类型分别有序，跨类型合并后按时间倒序重排
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *RedisStore) ViewCounts(ctx context.Context, productIDs []string) (map[string]int64, error) {
	if len(productIDs) == 0 {
		return map[string]int64{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.FloatCmd, len(productIDs))
	for i, id := range productIDs {
		cmds[i] = pipe.ZScore(ctx, viewCountKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	counts := make(map[string]int64, len(productIDs))
	for i, cmd := range cmds {
		score, err := cmd.Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		counts[productIDs[i]] = int64(score)
	}
	return counts, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ core.InteractionStore = (*RedisStore)(nil)
