package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// bumpSequenceScript advances the id sequence to at least ARGV[1]. Used by Put
// so seeded ids are never handed out again by Insert.
var bumpSequenceScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local want = tonumber(ARGV[1])
if want > cur then
	redis.call('SET', KEYS[1], want)
end
return want
`)

// Redis is a Store backed by a redis hash per entity type. INCR on the
// sequence key makes id allocation atomic across processes; ids are monotonic,
// so listing by ascending id preserves insertion order.
type Redis[E any] struct {
	client   *redis.Client
	seqKey   string
	hashKey  string
	keyspace string
}

var _ Store[struct{}] = (*Redis[struct{}])(nil)

func NewRedis[E any](client *redis.Client, keyspace string) *Redis[E] {
	return &Redis[E]{
		client:   client,
		seqKey:   keyspace + ":next_id",
		hashKey:  keyspace + ":records",
		keyspace: keyspace,
	}
}

func (r *Redis[E]) Insert(ctx context.Context, build func(id int64) E) (E, error) {
	var zero E

	id, err := r.client.Incr(ctx, r.seqKey).Result()
	if err != nil {
		return zero, fmt.Errorf("redis store %s: allocate id: %w", r.keyspace, err)
	}

	entity := build(id)
	if err := r.set(ctx, id, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

func (r *Redis[E]) Get(ctx context.Context, id int64) (E, bool, error) {
	var zero E

	raw, err := r.client.HGet(ctx, r.hashKey, strconv.FormatInt(id, 10)).Result()
	if err == redis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("redis store %s: get %d: %w", r.keyspace, id, err)
	}

	var entity E
	if err := json.Unmarshal([]byte(raw), &entity); err != nil {
		return zero, false, fmt.Errorf("redis store %s: decode %d: %w", r.keyspace, id, err)
	}
	return entity, true, nil
}

func (r *Redis[E]) List(ctx context.Context) ([]E, error) {
	raw, err := r.client.HGetAll(ctx, r.hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis store %s: list: %w", r.keyspace, err)
	}

	ids := make([]int64, 0, len(raw))
	byID := make(map[int64]string, len(raw))
	for field, value := range raw {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("redis store %s: bad record key %q: %w", r.keyspace, field, err)
		}
		ids = append(ids, id)
		byID[id] = value
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]E, 0, len(ids))
	for _, id := range ids {
		var entity E
		if err := json.Unmarshal([]byte(byID[id]), &entity); err != nil {
			return nil, fmt.Errorf("redis store %s: decode %d: %w", r.keyspace, id, err)
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *Redis[E]) Put(ctx context.Context, id int64, entity E) error {
	if err := r.set(ctx, id, entity); err != nil {
		return err
	}
	if err := bumpSequenceScript.Run(ctx, r.client, []string{r.seqKey}, id).Err(); err != nil {
		return fmt.Errorf("redis store %s: bump sequence to %d: %w", r.keyspace, id, err)
	}
	return nil
}

func (r *Redis[E]) set(ctx context.Context, id int64, entity E) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("redis store %s: encode %d: %w", r.keyspace, id, err)
	}
	if err := r.client.HSet(ctx, r.hashKey, strconv.FormatInt(id, 10), raw).Err(); err != nil {
		return fmt.Errorf("redis store %s: set %d: %w", r.keyspace, id, err)
	}
	return nil
}
