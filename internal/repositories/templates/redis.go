package templates

import (
	"context"
	"encoding/json"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-rooms/internal/redis"
)

const (
	// Key pattern: room_templates:{collection}
	snapshotKeyPrefix = "room_templates:"
	// Set of every saved collection name
	collectionsKey = "room_templates_collections"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a snapshot repository backed by Redis
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	collection, err := validateCollection(input.Collection)
	if err != nil {
		return nil, err
	}

	for i, t := range input.Templates {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid template at index %d", i).WithMeta("index", i)
		}
	}

	snapshot := &Snapshot{
		Collection: collection,
		Templates:  cloneAll(input.Templates),
		SavedAt:    r.clock.Now(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, snapshotKeyPrefix+collection, data, input.TTL)
		pipe.SAdd(ctx, collectionsKey, collection)
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot in Redis")
	}

	return &SaveOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	collection, err := validateCollection(input.Collection)
	if err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, snapshotKeyPrefix+collection).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("snapshot %q not found", collection).WithMeta("collection", collection)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get snapshot from Redis")
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	return &LoadOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	collection, err := validateCollection(input.Collection)
	if err != nil {
		return nil, err
	}

	var del *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, snapshotKeyPrefix+collection)
		pipe.SRem(ctx, collectionsKey, collection)
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete snapshot from Redis")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("snapshot %q not found", collection).WithMeta("collection", collection)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, collectionsKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list snapshots")
	}

	// drop names whose snapshot expired
	live := make([]string, 0, len(names))
	for _, name := range names {
		n, err := r.client.Exists(ctx, snapshotKeyPrefix+name).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check snapshot")
		}
		if n > 0 {
			live = append(live, name)
		}
	}
	slices.Sort(live)

	return &ListOutput{Collections: live}, nil
}
