package gamestate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/pkg/clock"
	"github.com/castaway-games/angler/internal/redis"
)

const defaultSaveKey = "save:default"

// RedisConfig holds configuration for the Redis repository
type RedisConfig struct {
	Client redis.Client

	// SaveKey identifies the save slot; empty means the default slot
	SaveKey string

	// Clock stamps saves; nil means the real clock
	Clock clock.Clock
}

// Validate ensures the config is valid
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type redisRepository struct {
	client redis.Client
	key    string
	clock  clock.Clock
}

// NewRedis creates a Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	key := cfg.SaveKey
	if key == "" {
		key = defaultSaveKey
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{client: cfg.Client, key: key, clock: clk}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save stores the document with its digest under the save-slot key
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("state cannot be nil")
	}

	doc := ToDocument(input.State)
	doc.SavedAt = r.clock.Now().UTC().Format(time.RFC3339)
	checksum, err := ComputeChecksum(doc)
	if err != nil {
		return nil, err
	}
	doc.Checksum = checksum

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize save document")
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store save under %s", r.key)
	}

	slog.Debug("saved game state", "key", r.key, "checksum", checksum)
	return &SaveOutput{Checksum: checksum}, nil
}

// Load fetches the save slot and verifies its digest before trusting it
func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	result, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.NotFoundf("no save under %s", r.key)
		}
		return nil, errors.Wrapf(err, "failed to fetch save under %s", r.key)
	}

	var doc Document
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "saved document is not valid JSON")
	}

	if err := verify(&doc); err != nil {
		return nil, err
	}

	return &LoadOutput{State: FromDocument(&doc)}, nil
}
