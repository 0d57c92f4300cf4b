package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"foursquared/db"
	"foursquared/store"

	"github.com/rs/zerolog/log"
)

// STATE_SNAPSHOT_KEY_V1 versions the snapshot format so a future shape
// change can hydrate from a fresh key instead of a stale blob.
const STATE_SNAPSHOT_KEY_V1 = "foursquared_state_v1"

// RedisStateDAO persists the accumulated search/entity state as a single
// JSON snapshot. The snapshot is written after every successful merge and
// read back once at startup.
type RedisStateDAO struct {
	client db.RedisClient
}

// NewRedisStateDAO initializes a RedisStateDAO with the Redis client.
func NewRedisStateDAO(client db.RedisClient) *RedisStateDAO {
	return &RedisStateDAO{client: client}
}

// SaveSnapshot serializes the state and stores it under the versioned key.
func (dao *RedisStateDAO) SaveSnapshot(state *store.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state snapshot: %w", err)
	}
	if err := dao.client.Set(STATE_SNAPSHOT_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set state snapshot in redis: %w", err)
	}
	return nil
}

// LoadSnapshot reads the persisted state back. A missing key is not an
// error, it just means a fresh start.
func (dao *RedisStateDAO) LoadSnapshot() (*store.State, error) {
	raw, err := dao.client.Get(STATE_SNAPSHOT_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		log.Debug().Str("key", STATE_SNAPSHOT_KEY_V1).Msg("no persisted state snapshot, starting empty")
		return store.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state snapshot from redis: %w", err)
	}

	state := store.NewState()
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state snapshot JSON: %w", err)
	}
	return state, nil
}

// ClearSnapshot removes the persisted snapshot.
func (dao *RedisStateDAO) ClearSnapshot() error {
	if err := dao.client.Del(STATE_SNAPSHOT_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete state snapshot key %s: %w", STATE_SNAPSHOT_KEY_V1, err)
	}
	return nil
}
