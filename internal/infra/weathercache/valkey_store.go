package weathercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
)

// ValkeyStore caches observations in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "weather"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements wardrobe.WeatherCache.
func (s *ValkeyStore) Get(ctx context.Context, location string) (wardrobe.Observation, bool, error) {
	if location == "" {
		return wardrobe.Observation{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.entryKey(location)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return wardrobe.Observation{}, false, nil
		}
		return wardrobe.Observation{}, false, err
	}
	var obs wardrobe.Observation
	if err := json.Unmarshal([]byte(payload), &obs); err != nil {
		return wardrobe.Observation{}, false, err
	}
	return obs, true, nil
}

// Set implements wardrobe.WeatherCache.
func (s *ValkeyStore) Set(ctx context.Context, location string, obs wardrobe.Observation, ttl time.Duration) error {
	payload, err := json.Marshal(obs)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(location)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(location string) string {
	return fmt.Sprintf("%s:current:%s", s.prefix, location)
}

var _ wardrobe.WeatherCache = (*ValkeyStore)(nil)
