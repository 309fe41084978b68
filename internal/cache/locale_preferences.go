package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// preferenceTTL keeps abandoned device preferences from accumulating forever.
const preferenceTTL = 90 * 24 * time.Hour

// LocalePreferences stores per-device locale choices in Redis. It implements
// the i18n.PreferenceStore interface.
type LocalePreferences struct {
	redis *RedisClient
}

// NewLocalePreferences creates a new LocalePreferences store.
func NewLocalePreferences(redis *RedisClient) *LocalePreferences {
	return &LocalePreferences{redis: redis}
}

func preferenceKey(deviceID string) string {
	return fmt.Sprintf("locale:pref:%s", deviceID)
}

// Get returns the stored locale for a device, or "" when none is saved.
func (s *LocalePreferences) Get(ctx context.Context, deviceID string) (string, error) {
	locale, err := s.redis.Get(ctx, preferenceKey(deviceID))
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get locale preference: %w", err)
	}
	return locale, nil
}

// Set saves the locale for a device, refreshing the retention window.
func (s *LocalePreferences) Set(ctx context.Context, deviceID, locale string) error {
	if err := s.redis.Set(ctx, preferenceKey(deviceID), locale, preferenceTTL); err != nil {
		return fmt.Errorf("set locale preference: %w", err)
	}
	return nil
}
