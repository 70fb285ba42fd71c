package scores

import (
	"fmt"
	"sync"

	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/quasilyte/gdata"
)

// Cache is the local durable mirror of the last good leaderboard.
type Cache interface {
	Load() ([]leaderboard.Entry, error)
	Save(entries []leaderboard.Entry) error
}

// GDataCache stores the leaderboard as one JSON item in the gdata save
// directory of the application.
type GDataCache struct {
	manager *gdata.Manager
	key     string
}

// OpenGDataCache opens the gdata manager for appName.
func OpenGDataCache(appName, key string) (*GDataCache, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return &GDataCache{manager: m, key: key}, nil
}

// Load implements Cache. A missing item yields no entries and no error.
func (c *GDataCache) Load() ([]leaderboard.Entry, error) {
	data, err := c.manager.LoadItem(c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if data == nil {
		return nil, nil
	}
	return leaderboard.Decode(data)
}

// Save implements Cache.
func (c *GDataCache) Save(entries []leaderboard.Entry) error {
	data, err := leaderboard.Encode(entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := c.manager.SaveItem(c.key, data); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// MemoryCache keeps the encoded leaderboard in memory. It stands in for
// GDataCache when the save directory is unavailable.
type MemoryCache struct {
	mu   sync.Mutex
	data []byte
}

// Load implements Cache.
func (c *MemoryCache) Load() ([]leaderboard.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return nil, nil
	}
	return leaderboard.Decode(c.data)
}

// Save implements Cache.
func (c *MemoryCache) Save(entries []leaderboard.Entry) error {
	data, err := leaderboard.Encode(entries)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
	return nil
}
