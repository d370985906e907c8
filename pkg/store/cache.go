package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

const (
	keyChannels = "channels"
	keyPosts    = "posts"
	keyPinned   = "pinned-channel"
)

// Cache is a diskv-backed snapshot store. It keeps the last fetched channel
// and post lists so the UI can paint before the first round trip, and the
// pinned channel so the default drop target survives restarts. A fetch
// always supersedes cached data.
type Cache struct {
	d *diskv.Diskv
}

// OpenCache opens (creating if needed) the cache at basePath.
func OpenCache(basePath string) *Cache {
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024,
	})}
}

func (c *Cache) put(key string, value interface{}) error {
	buf, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := c.d.Write(key, buf); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (c *Cache) get(key string, out interface{}) (bool, error) {
	if !c.d.Has(key) {
		return false, nil
	}
	buf, err := c.d.Read(key)
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

// SaveChannels stores the latest channel list.
func (c *Cache) SaveChannels(channels []schedule.TelegramChannel) error {
	return c.put(keyChannels, channels)
}

// Channels returns the cached channel list, if any.
func (c *Cache) Channels() ([]schedule.TelegramChannel, bool, error) {
	var channels []schedule.TelegramChannel
	ok, err := c.get(keyChannels, &channels)
	return channels, ok, err
}

// SavePosts stores the latest scheduled-post list.
func (c *Cache) SavePosts(posts []schedule.ScheduledPost) error {
	return c.put(keyPosts, posts)
}

// Posts returns the cached scheduled posts, if any.
func (c *Cache) Posts() ([]schedule.ScheduledPost, bool, error) {
	var posts []schedule.ScheduledPost
	ok, err := c.get(keyPosts, &posts)
	return posts, ok, err
}

// SavePinned stores the pinned channel documentId; empty clears the pin.
func (c *Cache) SavePinned(documentID string) error {
	if documentID == "" {
		if c.d.Has(keyPinned) {
			if err := c.d.Erase(keyPinned); err != nil {
				return fmt.Errorf("store: clear pin: %w", err)
			}
		}
		return nil
	}
	return c.put(keyPinned, documentID)
}

// Pinned returns the pinned channel documentId, or empty when unset.
func (c *Cache) Pinned() (string, error) {
	var id string
	ok, err := c.get(keyPinned, &id)
	if err != nil || !ok {
		return "", err
	}
	return strings.TrimSpace(id), nil
}
