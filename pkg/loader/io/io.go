package io

import (
	"context"
	"os"
	"sync"

	"github.com/nexus-nlp/nexus/pkg/loader"

	"golang.org/x/sync/singleflight"
)

// IOMentionFileLoader loads mention documents directly from the local
// filesystem with caching.
type IOMentionFileLoader struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewIOMentionFileLoader creates a new filesystem-based file loader.
func NewIOMentionFileLoader() *IOMentionFileLoader {
	return &IOMentionFileLoader{
		cache: make(map[string][]byte),
	}
}

// GetFileText reads the file content from the filesystem. Results are cached.
func (l *IOMentionFileLoader) GetFileText(ctx context.Context, file loader.MentionFile) ([]byte, error) {
	key := loader.CacheKey(file)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		result, err := os.ReadFile(file.FilePath)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = result
		l.cacheMu.Unlock()

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
