package load

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// currentCacheVersion defines the version of the cached dataset encoding.
const currentCacheVersion = 1

// maxCacheAge bounds how long a cached dataset stays valid.
const maxCacheAge = 7 * 24 * time.Hour

// CachedLines loads the line source at path through the dataset store.
// A nil manager or missing dataset store falls back to a direct parse.
func CachedLines(path string, mgr contract.StoreManager) ([]schema.LineRecord, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetDatasetStore()
	}
	if store == nil {
		return LinesFromFile(path)
	}

	key, err := datasetKey(path)
	if err != nil {
		return nil, err
	}

	if lines := checkCacheHit(store, key); lines != nil {
		return lines, nil
	}

	lines, err := LinesFromFile(path)
	if err != nil {
		return nil, err
	}
	if data, err := sonic.Marshal(lines); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
	return lines, nil
}

// checkCacheHit returns the cached lines for key or nil on a miss.
func checkCacheHit(store contract.CacheStore, key string) []schema.LineRecord {
	data, version, ts, err := store.Get(key)
	if err != nil || version != currentCacheVersion {
		return nil
	}
	if time.Since(time.Unix(ts, 0)) > maxCacheAge {
		return nil
	}
	var lines []schema.LineRecord
	if err := sonic.Unmarshal(data, &lines); err != nil {
		return nil
	}
	return lines
}

// datasetKey derives a cache key from the absolute path, size and mtime of the source.
func datasetKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to open line source %s: %w", path, err)
	}
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()))
	return fmt.Sprintf("lines:%x", sum), nil
}
