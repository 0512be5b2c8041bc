package iocache

import (
	"sync"

	"github.com/huangsam/folio/internal/contract"
)

// StoreManager manages the preference and dataset CacheStore instances.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	preferences  contract.CacheStore
	dataset      contract.CacheStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// GetPreferenceStore returns the preference CacheStore.
func (mgr *StoreManager) GetPreferenceStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.preferences
}

// GetDatasetStore returns the dataset CacheStore.
func (mgr *StoreManager) GetDatasetStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.dataset
}
