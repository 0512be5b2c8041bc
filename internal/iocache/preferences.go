package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// preferenceVersion is the value format version of stored preferences.
const preferenceVersion = 1

// GetColorScheme returns the stored color scheme, or the automatic scheme when
// nothing valid is stored.
func GetColorScheme(mgr contract.StoreManager) schema.ColorScheme {
	if mgr == nil {
		return schema.AutoScheme
	}
	store := mgr.GetPreferenceStore()
	if store == nil {
		return schema.AutoScheme
	}

	value, version, _, err := store.Get(schema.ColorSchemeKey)
	if err != nil || version != preferenceVersion {
		return schema.AutoScheme
	}
	scheme := schema.ColorScheme(value)
	if _, ok := schema.ValidColorSchemes[scheme]; !ok {
		return schema.AutoScheme
	}
	return scheme
}

// SetColorScheme persists the color scheme preference.
func SetColorScheme(mgr contract.StoreManager, scheme schema.ColorScheme) error {
	if _, ok := schema.ValidColorSchemes[scheme]; !ok {
		return fmt.Errorf("invalid color scheme %q", scheme)
	}
	if mgr == nil {
		return nil
	}
	store := mgr.GetPreferenceStore()
	if store == nil {
		return nil
	}
	if err := store.Set(schema.ColorSchemeKey, []byte(scheme), preferenceVersion, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save color scheme: %w", err)
	}
	return nil
}

// ResetColorScheme removes the stored color scheme preference.
func ResetColorScheme(mgr contract.StoreManager) error {
	if mgr == nil || mgr.GetPreferenceStore() == nil {
		return nil
	}
	err := mgr.GetPreferenceStore().Delete(schema.ColorSchemeKey)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to reset color scheme: %w", err)
	}
	return nil
}
