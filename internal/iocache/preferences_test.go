package iocache

import (
	"bytes"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/huangsam/folio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetColorScheme(t *testing.T) {
	tests := []struct {
		name     string
		value    []byte
		version  int
		err      error
		expected schema.ColorScheme
	}{
		{"Stored dark", []byte("dark"), preferenceVersion, nil, schema.DarkScheme},
		{"Stored auto", []byte("light dark"), preferenceVersion, nil, schema.AutoScheme},
		{"Missing", nil, 0, sql.ErrNoRows, schema.AutoScheme},
		{"Old version", []byte("dark"), 0, nil, schema.AutoScheme},
		{"Garbage", []byte("sepia"), preferenceVersion, nil, schema.AutoScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockCacheStore{}
			store.On("Get", schema.ColorSchemeKey).Return(tt.value, tt.version, int64(0), tt.err)
			mgr := &MockStoreManager{}
			mgr.On("GetPreferenceStore").Return(store)

			assert.Equal(t, tt.expected, GetColorScheme(mgr))
			store.AssertExpectations(t)
		})
	}

	assert.Equal(t, schema.AutoScheme, GetColorScheme(nil))
}

func TestSetColorScheme(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Set", schema.ColorSchemeKey, []byte("light"), preferenceVersion, mock.AnythingOfType("int64")).Return(nil)
	mgr := &MockStoreManager{}
	mgr.On("GetPreferenceStore").Return(store)

	require.NoError(t, SetColorScheme(mgr, schema.LightScheme))
	store.AssertExpectations(t)

	assert.Error(t, SetColorScheme(mgr, schema.ColorScheme("sepia")))
	assert.NoError(t, SetColorScheme(nil, schema.DarkScheme))
}

func TestSetColorSchemeStoreError(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Set", schema.ColorSchemeKey, mock.Anything, preferenceVersion, mock.Anything).Return(errors.New("disk full"))
	mgr := &MockStoreManager{}
	mgr.On("GetPreferenceStore").Return(store)

	err := SetColorScheme(mgr, schema.DarkScheme)
	assert.ErrorContains(t, err, "disk full")
}

func TestResetColorScheme(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Delete", schema.ColorSchemeKey).Return(nil)
	mgr := &MockStoreManager{}
	mgr.On("GetPreferenceStore").Return(store)

	require.NoError(t, ResetColorScheme(mgr))
	store.AssertExpectations(t)
}

func TestPrintStoreStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStoreStatus(&buf, schema.StoreStatus{Backend: "none", Table: PreferencesTable})
	assert.Contains(t, buf.String(), "Connected: false")
	assert.NotContains(t, buf.String(), "Total Entries")

	buf.Reset()
	PrintStoreStatus(&buf, schema.StoreStatus{
		Backend:         "sqlite",
		Table:           DatasetTable,
		Connected:       true,
		TotalEntries:    1200,
		LastEntryTime:   time.Now(),
		OldestEntryTime: time.Now().Add(-time.Hour),
		TableSizeBytes:  4096,
	})
	assert.Contains(t, buf.String(), "Total Entries: 1,200")
	assert.Contains(t, buf.String(), "Table Size: 4.1 kB")
}
