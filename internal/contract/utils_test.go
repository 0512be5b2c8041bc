package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedLabel(t *testing.T) {
	assert.Equal(t, "2024", SelectedLabel("2024", false, true))
	assert.Equal(t, Marker+" 2024", SelectedLabel("2024", true, false))
	assert.Contains(t, SelectedLabel("2024", true, true), "2024")
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.json")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"Short text", "Home", 10, "Home"},
		{"Exact width", "Projects", 8, "Projects"},
		{"Truncated", "A dashboard of commit activity", 12, "A dashboa..."},
		{"Width too small", "Projects", 3, "Projects"},
		{"Unicode", "Ünïcödé text here", 8, "Ünïcö..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.width))
		})
	}
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "meta/main.js", TruncatePath("meta/main.js", 20))
	assert.Equal(t, "...main.js", TruncatePath("src/meta/main.js", 10))
	assert.Equal(t, "src/meta/main.js", TruncatePath("src/meta/main.js", 2))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		hasErr   bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
