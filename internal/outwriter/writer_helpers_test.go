package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/folio/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"precision 1", 1, 9.25, "9.2"},
		{"precision 2", 2, 0.33333, "0.33"},
		{"negative value", 2, -42.567, "-42.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"count": 2}))
	assert.Equal(t, "{\n  \"count\": 2\n}\n", buf.String())

	assert.Error(t, writeJSON(&buf, make(chan int)))
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "x,y"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", buf.String())
}

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}, "Wrote text")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLimitCount(t *testing.T) {
	assert.Equal(t, 3, limitCount(3, 0))
	assert.Equal(t, 2, limitCount(3, 2))
	assert.Equal(t, 3, limitCount(3, 10))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Summary", heading(&contract.Config{}, "📊", "Summary"))
	assert.Equal(t, "📊 Summary", heading(&contract.Config{UseEmojis: true}, "📊", "Summary"))
	assert.True(t, strings.Contains(heading(&contract.Config{UseColors: true}, "📊", "Summary"), "Summary"))
}

func TestGetMaxTextWidth(t *testing.T) {
	assert.Equal(t, maxTextWidth, GetMaxTextWidth(&contract.Config{Width: 300}, 40))
	assert.Equal(t, minTextWidth, GetMaxTextWidth(&contract.Config{Width: 40}, 40))
	assert.Equal(t, 40, GetMaxTextWidth(&contract.Config{Width: 100}, 40))
}
