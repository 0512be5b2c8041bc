package filter

import (
	"strings"
	"testing"

	"github.com/huangsam/folio/schema"
)

func FuzzFilterByText(f *testing.F) {
	f.Add("Bike Map", "2024", "bike")
	f.Add("", "", "")
	f.Add("Ünïcode", "2023", "ÜNÏ")
	f.Add("a\x00b", "1", "\x00")

	f.Fuzz(func(t *testing.T, title, year, query string) {
		records := []schema.ProjectRecord{{Title: title, Year: year}}
		got := FilterByText(records, query)

		if len(got) > len(records) {
			t.Fatalf("filter grew the input: %d > %d", len(got), len(records))
		}
		if strings.TrimSpace(query) == "" && len(got) != 1 {
			t.Fatalf("blank query %q dropped a record", query)
		}
		if len(got) == 1 && got[0].Title != title {
			t.Fatalf("filter returned a different record")
		}
	})
}
