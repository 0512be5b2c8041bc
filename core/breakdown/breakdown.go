// Package breakdown groups records into categories: the project pie, the
// language breakdown of brushed commits and the per-file bars.
package breakdown

import (
	"cmp"
	"slices"

	"github.com/huangsam/folio/schema"
)

// ByCategory groups projects by year in first-seen order and marks the selected slice.
func ByCategory(records []schema.ProjectRecord, selected *string) []schema.Slice {
	out := countInOrder(len(records), func(i int) string { return records[i].Year })
	if selected != nil {
		for i := range out {
			out[i].Selected = out[i].Label == *selected
		}
	}
	return out
}

// ByLanguage counts lines per type tag in first-seen order. No lines gives no slices.
func ByLanguage(lines []schema.LineRecord) []schema.Slice {
	return countInOrder(len(lines), func(i int) string { return lines[i].Type })
}

// ByFile returns the line count of each file with its per-type split,
// largest file first. Ties keep first-seen order.
func ByFile(lines []schema.LineRecord) []schema.FileBar {
	index := make(map[string]int)
	bars := make([]schema.FileBar, 0)
	for _, l := range lines {
		i, ok := index[l.File]
		if !ok {
			i = len(bars)
			index[l.File] = i
			bars = append(bars, schema.FileBar{Name: l.File})
		}
		bars[i].Lines++
		bars[i].Types = addType(bars[i].Types, l.Type)
	}
	slices.SortStableFunc(bars, func(a, b schema.FileBar) int {
		return cmp.Compare(b.Lines, a.Lines)
	})
	return bars
}

// Total returns the summed count of all slices.
func Total(items []schema.Slice) int {
	total := 0
	for _, s := range items {
		total += s.Count
	}
	return total
}

func addType(types []schema.TypeCount, t string) []schema.TypeCount {
	for i := range types {
		if types[i].Type == t {
			types[i].Lines++
			return types
		}
	}
	return append(types, schema.TypeCount{Type: t, Lines: 1})
}

// countInOrder counts n keyed items, keeping the order in which keys first appear.
func countInOrder(n int, key func(i int) string) []schema.Slice {
	out := make([]schema.Slice, 0)
	index := make(map[string]int)
	for i := range n {
		k := key(i)
		j, ok := index[k]
		if !ok {
			j = len(out)
			index[k] = j
			out = append(out, schema.Slice{Label: k})
		}
		out[j].Count++
	}
	for j := range out {
		out[j].Proportion = float64(out[j].Count) / float64(n)
	}
	return out
}
