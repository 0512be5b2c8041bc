package load

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/huangsam/folio/schema"
)

// Known project fields; everything else lands in ProjectRecord.Extra.
const (
	titleField       = "title"
	imageField       = "image"
	descriptionField = "description"
	yearField        = "year"
)

// ProjectsFromFile reads and parses the JSON project list at path.
func ProjectsFromFile(path string) ([]schema.ProjectRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project list %s: %w", path, err)
	}
	return ProjectsFromBytes(data)
}

// ProjectsFromBytes parses a JSON array of project objects.
func ProjectsFromBytes(data []byte) ([]schema.ProjectRecord, error) {
	var raw []map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse project list: %w", err)
	}

	projects := make([]schema.ProjectRecord, 0, len(raw))
	for _, obj := range raw {
		p := schema.ProjectRecord{
			Title:       stringify(obj[titleField]),
			Image:       stringify(obj[imageField]),
			Description: stringify(obj[descriptionField]),
			Year:        stringify(obj[yearField]),
		}
		for k, v := range obj {
			switch k {
			case titleField, imageField, descriptionField, yearField:
				continue
			}
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[k] = v
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// stringify renders a decoded JSON scalar the way it reads in the source.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		out, err := sonic.MarshalString(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return out
	}
}
