package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// WriteNarrativeSteps outputs the narrative steps, dispatching based on the output format configured.
func WriteNarrativeSteps(steps []schema.Step, cfg *contract.Config) error {
	return dispatch(cfg, formatWriters{
		name: "steps",
		text: func(w io.Writer) error {
			if _, err := fmt.Fprintln(w, heading(cfg, "📜", fmt.Sprintf("%d steps", len(steps)))); err != nil {
				return err
			}
			for _, s := range steps {
				if _, err := fmt.Fprintf(w, "[%d] %s\n    %s\n", s.Index, s.Text, s.URL); err != nil {
					return err
				}
			}
			return nil
		},
		csv: func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"index", "commit", "url", "datetime", "text"}, func(cw *csv.Writer) error {
				for _, s := range steps {
					rec := []string{strconv.Itoa(s.Index), s.CommitID, s.URL, s.Datetime.Format(time.RFC3339), s.Text}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		},
		json: func(w io.Writer) error { return writeJSON(w, steps) },
	})
}

// WriteColorScheme outputs the color scheme choices, dispatching based on the output format configured.
func WriteColorScheme(active schema.ColorScheme, cfg *contract.Config) error {
	return dispatch(cfg, formatWriters{
		name: "theme",
		text: func(w io.Writer) error {
			rows := make([][]string, 0, len(schema.AllColorSchemes))
			for _, s := range schema.AllColorSchemes {
				rows = append(rows, []string{
					contract.SelectedLabel(schema.SchemeLabel(s), s == active, cfg.UseColors),
					string(s),
				})
			}
			return renderTable(w, []string{"Theme", "Value"}, rows)
		},
		csv: func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"label", "value", "selected"}, func(cw *csv.Writer) error {
				for _, s := range schema.AllColorSchemes {
					if err := cw.Write([]string{schema.SchemeLabel(s), string(s), strconv.FormatBool(s == active)}); err != nil {
						return err
					}
				}
				return nil
			})
		},
		json: func(w io.Writer) error {
			return writeJSON(w, map[string]string{
				schema.ColorSchemeKey: string(active),
				"label":               schema.SchemeLabel(active),
			})
		},
	})
}
