package iocache

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/folio/schema"
)

// PrintStoreStatus prints store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Table: %s\n", status.Table)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Entries: %s\n", humanize.Comma(int64(status.TotalEntries)))
	if status.TotalEntries > 0 {
		_, _ = fmt.Fprintf(w, "Last Entry: %s (%s)\n", status.LastEntryTime.Format("2006-01-02 15:04:05"), humanize.Time(status.LastEntryTime))
		_, _ = fmt.Fprintf(w, "Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(w, "Table Size: %s\n", humanize.Bytes(uint64(max(status.TableSizeBytes, 0))))
}
