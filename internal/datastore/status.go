package datastore

import (
	"fmt"
	"io"

	"github.com/huangsam/babynames/schema"
)

// PrintStoreStatus prints dataset store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Dataset Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Schema Version: %d\n", status.SchemaVersion)
	if status.Dirty {
		_, _ = fmt.Fprintln(w, "Dirty: true (run dataset migrate after fixing the schema)")
	}
	_, _ = fmt.Fprintf(w, "Total Rows: %d\n", status.TotalRows)
	if status.TotalRows > 0 {
		_, _ = fmt.Fprintf(w, "Distinct Names: %d\n", status.DistinctNames)
		_, _ = fmt.Fprintf(w, "Years: %s\n", status.Years)
	}
	if !status.LastImportedTime.IsZero() {
		_, _ = fmt.Fprintf(w, "Last Import: %s\n", status.LastImportedTime.Format("2006-01-02 15:04:05"))
	}
}
