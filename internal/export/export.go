// Package export renders the raw entry sequence as CSV or pretty JSON.
// Exports consume the entries directly, never the aggregated analytics.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"salonbook/internal/core"
)

// CSVHeader is the fixed export header row.
var CSVHeader = []string{"Date", "Type", "Description/Service", "Amount", "Quantity"}

// WriteCSV writes one row per entry. encoding/csv quotes fields containing
// delimiters or quotes, so free-text descriptions are delimiter-safe.
func WriteCSV(w io.Writer, entries []core.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.Date,
			string(e.Type),
			e.Label(),
			e.Amount,
			strconv.Itoa(e.Quantity),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the raw entry array, pretty-printed.
func WriteJSON(w io.Writer, entries []core.Entry) error {
	if entries == nil {
		entries = []core.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return nil
}
