// Package sheets defines the port to the spreadsheet mirror.
package sheets

import (
	"context"

	"salonbook/internal/core"
)

// EntryAppender journals one entry event row to the mirror spreadsheet.
type EntryAppender interface {
	AppendEntry(ctx context.Context, op string, e core.Entry) (rowRef string, err error)
}
