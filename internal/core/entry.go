package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	TypeHaircut EntryType = "haircut"
	TypeMisc    EntryType = "misc"
	TypeExpense EntryType = "expense"
)

type (
	EntryType string

	// Entry is one recorded financial event. Amount is kept as decimal text
	// exactly as persisted; sign is inferred from Type, never stored.
	Entry struct {
		ID          int64     `json:"id"`
		Type        EntryType `json:"type"`
		Service     string    `json:"service,omitempty"`
		Description string    `json:"description,omitempty"`
		Amount      string    `json:"amount"`
		Quantity    int       `json:"quantity"`
		Date        string    `json:"date"`
		Timestamp   time.Time `json:"timestamp"`
	}

	// EntryDraft is the caller-supplied payload for create and update.
	// The server assigns ID and Timestamp.
	EntryDraft struct {
		Type        EntryType `json:"type"`
		Service     string    `json:"service,omitempty"`
		Description string    `json:"description,omitempty"`
		Amount      string    `json:"amount"`
		Quantity    int       `json:"quantity"`
		Date        string    `json:"date"`
	}
)

var (
	ErrMissingType   = errors.New("missing entry type")
	ErrInvalidType   = errors.New("invalid entry type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMissingDate   = errors.New("missing date")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidQty    = errors.New("invalid quantity")

	ErrNotFound         = errors.New("entry not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsValidation reports whether err stems from bad caller input, as opposed
// to a missing entry or a store failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingType) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidQty)
}

// Validate checks the draft before any store call. Amount must parse as a
// finite non-negative decimal; Date must be a real YYYY-MM-DD calendar date.
func (d EntryDraft) Validate() error {
	if strings.TrimSpace(string(d.Type)) == "" {
		return ErrMissingType
	}
	switch d.Type {
	case TypeHaircut, TypeMisc, TypeExpense:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidType, d.Type)
	}
	if _, err := ParseDecimalToCents(d.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(d.Date) == "" {
		return ErrMissingDate
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, d.Date)
	}
	if d.Quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQty, d.Quantity)
	}
	return nil
}

// Normalize fills draft defaults and clears the field that is not meaningful
// for the entry type: haircuts carry a service, everything else a description.
func (d EntryDraft) Normalize() EntryDraft {
	if d.Quantity == 0 {
		d.Quantity = 1
	}
	if d.Type == TypeHaircut {
		d.Description = ""
	} else {
		d.Service = ""
	}
	return d
}

// Label returns the human-facing name of the entry: the service for
// haircuts, the free-text description otherwise.
func (e Entry) Label() string {
	if e.Type == TypeHaircut {
		return e.Service
	}
	return e.Description
}

// DateLayout is the stored calendar-date format. Dates never carry a time
// component or timezone.
const DateLayout = "2006-01-02"
