package service

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/session"
)

// EntryRequest carries the raw form fields of one "Add App" action.
// Numeric fields arrive as text; empty means zero.
type EntryRequest struct {
	Name    string `json:"name"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	Opens   string `json:"opens"`
}

// ParseScreenTime combines an hours/minutes/seconds split into total seconds.
func ParseScreenTime(hours, minutes, seconds int64) int64 {
	return hours*3600 + minutes*60 + seconds
}

func parseField(field, raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &internal.NonIntegerError{Field: field}
	}
	return n, nil
}

// ValidateEntryRequest checks fields in a fixed order (name, hours, minutes,
// seconds, opens) and stops at the first failure. On success it returns an
// entry candidate with screen time already combined into seconds and a
// fresh id assigned.
func ValidateEntryRequest(req *EntryRequest) (*internal.AppEntry, error) {
	if req.Name == "" {
		return nil, internal.ErrEmptyName
	}
	hours, err := parseField("hours", req.Hours)
	if err != nil {
		return nil, err
	}
	if hours < 0 || hours > 24 {
		return nil, &internal.InvalidRangeError{Field: "hours", Min: 0, Max: 24}
	}
	minutes, err := parseField("minutes", req.Minutes)
	if err != nil {
		return nil, err
	}
	if minutes < 0 || minutes > 59 {
		return nil, &internal.InvalidRangeError{Field: "minutes", Min: 0, Max: 59}
	}
	seconds, err := parseField("seconds", req.Seconds)
	if err != nil {
		return nil, err
	}
	if seconds < 0 || seconds > 59 {
		return nil, &internal.InvalidRangeError{Field: "seconds", Min: 0, Max: 59}
	}
	opens, err := parseField("opens", req.Opens)
	if err != nil {
		return nil, err
	}
	if opens < 0 {
		return nil, &internal.InvalidRangeError{Field: "opens", Min: 0, Max: -1}
	}
	return &internal.AppEntry{
		ID:                uuid.NewString(),
		Name:              req.Name,
		ScreenTimeSeconds: ParseScreenTime(hours, minutes, seconds),
		Opens:             opens,
	}, nil
}

// CreateEntry validates the request and, only on success, appends the
// resulting entry to the session. A failed validation leaves the session
// untouched.
func CreateEntry(store *session.Store, req *EntryRequest) (*internal.AppEntry, error) {
	entry, err := ValidateEntryRequest(req)
	if err != nil {
		return nil, err
	}
	store.Append(*entry)
	return entry, nil
}
