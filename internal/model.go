package internal

import "fmt"

type AppEntry struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ScreenTimeSeconds int64  `json:"screenTime"`
	Opens             int64  `json:"opens"`
}

// Label renders the entry the way the apps-added list displays it.
func (e AppEntry) Label() string {
	return fmt.Sprintf("%s: %d seconds, %d opens", e.Name, e.ScreenTimeSeconds, e.Opens)
}

// AppUsage is the per-app slice of a SubmissionDocument. Unlike AppEntry it
// carries no identity: entries sharing a name collapse into one AppUsage.
type AppUsage struct {
	ScreenTimeSeconds int64 `json:"screenTime" bson:"screenTime"`
	Opens             int64 `json:"opens" bson:"opens"`
}

type Summary struct {
	ScreenTimeSeconds int64 `json:"screenTime" bson:"screenTime"`
	Unlocks           int64 `json:"unlocks" bson:"unlocks"`
}

// SubmissionDocument is the record persisted per date. It is built once at
// submit time and never read back by this service.
type SubmissionDocument struct {
	Date    string              `json:"date" bson:"date"`
	Summary Summary             `json:"summary" bson:"summary"`
	Apps    map[string]AppUsage `json:"apps" bson:"apps"`
}
