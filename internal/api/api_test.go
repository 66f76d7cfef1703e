package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/api"
	"github.com/mrmohdriyas/digital-wellness/internal/session"
	"github.com/mrmohdriyas/digital-wellness/internal/storage"
)

type apiResponse struct {
	Data  json.RawMessage    `json:"data"`
	Meta  map[string]any     `json:"meta"`
	Error *internal.AppError `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *session.Store) {
	gin.SetMode(gin.TestMode)
	logger := internal.NewZapLogger(zap.NewNop().Sugar())

	dataFile := filepath.Join(t.TempDir(), "submissions.json")
	lister, docs, err := storage.NewFileRepositories(dataFile, logger)
	assert.NoError(t, err)

	store := session.NewStore()
	app := api.NewServer(logger, store, lister, docs)
	return api.NewRouter(app), store
}

func doRequest(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, apiResponse) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAddSubmitScenario(t *testing.T) {
	r, _ := setupRouter(t)

	// Nothing submitted yet, so no collections exist.
	w, resp := doRequest(r, "GET", "/api/collections", "")
	assert.Equal(t, 200, w.Code)
	var names []string
	assert.NoError(t, json.Unmarshal(resp.Data, &names))
	assert.Empty(t, names)

	w, resp = doRequest(r, "POST", "/api/entries", `{"name":"Brave","hours":"1","minutes":"30","seconds":"0","opens":"5"}`)
	assert.Equal(t, 200, w.Code)
	var entries []internal.AppEntry
	assert.NoError(t, json.Unmarshal(resp.Data, &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(5400), entries[0].ScreenTimeSeconds)

	w, resp = doRequest(r, "POST", "/api/entries", `{"name":"Mail","minutes":"10","opens":"2"}`)
	assert.Equal(t, 200, w.Code)
	assert.NoError(t, json.Unmarshal(resp.Data, &entries))
	assert.Len(t, entries, 2)
	assert.Equal(t, int64(600), entries[1].ScreenTimeSeconds)

	w, resp = doRequest(r, "POST", "/api/submit", `{"date":"2024-01-01","collection":"user1"}`)
	assert.Equal(t, 200, w.Code)
	var doc internal.SubmissionDocument
	assert.NoError(t, json.Unmarshal(resp.Data, &doc))
	assert.Equal(t, "2024-01-01", doc.Date)
	assert.Equal(t, int64(6000), doc.Summary.ScreenTimeSeconds)
	assert.Equal(t, int64(7), doc.Summary.Unlocks)
	assert.Equal(t, internal.AppUsage{ScreenTimeSeconds: 5400, Opens: 5}, doc.Apps["Brave"])
	assert.Equal(t, internal.AppUsage{ScreenTimeSeconds: 600, Opens: 2}, doc.Apps["Mail"])
	assert.Equal(t, "Data submitted successfully!", resp.Meta["message"])

	// The submitted collection is now listed.
	w, resp = doRequest(r, "GET", "/api/collections", "")
	assert.Equal(t, 200, w.Code)
	assert.NoError(t, json.Unmarshal(resp.Data, &names))
	assert.Equal(t, []string{"user1"}, names)
}

func TestPostEntry_ValidationFailures(t *testing.T) {
	r, store := setupRouter(t)

	w, resp := doRequest(r, "POST", "/api/entries", `{"name":"Brave","hours":"25"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, resp.Error.Message, "hours must be between 0 and 24")
	assert.Equal(t, 0, store.Len())

	w, resp = doRequest(r, "POST", "/api/entries", `{"hours":"1"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, resp.Error.Message, "app name cannot be empty")
	assert.Equal(t, 0, store.Len())

	w, resp = doRequest(r, "POST", "/api/entries", `{"name":"Brave","minutes":"ten"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, resp.Error.Message, "minutes must be a valid integer")
	assert.Equal(t, 0, store.Len())
}

func TestDeleteEntry(t *testing.T) {
	r, store := setupRouter(t)
	store.Append(internal.AppEntry{Name: "Brave", ScreenTimeSeconds: 5400, Opens: 5})
	store.Append(internal.AppEntry{Name: "Mail", ScreenTimeSeconds: 600, Opens: 2})

	w, resp := doRequest(r, "DELETE", "/api/entries/0", "")
	assert.Equal(t, 200, w.Code)
	var entries []internal.AppEntry
	assert.NoError(t, json.Unmarshal(resp.Data, &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "Mail", entries[0].Name)

	// A stale index is tolerated and leaves the list unchanged.
	w, resp = doRequest(r, "DELETE", "/api/entries/7", "")
	assert.Equal(t, 200, w.Code)
	assert.NoError(t, json.Unmarshal(resp.Data, &entries))
	assert.Len(t, entries, 1)

	w, _ = doRequest(r, "DELETE", "/api/entries/abc", "")
	assert.Equal(t, 400, w.Code)
}

func TestGetEntries_MetaCarriesLabelsAndDefaultDate(t *testing.T) {
	r, store := setupRouter(t)
	store.Append(internal.AppEntry{Name: "Brave", ScreenTimeSeconds: 5400, Opens: 5})

	w, resp := doRequest(r, "GET", "/api/entries", "")
	assert.Equal(t, 200, w.Code)

	labels, ok := resp.Meta["labels"].([]any)
	assert.True(t, ok)
	assert.Equal(t, "Brave: 5400 seconds, 5 opens", labels[0])

	defaultDate, ok := resp.Meta["default_date"].(string)
	assert.True(t, ok)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, defaultDate)
}

func TestPostSubmit_MissingFields(t *testing.T) {
	r, store := setupRouter(t)
	store.Append(internal.AppEntry{Name: "Brave", ScreenTimeSeconds: 5400, Opens: 5})

	w, resp := doRequest(r, "POST", "/api/submit", `{"collection":"user1"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, resp.Error.Message, "please enter a valid date")

	w, resp = doRequest(r, "POST", "/api/submit", `{"date":"2024-01-01"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, resp.Error.Message, "please select a collection")

	// Neither failed submit issued a write.
	w, resp = doRequest(r, "GET", "/api/collections", "")
	assert.Equal(t, 200, w.Code)
	var names []string
	assert.NoError(t, json.Unmarshal(resp.Data, &names))
	assert.Empty(t, names)

	// Session entries survive failed submits.
	assert.Equal(t, 1, store.Len())
}

// Submitting does not clear the session: a second submit writes another
// document built from the same accumulated entries.
func TestPostSubmit_SessionRetained(t *testing.T) {
	r, store := setupRouter(t)
	store.Append(internal.AppEntry{Name: "Brave", ScreenTimeSeconds: 5400, Opens: 5})

	w, _ := doRequest(r, "POST", "/api/submit", `{"date":"2024-01-01","collection":"user1"}`)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 1, store.Len())

	w, resp := doRequest(r, "POST", "/api/submit", `{"date":"2024-01-02","collection":"user1"}`)
	assert.Equal(t, 200, w.Code)
	var doc internal.SubmissionDocument
	assert.NoError(t, json.Unmarshal(resp.Data, &doc))
	assert.Equal(t, int64(5400), doc.Summary.ScreenTimeSeconds)
}
