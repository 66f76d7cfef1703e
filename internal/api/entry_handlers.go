package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/service"
)

func PostEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.EntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		entry, err := service.CreateEntry(app.Session(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}
		app.Logger().Infof("added entry %s (%s)", entry.ID, entry.Label())

		entries := app.Session().Enumerate()
		HandleSuccess(c, app.Logger(), entries, entriesMeta(entries))
	}
}

func GetEntries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := app.Session().Enumerate()
		HandleSuccess(c, app.Logger(), entries, entriesMeta(entries))
	}
}

func DeleteEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid index")
			return
		}

		// An out-of-range index is a stale position from the UI, not an
		// error: removal is a no-op and the current list is returned.
		app.Session().RemoveAt(index)

		entries := app.Session().Enumerate()
		HandleSuccess(c, app.Logger(), entries, entriesMeta(entries))
	}
}

// entriesMeta carries what the form needs to redraw: one display label per
// entry and the date the date field defaults to.
func entriesMeta(entries []internal.AppEntry) map[string]any {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label()
	}
	return map[string]any{
		"labels":       labels,
		"default_date": time.Now().Format("2006-01-02"),
	}
}
