package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/service"
)

func GetCollections(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := app.Collections().ListCollections(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to list collections")
			return
		}
		HandleSuccess(c, app.Logger(), names, nil)
	}
}

func PostSubmit(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		doc, err := service.SubmitSession(c.Request.Context(), app.Documents(), app.Session(), &req)
		if err != nil {
			var storeErr *internal.StoreWriteError
			if errors.As(err, &storeErr) {
				// Session entries are retained so the user can retry.
				HandleError(c, app.Logger(), err, 500, "Failed to submit data")
				return
			}
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}
		app.Logger().Infof("submitted %d apps for %s into %s", len(doc.Apps), doc.Date, req.Collection)

		HandleSuccess(c, app.Logger(), doc, map[string]any{"message": "Data submitted successfully!"})
	}
}
