package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/session"
	"github.com/mrmohdriyas/digital-wellness/internal/storage"
)

var validate = validator.New()

// SubmitRequest names the write target and the date the session's entries
// belong to. Collection is declared first so it is also reported first when
// both fields are missing, matching the form's message order.
type SubmitRequest struct {
	Collection string `json:"collection" validate:"required"`
	Date       string `json:"date" validate:"required"`
}

func ValidateSubmitRequest(req *SubmitRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if fes, ok := err.(validator.ValidationErrors); ok && len(fes) > 0 {
		switch fes[0].Field() {
		case "Collection":
			return internal.ErrMissingCollection
		case "Date":
			return internal.ErrMissingDate
		}
	}
	return err
}

// BuildSubmission assembles the aggregate document for date from the
// session's current entries. Pure read; the session is not modified.
func BuildSubmission(date string, store *session.Store) *internal.SubmissionDocument {
	totalScreenTime, totalOpens, apps := store.Aggregate()
	return &internal.SubmissionDocument{
		Date: date,
		Summary: internal.Summary{
			ScreenTimeSeconds: totalScreenTime,
			Unlocks:           totalOpens,
		},
		Apps: apps,
	}
}

// SubmitSession validates the request, builds the document, and issues the
// single store write. The session keeps its entries whether or not the
// write succeeds.
func SubmitSession(ctx context.Context, docs storage.DocumentInserter, store *session.Store, req *SubmitRequest) (*internal.SubmissionDocument, error) {
	if err := ValidateSubmitRequest(req); err != nil {
		return nil, err
	}
	doc := BuildSubmission(req.Date, store)
	if err := docs.InsertDocument(ctx, req.Collection, doc); err != nil {
		return nil, &internal.StoreWriteError{Collection: req.Collection, Err: err}
	}
	return doc, nil
}
