package storage

import (
	"context"
	"strings"

	"github.com/mrmohdriyas/digital-wellness/internal"
)

// reservedSuffixes mark large-object bookkeeping collections (GridFS) that
// must never appear in the collection picker.
var reservedSuffixes = []string{".chunks", ".files"}

type CollectionLister interface {
	ListCollections(ctx context.Context) ([]string, error)
}

type DocumentInserter interface {
	InsertDocument(ctx context.Context, collection string, doc *internal.SubmissionDocument) error
}

func filterReserved(names []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		reserved := false
		for _, suffix := range reservedSuffixes {
			if strings.HasSuffix(name, suffix) {
				reserved = true
				break
			}
		}
		if !reserved {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
