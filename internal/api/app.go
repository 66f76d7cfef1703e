package api

import (
	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/session"
	"github.com/mrmohdriyas/digital-wellness/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Session() *session.Store
	Collections() storage.CollectionLister
	Documents() storage.DocumentInserter
}
