package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/session"
	"github.com/mrmohdriyas/digital-wellness/internal/storage"
)

// Server bundles the collaborators the handlers need.
type Server struct {
	logger internal.Logger
	store  *session.Store
	lister storage.CollectionLister
	docs   storage.DocumentInserter
}

func NewServer(logger internal.Logger, store *session.Store, lister storage.CollectionLister, docs storage.DocumentInserter) *Server {
	return &Server{logger: logger, store: store, lister: lister, docs: docs}
}

func (s *Server) Logger() internal.Logger               { return s.logger }
func (s *Server) Session() *session.Store               { return s.store }
func (s *Server) Collections() storage.CollectionLister { return s.lister }
func (s *Server) Documents() storage.DocumentInserter   { return s.docs }

var _ App = (*Server)(nil)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	r.GET("/api/collections", GetCollections(app))
	r.GET("/api/entries", GetEntries(app))
	r.POST("/api/entries", PostEntry(app))
	r.DELETE("/api/entries/:index", DeleteEntry(app))
	r.POST("/api/submit", PostSubmit(app))

	return r
}
