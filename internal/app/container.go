// Package app wires the application's dependencies together.
package app

import (
	"net/http"
	"os"

	"bookcatalog/internal/activity"
	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
)

// Container holds the constructed application dependencies. Everything is
// built once at startup by NewContainer; handlers receive their collaborators
// through constructors, never by reaching for globals.
type Container struct {
	Config      Config
	Activity    activity.Logger
	Repository  book.Repository
	BookService *book.Service
	BookHandler *book.HTTPHandler
	Router      http.Handler
}

// Option overrides a dependency before the rest of the graph is built.
// Used by tests to substitute a recording logger or a pre-seeded repository.
type Option func(*Container)

// WithActivityLogger substitutes the activity logger.
func WithActivityLogger(l activity.Logger) Option {
	return func(c *Container) { c.Activity = l }
}

// WithRepository substitutes the book repository.
func WithRepository(r book.Repository) Option {
	return func(c *Container) { c.Repository = r }
}

// NewContainer builds the full dependency graph: logger and repository first,
// then the service over the repository, the handler over both, and finally
// the router with the middleware chain.
func NewContainer(cfg Config, opts ...Option) *Container {
	c := &Container{Config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if c.Activity == nil {
		c.Activity = activity.NewConsoleLogger(os.Stdout)
	}
	if c.Repository == nil {
		c.Repository = book.NewMemoryRepository(book.SeedBooks()...)
	}

	c.BookService = book.NewService(c.Repository)
	c.BookHandler = book.NewHTTPHandler(c.BookService, c.Activity)
	c.Router = c.buildRouter()

	return c
}

func (c *Container) buildRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /api/books", c.BookHandler.List)
	mux.HandleFunc("GET /api/books/{id}", c.BookHandler.Get)
	mux.HandleFunc("POST /api/books", c.BookHandler.Add)
	mux.HandleFunc("DELETE /api/books/{id}", c.BookHandler.Delete)

	var handler http.Handler = mux
	handler = httpx.RequestSizeLimitMiddleware(c.Config.MaxBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	if len(c.Config.AllowedOrigins) > 0 {
		handler = httpx.CORSMiddleware(c.Config.AllowedOrigins)(handler)
	}
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	return handler
}
