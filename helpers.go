package weba

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// Render writes n to the HTTP response as HTML.
//
// Sets Content-Type to text/html. Use this from plain net/http handlers:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    page, err := pageDef.Build(r.Context(), &Page{})
//	    if err != nil {
//	        http.Error(w, "Internal error", http.StatusInternalServerError)
//	        return
//	    }
//	    weba.Render(w, r, page)
//	}
func Render(w http.ResponseWriter, r *http.Request, n Noder) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := n.AsNode().WriteTo(w)
	return err
}

// BuildFunc builds the tree for one request.
type BuildFunc func(ctx context.Context, r *http.Request) (Noder, error)

// Handler adapts fn to an http.Handler. Every request builds a new tree
// from a context with no current target.
//
// Errors are logged with logger (slog.Default() when nil) and answered
// with 500, or 404 when fn reports a missing template.
func Handler(fn BuildFunc, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, err := fn(Detach(r.Context()), r)
		if err != nil {
			logger.Error("weba: build failed", "path", r.URL.Path, "error", err)
			if errors.Is(err, ErrTemplateNotFound) {
				http.Error(w, "Not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if n == nil || n.AsNode() == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := Render(w, r, n); err != nil {
			logger.Error("weba: write failed", "path", r.URL.Path, "error", err)
		}
	})
}
