package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/pthm/weba"
	"github.com/pthm/weba/example/components"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	store := newMemStore()

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", weba.Handler(func(ctx context.Context, r *http.Request) (weba.Noder, error) {
		// The filter lives in the URL so pages can be bookmarked.
		return components.NewPage(ctx, store, r.URL.Query().Get("status"))
	}, logger))
	mux.HandleFunc("POST /todo/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		if !store.toggle(r.PathValue("id")) {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	addr := ":8080"
	logger.Info("starting server", "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
