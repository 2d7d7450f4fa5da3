package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"aiatlas/pkg/api"
	"aiatlas/pkg/banner"
	"aiatlas/pkg/store"
	"aiatlas/pkg/telemetry"
)

// printBanner prints the startup banner and effective runtime info.
func (a *App) printBanner() {
	banner.Print(a.addr, a.dbPath, a.sources, a.version, a.cfg.AI.APIKey != "")
}

// setupHTTPHandlers sets up all HTTP handlers on the provided mux. The atlas
// API is the catch-all; operational endpoints sit outside its prefix space.
func (a *App) setupHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/readyz", a.readyzHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))
	mux.Handle("/openapi.yaml", http.FileServer(http.Dir("./docs")))

	srv := api.NewServer(api.Options{
		AdminID:       a.cfg.AdminID(),
		AdminPassword: a.cfg.Admin.Password,
		CollectToken:  a.cfg.Collect.Token,
		Version:       a.version,
		Collector:     a.collector,
	})
	mux.Handle("/", srv.Handler())
}

// readyzHandler reports store readiness for deployment probes.
func (a *App) readyzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !store.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","version":"` + a.version + `"}`))
}

// startHTTP builds the handler, starts the HTTP server in a goroutine and
// returns a channel that will contain any server error.
func (a *App) startHTTP(_ context.Context) <-chan error {
	mux := http.NewServeMux()
	a.setupHTTPHandlers(mux)

	wrapped := telemetry.Middleware(mux)

	a.srv = &http.Server{Addr: a.addr, Handler: wrapped}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.srv.ListenAndServe()
	}()
	return errCh
}
