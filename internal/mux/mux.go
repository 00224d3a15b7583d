package mux

import (
	"context"
	"net/http"

	"knockpoker-server/pkg/playable/knockpoker"
	"knockpoker-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
	options  knockpoker.Options
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *room.Registry, options knockpoker.Options) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
		options:  options,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())

	sr := r.PathPrefix("/session/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	sr.Use(this.sessionMiddleware)

	sr.Methods(http.MethodGet).Path("").Handler(this.getSessionUUID())
	sr.Methods(http.MethodPost).Path("/action").Handler(this.postSessionUUIDAction())
	sr.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionUUIDWS())

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		session, ok := m.registry.Get(uuid)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, session)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
