package mux

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"knockpoker-server/pkg/playable"
	"knockpoker-server/pkg/room"
)

type postSessionPayload struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

type sessionResponse struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"joinCode"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postSessionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		session, err := m.registry.CreateSession(payload.Name, payload.Players, m.options)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			UUID:      session.UUID,
			Name:      session.Name,
			JoinCode:  session.JoinCode,
			CreatedAt: session.CreatedAt,
		})
	}
}

func (m *Mux) getSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := r.Context().Value(ctxSessionKey).(*room.Session)

		seat, err := seatFromRequest(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		state, err := session.State(seat)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postSessionUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := r.Context().Value(ctxSessionKey).(*room.Session)

		// every action mutates the game, so the join code is always required
		if r.FormValue("code") != session.JoinCode {
			writeJSONError(w, http.StatusForbidden, errors.New("invalid join code"))
			return
		}

		var payload playable.PayloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		res, err := session.Action(payload.Seat, &payload)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// seatFromRequest returns the seat query parameter, or -1 for an observer
func seatFromRequest(r *http.Request) (int, error) {
	seatStr := r.FormValue("seat")
	if seatStr == "" {
		return -1, nil
	}

	return strconv.Atoi(seatStr)
}
