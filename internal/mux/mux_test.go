package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"knockpoker-server/pkg/playable"
	"knockpoker-server/pkg/playable/knockpoker"
	"knockpoker-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var testPlayers = []string{"alice", "bob", "carol", "dave"}

func setupTestServer(t *testing.T) (*httptest.Server, *room.Registry) {
	t.Helper()

	registry := room.NewRegistry(logrus.StandardLogger())
	ts := httptest.NewServer(NewMux("test-version", registry, knockpoker.DefaultOptions()))
	t.Cleanup(ts.Close)

	return ts, registry
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

func createTestSession(t *testing.T, ts *httptest.Server) *sessionResponse {
	t.Helper()

	var resp sessionResponse
	assertPost(t, ts, "/session", postSessionPayload{Players: testPlayers}, &resp, http.StatusCreated)
	return &resp
}

func TestMux_getHealth(t *testing.T) {
	ts, _ := setupTestServer(t)

	var resp healthResponse
	assertGet(t, ts, "/health", &resp, http.StatusOK)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "test-version", resp.Version)
}

func TestMux_postSession(t *testing.T) {
	a := assert.New(t)
	ts, registry := setupTestServer(t)

	resp := createTestSession(t, ts)
	a.NotEmpty(resp.UUID)
	a.NotEmpty(resp.Name)
	a.Len(resp.JoinCode, 6)
	a.Equal(1, registry.Count())

	var errResp errorResponse
	assertPost(t, ts, "/session", postSessionPayload{Players: []string{"solo"}}, &errResp, http.StatusBadRequest)
	a.Equal("expected 4 players, got 1", errResp.Message)

	// bad JSON
	assertPost(t, ts, "/session", "{{", nil, http.StatusBadRequest)

	// missing content type
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/session", strings.NewReader("{}"))
	a.NoError(err)
	assertDo(t, req, nil, http.StatusUnsupportedMediaType)
}

func TestMux_getSessionUUID(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupTestServer(t)
	session := createTestSession(t, ts)

	var resp playable.Response
	assertGet(t, ts, "/session/"+session.UUID, &resp, http.StatusOK)
	a.Equal("game", resp.Key)
	a.Equal("knock-poker", resp.Value)

	assertGet(t, ts, "/session/"+session.UUID+"?seat=2", &resp, http.StatusOK)
	assertGet(t, ts, "/session/"+session.UUID+"?seat=nope", nil, http.StatusBadRequest)

	// unknown, but well-formed, uuid
	assertGet(t, ts, "/session/00000000-0000-0000-0000-000000000000", nil, http.StatusNotFound)

	// malformed uuid never matches the route
	assertGet(t, ts, "/session/not-a-uuid", nil, http.StatusNotFound)
}

func TestMux_postSessionUUIDAction(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupTestServer(t)
	session := createTestSession(t, ts)

	// actions are rejected without the join code
	var errResp errorResponse
	assertPost(t, ts, "/session/"+session.UUID+"/action", playable.PayloadIn{Action: "start"}, &errResp, http.StatusForbidden)
	a.Equal("invalid join code", errResp.Message)
	assertPost(t, ts, "/session/"+session.UUID+"/action?code=wrong", playable.PayloadIn{Action: "start"}, nil, http.StatusForbidden)

	path := "/session/" + session.UUID + "/action?code=" + session.JoinCode

	var resp playable.Response
	assertPost(t, ts, path, playable.PayloadIn{Action: "start"}, &resp, http.StatusOK)
	a.Equal("OK", resp.Value)

	assertPost(t, ts, path, playable.PayloadIn{Action: "draw", Seat: 1}, &resp, http.StatusOK)

	assertPost(t, ts, path, playable.PayloadIn{Action: "draw", Seat: 1}, &errResp, http.StatusBadRequest)
	a.Equal("a card must be burned first", errResp.Message)

	assertPost(t, ts, path, playable.PayloadIn{Action: "draw", Seat: 9}, &errResp, http.StatusBadRequest)
	a.Equal("seat must be between 0 and 3", errResp.Message)

	assertPost(t, ts, path, playable.PayloadIn{Action: "bogus"}, &errResp, http.StatusBadRequest)
	a.Equal("unknown action: bogus", errResp.Message)
}

func TestMux_getSessionUUIDWS(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupTestServer(t)
	session := createTestSession(t, ts)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/session/" + session.UUID + "/ws"

	// seated clients need the join code
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL+"?seat=0&code=wrong", nil)
	a.Error(err)
	a.Equal(http.StatusForbidden, resp.StatusCode)
	a.Nil(conn)

	conn, _, err = websocket.DefaultDialer.Dial(wsURL+"?seat=0&code="+session.JoinCode, nil)
	a.NoError(err)
	defer conn.Close()

	var state playable.Response
	a.NoError(conn.ReadJSON(&state))
	a.Equal("game", state.Key)

	// actions over the websocket get a direct reply
	a.NoError(conn.WriteJSON(playable.PayloadIn{Action: "start", Context: "c1"}))
	for {
		var msg playable.Response
		a.NoError(conn.ReadJSON(&msg))
		if msg.Context == "c1" {
			a.Equal("OK", msg.Value)
			break
		}
	}

	// observers connect without a code
	observer, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer observer.Close()

	var observerState playable.Response
	a.NoError(observer.ReadJSON(&observerState))
	a.Equal("game", observerState.Key)
}
