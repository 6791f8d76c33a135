package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricklet/movehighlight/internal/config"
	. "github.com/cricklet/movehighlight/internal/helpers"
)

func newTestServer(t *testing.T, forwardLogs bool) *httptest.Server {
	s, err := New(config.Default(), nil)
	require.True(t, IsNil(err), err)
	s.ForwardLogs = forwardLogs

	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

// readUpdate skips forwarded log lines.
func readUpdate(t *testing.T, c *websocket.Conn) UpdateToWeb {
	for {
		_, raw, err := c.ReadMessage()
		require.NoError(t, err)

		var log LogToWeb
		if json.Unmarshal(raw, &log) == nil && log.Log != "" {
			continue
		}

		var update UpdateToWeb
		require.NoError(t, json.Unmarshal(raw, &update), string(raw))
		return update
	}
}

func send(t *testing.T, c *websocket.Conn, message string) {
	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(message)))
}

func TestWebsocketSelection(t *testing.T) {
	c := dial(t, newTestServer(t, false))

	initial := readUpdate(t, c)
	assert.NotEmpty(t, initial.Session)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", initial.Fen)
	assert.Empty(t, initial.Selection)

	send(t, c, `{"selection": "e2"}`)
	update := readUpdate(t, c)
	assert.Equal(t, initial.Session, update.Session)
	assert.Equal(t, "e2", update.Selection)
	assert.Equal(t, []string{"e3"}, update.Quiet)
	assert.Equal(t, []string{}, update.Captures)

	send(t, c, `{"selection": "b1"}`)
	update = readUpdate(t, c)
	assert.Equal(t, "b1", update.Selection)
	assert.ElementsMatch(t, []string{"c3", "a3"}, update.Quiet)

	// selecting the same piece again clears the selection
	send(t, c, `{"selection": "b1"}`)
	update = readUpdate(t, c)
	assert.Empty(t, update.Selection)
	assert.Empty(t, update.Quiet)
}

func TestWebsocketFenAndCaptures(t *testing.T) {
	c := dial(t, newTestServer(t, false))
	readUpdate(t, c)

	send(t, c, `{"fen": "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"}`)
	update := readUpdate(t, c)
	assert.Equal(t, "4k3/8/8/3p4/4P3/8/8/4K3", update.Fen)
	assert.Empty(t, update.Error)

	send(t, c, `{"selection": "e4"}`)
	update = readUpdate(t, c)
	assert.Equal(t, []string{"e5"}, update.Quiet)
	assert.Equal(t, []string{"d5"}, update.Captures)

	send(t, c, `{"deselect": true}`)
	update = readUpdate(t, c)
	assert.Empty(t, update.Selection)
	assert.Empty(t, update.Captures)
}

func TestWebsocketErrors(t *testing.T) {
	c := dial(t, newTestServer(t, true))
	readUpdate(t, c)

	send(t, c, `{"fen": "xxxxxxxx/8/8/8/8/8/8/8"}`)
	update := readUpdate(t, c)
	assert.NotEmpty(t, update.Error)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", update.Fen)

	send(t, c, `{"selection": "z9"}`)
	update = readUpdate(t, c)
	assert.NotEmpty(t, update.Error)

	send(t, c, `garbage`)
	update = readUpdate(t, c)
	assert.Equal(t, "invalid message", update.Error)
}

func TestWebsocketForwardsLogs(t *testing.T) {
	c := dial(t, newTestServer(t, true))

	_, raw, err := c.ReadMessage()
	require.NoError(t, err)

	var log LogToWeb
	require.NoError(t, json.Unmarshal(raw, &log))
	assert.Equal(t, "connected", log.Log)
}

func TestRenderPng(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/render.png?selection=g1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)

	img, err := png.Decode(&body)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 8*config.Default().Render.SquareSize)
}

func TestRenderPngBadRequest(t *testing.T) {
	ts := newTestServer(t, false)

	for _, query := range []string{"fen=nonsense", "selection=k9"} {
		resp, err := http.Get(ts.URL + "/render.png?" + query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
	}
}

func TestThreats(t *testing.T) {
	ts := newTestServer(t, false)

	query := url.Values{}
	query.Set("fen", "4k3/8/8/8/8/8/1p6/R3K3")
	query.Set("side", "enemy")

	resp, err := http.Get(ts.URL + "/threats?" + query.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result ThreatsJson
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "enemy", result.Side)

	var a1 *ThreatTileJson
	for i := range result.Tiles {
		if result.Tiles[i].Square == "a1" {
			a1 = &result.Tiles[i]
		}
	}
	require.NotNil(t, a1)
	assert.Equal(t, []AttackJson{{From: "b2", Piece: "p", Capture: true}}, a1.Attackers)
}

func TestThreatsBadSide(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/threats?side=purple")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
