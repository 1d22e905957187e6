package web_test

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/evaluator"
	"calcpad/internal/web"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) web.ServerFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f web.ServerFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestWebSocket_Session(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts.URL)

	first := readFrame(t, conn)
	assert.Equal(t, web.FrameDisplay, first.Type)
	assert.Equal(t, "", first.Expression)
	assert.Equal(t, domain.ResultZero, first.Result)

	frames := []web.ClientFrame{
		{Type: web.FrameButton, Kind: domain.ButtonNumber, Value: "2"},
		{Type: web.FrameButton, Kind: domain.ButtonOperator, Value: "+"},
		{Type: web.FrameKey, Value: "3"},
		{Type: web.FrameKey, Value: "*"},
		{Type: web.FrameKey, Value: "4"},
		{Type: web.FrameKey, Value: "Enter"},
	}
	var last web.ServerFrame
	for _, f := range frames {
		require.NoError(t, conn.WriteJSON(f))
		last = readFrame(t, conn)
	}
	assert.Equal(t, "2+3*4", last.Expression)
	assert.Equal(t, domain.Result("14"), last.Result)

	require.NoError(t, conn.WriteJSON(web.ClientFrame{Type: web.FrameKey, Value: "Escape"}))
	cleared := readFrame(t, conn)
	assert.Equal(t, "", cleared.Expression)
	assert.Equal(t, domain.ResultZero, cleared.Result)
}

func TestWebSocket_IgnoresUnhandledAndReportsBadFrames(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts.URL)
	readFrame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{oops")))
	bad := readFrame(t, conn)
	assert.Equal(t, web.FrameError, bad.Type)
	assert.NotEmpty(t, bad.Error)

	// "Shift" is not a calculator key, so only the "7" gets an answer.
	require.NoError(t, conn.WriteJSON(web.ClientFrame{Type: web.FrameKey, Value: "Shift"}))
	require.NoError(t, conn.WriteJSON(web.ClientFrame{Type: web.FrameKey, Value: "7"}))
	f := readFrame(t, conn)
	assert.Equal(t, "7", f.Expression)
}

func TestWebSocket_SessionsAreIndependent(t *testing.T) {
	ts := newTestServer(t)
	a := dial(t, ts.URL)
	b := dial(t, ts.URL)
	readFrame(t, a)
	readFrame(t, b)

	require.NoError(t, a.WriteJSON(web.ClientFrame{Type: web.FrameKey, Value: "9"}))
	assert.Equal(t, "9", readFrame(t, a).Expression)

	require.NoError(t, b.WriteJSON(web.ClientFrame{Type: web.FrameKey, Value: "1"}))
	assert.Equal(t, "1", readFrame(t, b).Expression)
}

func TestWebSocket_ShutdownSendsGoingAway(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := web.NewServer(ln.Addr().String(), 256, evaluator.Default, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ctx, ln) }()

	var conn *websocket.Conn
	require.Eventually(t, func() bool {
		c, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws", nil)
		if err != nil {
			return false
		}
		conn = c
		return true
	}, 2*time.Second, 20*time.Millisecond)
	defer conn.Close()
	readFrame(t, conn)

	cancel()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not stop")
	}
}
