package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"calcpad/internal/domain"
	"calcpad/internal/keymap"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second

	// Ping period; must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxFrameSize = 1024
)

// Frame types.
const (
	FrameKey     = "key"
	FrameButton  = "button"
	FrameDisplay = "display"
	FrameError   = "error"
)

// ClientFrame is one input event sent by the browser.
type ClientFrame struct {
	Type  string            `json:"type"`
	Kind  domain.ButtonKind `json:"kind,omitempty"`
	Value string            `json:"value"`
}

// ServerFrame carries the display after an input, or an error for a frame
// that could not be read.
type ServerFrame struct {
	Type       string        `json:"type"`
	Expression string        `json:"expression"`
	Result     domain.Result `json:"result"`
	Error      string        `json:"error,omitempty"`
}

func displayFrame(d domain.Display) ServerFrame {
	return ServerFrame{Type: FrameDisplay, Expression: d.Expression, Result: d.Result}
}

// Action translates the frame into a calculator action.
func (f ClientFrame) Action() (domain.Action, bool) {
	switch f.Type {
	case FrameKey:
		return keymap.FromKey(f.Value)
	case FrameButton:
		return keymap.FromButton(f.Kind, f.Value)
	default:
		return domain.Action{}, false
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade: %v", err)
		return
	}
	log := s.log.WithPrefix("ws")
	log.Debug("session opened from %s", r.RemoteAddr)

	send := make(chan ServerFrame, 16)
	done := make(chan struct{})
	go s.writePump(r.Context(), conn, send, done)

	s.readPump(conn, send, done)
	close(send)
	<-done
	log.Debug("session closed from %s", r.RemoteAddr)
}

// readPump owns the session calculator; frames are applied one at a time.
func (s *Server) readPump(conn *websocket.Conn, send chan<- ServerFrame, done <-chan struct{}) {
	calc := s.newSession()
	emit := func(f ServerFrame) bool {
		select {
		case send <- f:
			return true
		case <-done:
			return false
		}
	}

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if !emit(displayFrame(calc.Display())) {
		return
	}
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read: %v", err)
			}
			return
		}
		var f ClientFrame
		if err := json.Unmarshal(msg, &f); err != nil {
			if !emit(ServerFrame{Type: FrameError, Error: "invalid frame: " + err.Error()}) {
				return
			}
			continue
		}
		a, ok := f.Action()
		if !ok {
			continue
		}
		calc.Dispatch(a)
		if !emit(displayFrame(calc.Display())) {
			return
		}
	}
}

// writePump is the only writer on conn and the only closer. It exits when
// send is closed, a write fails or ctx ends, closing done and the connection.
func (s *Server) writePump(ctx context.Context, conn *websocket.Conn, send <-chan ServerFrame, done chan<- struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(done)
		_ = conn.Close()
	}()

	for {
		select {
		case f, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(f); err != nil {
				s.log.Warn("websocket write: %v", err)
				return
			}
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
