package server

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cricklet/movehighlight/internal/board"
	"github.com/cricklet/movehighlight/internal/highlight"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
	"github.com/cricklet/movehighlight/internal/selection"
)

// session is one websocket connection. It owns its board and selection and
// is only touched from the connection's read loop.
type session struct {
	id         string
	conn       *websocket.Conn
	logger     Logger
	server     *ZapLogger
	grid       *highlight.Grid
	controller *selection.Controller
}

func (s *Server) newSession(c *websocket.Conn) (*session, Error) {
	b, err := board.FromFen(board.StartingFen, s.friendly)
	if !IsNil(err) {
		return nil, err
	}

	id := uuid.NewString()
	sess := &session{
		id:     id,
		conn:   c,
		server: s.Logger.With("session", id),
		grid:   highlight.NewGrid(),
	}
	sess.logger = sess.server
	if s.ForwardLogs {
		sess.logger = FuncLogger(sess.forward)
	}
	sess.controller = selection.NewController(b, sess.grid, sess.logger)
	return sess, NilError
}

func (sess *session) forward(message string) {
	message = strings.TrimSuffix(message, "\n")
	sess.server.Print(message)

	bytes, err := json.Marshal(LogToWeb{Log: message})
	if err != nil {
		sess.server.Println("logging: json marshal:", err)
		return
	}
	if err := sess.conn.WriteMessage(websocket.TextMessage, bytes); err != nil {
		sess.server.Println("logging: websocket:", err)
	}
}

func (sess *session) handleMessageFromWeb(bytes []byte) {
	var message MessageFromWeb
	if err := json.Unmarshal(bytes, &message); err != nil {
		sess.logger.Println("handleMessageFromWeb: json unmarshal:", err)
		sess.send(UpdateToWeb{Error: "invalid message"})
		return
	}
	sess.logger.Println("received", message)

	var update UpdateToWeb
	if message.Fen != nil {
		b, err := board.FromFen(*message.Fen, sess.controller.Board().Friendly)
		if !IsNil(err) {
			sess.logger.Println("fen:", err)
			update.Error = err.Error()
		} else {
			sess.controller.SetBoard(b)
		}
	} else if message.Selection != nil {
		if *message.Selection == "" {
			sess.controller.Deselect()
		} else if _, err := sess.controller.SelectSquare(*message.Selection); !IsNil(err) {
			sess.logger.Println("selection:", err)
			update.Error = err.Error()
		}
	} else if message.Deselect != nil && *message.Deselect {
		sess.controller.Deselect()
	}

	sess.send(update)
}

func (sess *session) send(update UpdateToWeb) {
	b := sess.controller.Board()
	update.Session = sess.id
	update.Fen = b.Fen()
	if selected := sess.controller.Selected(); selected.HasValue() {
		update.Selection = b.SquareName(selected.Value())
	}

	quiet, captures := Split(sess.controller.Moves())
	update.Quiet = squareNames(b, quiet)
	update.Captures = squareNames(b, captures)

	sess.server.Println("sending", update)
	bytes, err := json.Marshal(update)
	if err != nil {
		sess.server.Println("update: json marshal:", err)
		return
	}
	if err := sess.conn.WriteMessage(websocket.TextMessage, bytes); err != nil {
		sess.server.Println("websocket:", err)
	}
}
