package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime/debug"

	nchess "github.com/corentings/chess/v2"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/cricklet/movehighlight/internal/board"
	"github.com/cricklet/movehighlight/internal/config"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
	"github.com/cricklet/movehighlight/internal/render"
	"github.com/cricklet/movehighlight/internal/selection"
	"github.com/cricklet/movehighlight/internal/threats"
)

type Server struct {
	Config config.Config
	Logger *ZapLogger

	// ForwardLogs sends every session log line to the socket as a LogToWeb.
	ForwardLogs bool

	friendly nchess.Color
	upgrader websocket.Upgrader
}

func New(cfg config.Config, logger *ZapLogger) (*Server, Error) {
	friendly, err := board.ColorFromString(cfg.FriendlyColor)
	if !IsNil(err) {
		return nil, err
	}
	if logger == nil {
		logger = DefaultLogger
	}
	return &Server{
		Config:      cfg,
		Logger:      logger,
		ForwardLogs: true,
		friendly:    friendly,
	}, NilError
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.recoverMiddleware)
	router.HandleFunc("/ws", s.ws)
	router.HandleFunc("/render.png", s.renderPng).Methods(http.MethodGet)
	router.HandleFunc("/threats", s.threatsHandler).Methods(http.MethodGet)

	static := s.staticDir()
	router.PathPrefix("/static").Handler(
		http.StripPrefix("/static", http.FileServer(http.Dir(static))))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(static, "index.html"))
	})
	return router
}

func (s *Server) ListenAndServe() Error {
	s.Logger.Println("serving at", s.Config.Server.Port)
	return Wrap(http.ListenAndServe(fmt.Sprintf(":%v", s.Config.Server.Port), s.Router()))
}

func (s *Server) staticDir() string {
	if filepath.IsAbs(s.Config.Server.StaticDir) {
		return s.Config.Server.StaticDir
	}
	return filepath.Join(RootDir(), s.Config.Server.StaticDir)
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.Logger.Println("panic:", rec, string(debug.Stack()))
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// loadBoard parses the fen query parameter, defaulting to the starting
// position.
func (s *Server) loadBoard(r *http.Request) (*board.Board, Error) {
	return board.FromFen(r.URL.Query().Get("fen"), s.friendly)
}

func (s *Server) renderPng(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadBoard(r)
	if !IsNil(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	png := render.NewPNG(b, s.Config.Render.SquareSize)
	controller := selection.NewController(b, png, s.Logger)
	if square := r.URL.Query().Get("selection"); square != "" {
		if _, err := controller.SelectSquare(square); !IsNil(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(r.Context(), w); !IsNil(err) {
		s.Logger.Println("render:", err)
	}
}

func (s *Server) threatsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadBoard(r)
	if !IsNil(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	side := Friendly
	if raw := r.URL.Query().Get("side"); raw != "" {
		parsed, ok := SideFromString(raw)
		if !ok {
			http.Error(w, fmt.Sprintf("invalid side %q", raw), http.StatusBadRequest)
			return
		}
		side = parsed
	}

	m, err := threats.Compute(r.Context(), b, side, s.Config.ThreatWorkers)
	if !IsNil(err) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(threatsJson(b, m)); err != nil {
		s.Logger.Println("threats: json encode:", err)
	}
}

func (s *Server) ws(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Println("upgrade:", err)
		return
	}
	defer c.Close()

	sess, sessErr := s.newSession(c)
	if !IsNil(sessErr) {
		s.Logger.Println("session:", sessErr)
		return
	}
	sess.logger.Println("connected")
	sess.send(UpdateToWeb{})

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			sess.logger.Printf("closed: %v", err)
			break
		}
		sess.handleMessageFromWeb(message)
	}
}
