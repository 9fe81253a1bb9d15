// Package monitor serves a read-only HTTP and websocket view of a running session.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/status"
)

// Server exposes snapshots, board geometry, metrics and the event journal
// Every route is GET; nothing here can change game state
type Server struct {
	world    *engine.World
	board    *board.Board
	registry *status.Registry
	journal  *engine.Journal
	interval time.Duration
	session  string
	log      *zap.Logger

	router chi.Router
	spawn  func(func()) // Starts the listener goroutine; core.Go so a panic restores the terminal
}

// NewServer builds the router for a world created by engine.NewGameWorld
func NewServer(world *engine.World, session string) *Server {
	r := engine.GetResourceStore(world)
	s := &Server{
		world:    world,
		board:    r.Board.Board,
		registry: r.Status,
		journal:  r.Journal,
		interval: r.Config.Monitor.StreamInterval.Duration,
		session:  session,
		log:      r.Log,
		spawn:    core.Go,
	}
	if s.interval <= 0 {
		s.interval = parameter.MonitorStreamInterval
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Route("/api", func(rr chi.Router) {
		rr.Get("/status", s.handleStatus)
		rr.Get("/board", s.handleBoard)
		rr.Get("/metrics", s.handleMetrics)
		rr.Get("/journal", s.handleJournal)
		rr.Get("/stream", s.handleStream)
	})
	return r
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	s.spawn(func() {
		s.log.Info("monitor listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.MonitorShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

type statusResponse struct {
	Session string `json:"session,omitempty"`
	engine.Snapshot
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Session: s.session, Snapshot: engine.TakeSnapshot(s.world)})
}

type pegView struct {
	Row    int     `json:"row"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type zoneView struct {
	Index      int     `json:"index"`
	Slot       int     `json:"slot"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	HalfExtent float64 `json:"half_extent"`
	Power      float64 `json:"power"`
}

type boardResponse struct {
	Pegs  []pegView  `json:"pegs"`
	Zones []zoneView `json:"zones"`
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	resp := boardResponse{
		Pegs:  make([]pegView, 0, len(s.board.Pegs)),
		Zones: make([]zoneView, 0, len(s.board.Zones)),
	}
	for _, p := range s.board.Pegs {
		resp.Pegs = append(resp.Pegs, pegView{Row: p.Row, Index: p.Index, X: p.Position.X, Y: p.Position.Y, Radius: p.Radius})
	}
	for _, z := range s.board.Zones {
		resp.Zones = append(resp.Zones, zoneView{
			Index: z.Index, Slot: z.Slot,
			X: z.Position.X, Y: z.Position.Y,
			HalfExtent: z.HalfExtent, Power: z.Power,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Snapshot())
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.journal.Entries())
}

// handleStream pushes a snapshot every stream interval until the client leaves
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.Warn("monitor stream accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	// Read side is unused; CloseRead cancels ctx when the peer closes
	ctx := conn.CloseRead(r.Context())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := wsjson.Write(ctx, conn, engine.TakeSnapshot(s.world)); err != nil {
			s.log.Debug("monitor stream closed", zap.Error(err))
			return
		}
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case <-ticker.C:
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
