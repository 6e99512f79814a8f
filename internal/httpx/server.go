// path: internal/httpx/server.go
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"chess_server_poc/internal/controller"
	"chess_server_poc/internal/game"
	"chess_server_poc/internal/store"
)

// Server wires the HTTP layer to the game controller.
type Server struct {
	ctrl  *controller.Controller
	srvMu sync.Mutex
	srv   *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

func NewServer(ctrl *controller.Controller) *Server {
	return &Server{ctrl: ctrl}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the ServeMux with the JSON APIs.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /game", s.withJSON(s.handleStartGame))
	mux.HandleFunc("GET /game/{id}", s.withJSON(s.handleGetGame))
	mux.HandleFunc("GET /game/{id}/position/{pos}/options", s.withJSON(s.handleMoveOptions))
	mux.HandleFunc("POST /game/{id}/position/{pos}/move/{dest}", s.withJSON(s.handlePlayMove))
	mux.HandleFunc("POST /archive", s.withJSON(s.handleArchive))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrNotAllowed),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrNoPieceAtOrigin),
		errors.Is(err, controller.ErrBadSquare):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func gameID(r *http.Request) (uint32, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}

// ---- API: start game ----

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	id, err := s.ctrl.StartGame()
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, map[string]uint32{"id": id})
}

// ---- API: get game ----

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	board, err := s.ctrl.Game(id)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, map[string]any{"board": board})
}

// ---- API: move options ----

func (s *Server) handleMoveOptions(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	moves, err := s.ctrl.MoveOptions(id, r.PathValue("pos"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, map[string]any{"moves": moves})
}

// ---- API: play move ----

func (s *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	if err := s.ctrl.PlayMove(id, r.PathValue("pos"), r.PathValue("dest")); err != nil {
		writeGameError(w, err)
		return
	}
	board, err := s.ctrl.Game(id)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, map[string]any{"board": board})
}

// ---- API: archive ----

type archiveBody struct {
	Path string `json:"path"`
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var body archiveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Path == "" {
		writeError(w, http.StatusBadRequest, "path required")
		return
	}
	count, err := s.ctrl.Archive(body.Path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]any{"games": count, "path": body.Path})
}
