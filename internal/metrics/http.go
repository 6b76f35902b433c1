package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/storage"
)

const (
	defaultScoresLimit = 10
	maxScoresLimit     = 100
)

// scoreJSON is one row of a level's best times.
type scoreJSON struct {
	Rank       int       `json:"rank"`
	Player     string    `json:"player"`
	Moves      int       `json:"moves"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// statsJSON summarizes the solves of one level.
type statsJSON struct {
	LevelID     string    `json:"level_id"`
	Solves      int       `json:"solves"`
	Players     int       `json:"players"`
	BestMS      int64     `json:"best_ms"`
	AverageMS   int64     `json:"average_ms"`
	FewestMoves int       `json:"fewest_moves"`
	LastSolved  time.Time `json:"last_solved"`
}

type api struct {
	store  *storage.Store
	logger *log.Logger
}

// NewHandler returns the HTTP API: Prometheus metrics, a health probe and
// read-only best times. Without a store the score routes answer 503.
func NewHandler(m *Metrics, store *storage.Store, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	a := &api{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))

	r.Route("/levels", func(r chi.Router) {
		r.Get("/", a.levelStats)
		r.Get("/{level}/scores", a.levelScores)
	})
	return r
}

// logRequests logs every request at debug level.
func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// levelStats lists a summary of every solved level, sorted by level ID.
func (a *api) levelStats(w http.ResponseWriter, _ *http.Request) {
	if a.store == nil {
		http.Error(w, "scores are not recorded on this server", http.StatusServiceUnavailable)
		return
	}

	all, err := a.store.AllLevelStats()
	if err != nil {
		a.logger.Error("cannot load level stats", "error", err)
		http.Error(w, "cannot load level stats", http.StatusInternalServerError)
		return
	}

	out := make([]statsJSON, 0, len(all))
	for _, st := range all {
		out = append(out, statsJSON{
			LevelID:     st.LevelID,
			Solves:      st.Solves,
			Players:     st.Players,
			BestMS:      st.BestTime.Milliseconds(),
			AverageMS:   st.AvgTime.Milliseconds(),
			FewestMoves: st.FewestMoves,
			LastSolved:  st.LastSolved,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LevelID < out[j].LevelID })
	a.writeJSON(w, out)
}

// levelScores lists the fastest solves of one level. ?limit= caps the rows.
func (a *api) levelScores(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		http.Error(w, "scores are not recorded on this server", http.StatusServiceUnavailable)
		return
	}

	limit := defaultScoresLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, fmt.Sprintf("invalid limit %q", raw), http.StatusBadRequest)
			return
		}
		limit = min(n, maxScoresLimit)
	}

	levelID := chi.URLParam(r, "level")
	solves, err := a.store.BestSolves(levelID, limit)
	if err != nil {
		a.logger.Error("cannot load scores", "level", levelID, "error", err)
		http.Error(w, "cannot load scores", http.StatusInternalServerError)
		return
	}

	out := make([]scoreJSON, 0, len(solves))
	for i, s := range solves {
		out = append(out, scoreJSON{
			Rank:       i + 1,
			Player:     s.Player,
			Moves:      s.Moves,
			DurationMS: s.Duration.Milliseconds(),
			CreatedAt:  s.CreatedAt,
		})
	}
	a.writeJSON(w, out)
}

func (a *api) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("cannot write response", "error", err)
	}
}

// Serve runs an HTTP server for h on addr until ctx is done, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	if logger == nil {
		logger = logging.Discard()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting metrics server", "address", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
