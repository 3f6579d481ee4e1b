package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bijoor/konkan-house/pkg/cache"
	"github.com/bijoor/konkan-house/pkg/errors"
	"github.com/bijoor/konkan-house/pkg/plan"
	"github.com/bijoor/konkan-house/pkg/render/floorplan"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr  string // listen address
	redis string // redis address for a shared render cache; empty uses a temp dir
	scale float64
}

// serveCommand creates the serve command: a small preview server that
// renders floors of one plan file on demand.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "serve [plan file]",
		Short: "Serve floor-plan previews over HTTP",
		Long: `Serve starts a preview server for one plan file.

Endpoints:
  GET /healthz              liveness check
  GET /floors               floor list as JSON
  GET /floors/{number}.svg  rendered floor plan

With --redis, rendered output is cached in Redis so multiple server
processes share one cache; otherwise renders are cached in a temporary
directory that lasts as long as the process.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for a shared render cache")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixels per drawing unit")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	p, err := plan.Load(input)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	store, err := newServeCache(ctx, opts.redis)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: newServerHandler(p, cache.Hash(raw), store, opts.scale, logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving %s on %s", p.Name, opts.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// newServeCache picks the render cache backend for the server: Redis
// when an address is given, otherwise a file cache in a fresh temp
// directory, and no caching at all if that cannot be created.
func newServeCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr == "" {
		dir, err := os.MkdirTemp("", appName+"-serve-")
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
	return cache.NewRedisCache(ctx, redisAddr)
}

// server handles preview requests for one loaded plan.
type server struct {
	plan     *plan.Plan
	planHash string
	store    cache.Cache
	scale    float64
	logger   *log.Logger
}

// newServerHandler builds the chi router for the preview server.
func newServerHandler(p *plan.Plan, planHash string, store cache.Cache, scale float64, logger *log.Logger) http.Handler {
	s := &server{plan: p, planHash: planHash, store: store, scale: scale, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Get("/floors", s.handleFloors)
	r.Get("/floors/{number}.svg", s.handleFloorSVG)
	return r
}

// requestID tags every request with a UUID for log correlation.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		s.logger.Debugf("%s %s [%s]", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// floorSummary is one entry in the /floors listing.
type floorSummary struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Rooms  int    `json:"rooms"`
	Walls  int    `json:"walls"`
}

func (s *server) handleFloors(w http.ResponseWriter, r *http.Request) {
	floors := make([]floorSummary, len(s.plan.Floors))
	for i := range s.plan.Floors {
		f := &s.plan.Floors[i]
		floors[i] = floorSummary{
			Number: f.Number,
			Name:   f.Label(),
			Rooms:  len(f.Rooms),
			Walls:  len(f.Walls),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(floors); err != nil {
		s.logger.Errorf("encode floors: %v", err)
	}
}

func (s *server) handleFloorSVG(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, "floor number must be an integer", http.StatusBadRequest)
		return
	}

	f, err := s.plan.Floor(number)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFloorNotFound) {
			http.Error(w, errors.UserMessage(err), http.StatusNotFound)
			return
		}
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	key := cache.RenderKey(s.planHash, f.Number, "svg", s.scale, s.plan.Dimensions)
	data, hit, err := s.store.Get(ctx, key)
	if err != nil || !hit {
		data = floorplan.Render(f,
			floorplan.WithDimensions(s.plan.Dimensions),
			floorplan.WithWallThickness(s.plan.WallThickness),
			floorplan.WithScale(s.scale),
		)
		if err := s.store.Set(ctx, key, data, cacheTTL); err != nil {
			s.logger.Debugf("cache write failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}
