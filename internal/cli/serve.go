package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/render"
	"github.com/matzehuels/taxsplit/pkg/split"
	"github.com/matzehuels/taxsplit/pkg/splitstore"
)

// serveCommand creates the serve command exposing computed splits over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags = split.DefaultOptions()
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the computed splits over HTTP",
		Long: `Expose the computed splits over HTTP.

The splits are computed once at startup and served read-only:

  GET /splits              split summaries (class and node counts, roots)
  GET /splits/{name}       one split's sorted class ids
  GET /splits/{name}.svg   one split's subgraph rendered as SVG
  GET /records             persisted split records, newest first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			g, leaves, err := c.loadTaxonomy(cfg)
			if err != nil {
				return err
			}
			_, spanning, err := c.buildUniverse(g, leaves)
			if err != nil {
				return err
			}
			result, err := split.NewBuilder(c.Logger, splitOptions(cfg, flags)).BuildSplits(g, spanning, nil)
			if err != nil {
				return err
			}

			store, closeStore, err := c.newSplitStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("initialize split store: %w", err)
			}
			defer closeStore()

			srv := &server{cli: c, result: result, store: store}
			return c.listenAndServe(cmd.Context(), addr, srv.routes())
		},
	}

	cmd.Flags().IntVar(&flags.Margin, "margin", flags.Margin, "acceptance window half-width around the desired split sizes")
	cmd.Flags().IntVar(&flags.ValidClasses, "valid-classes", flags.ValidClasses, "desired number of validation classes")
	cmd.Flags().IntVar(&flags.TestClasses, "test-classes", flags.TestClasses, "desired number of test classes")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// listenAndServe runs the HTTP server until ctx is cancelled.
func (c *CLI) listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			c.Logger.Warnf("shutting down: %v", err)
		}
	}()

	c.Logger.Infof("listening on %s", addr)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// server holds the immutable state the HTTP handlers read.
type server struct {
	cli    *CLI
	result *split.Result
	store  splitstore.Store
}

// splitSummary is the /splits response entry for one split.
type splitSummary struct {
	Name    string `json:"name"`
	Classes int    `json:"classes"`
	Nodes   int    `json:"nodes"`
	Root    string `json:"root,omitempty"`
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/splits", s.handleSplits)
	r.Get("/splits/{name}", s.handleSplit)
	r.Get("/splits/{name}.svg", s.handleSplitSVG)
	r.Get("/records", s.handleRecords)

	return r
}

// logRequests logs method, path, and handling duration per request.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		s.cli.Logger.Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start).Round(time.Microsecond))
	})
}

func (s *server) handleSplits(w http.ResponseWriter, req *http.Request) {
	summaries := make([]splitSummary, 0, len(s.result.Graphs))
	for _, name := range split.Names() {
		sub := s.result.Graphs[name]
		summaries = append(summaries, splitSummary{
			Name:    string(name),
			Classes: s.result.Classes[name].Len(),
			Nodes:   sub.Nodes.Len(),
			Root:    sub.Root,
		})
	}
	s.writeJSON(w, summaries)
}

func (s *server) handleSplit(w http.ResponseWriter, req *http.Request) {
	name, ok := s.splitName(w, req)
	if !ok {
		return
	}
	s.writeJSON(w, s.result.Classes[name].SortedIDs())
}

func (s *server) handleSplitSVG(w http.ResponseWriter, req *http.Request) {
	name, ok := s.splitName(w, req)
	if !ok {
		return
	}
	sub := s.result.Graphs[name]
	dot := render.ToDOT(sub.Graph, sub.Nodes, render.Options{RootID: sub.Root})
	svg, err := render.ToSVG(req.Context(), dot)
	if err != nil {
		s.cli.Logger.Errorf("rendering %s split: %v", name, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *server) handleRecords(w http.ResponseWriter, req *http.Request) {
	records, err := s.store.List(req.Context())
	if err != nil {
		s.cli.Logger.Errorf("listing split records: %v", err)
		http.Error(w, "list failed", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, records)
}

// splitName resolves the {name} URL parameter to a known split.
func (s *server) splitName(w http.ResponseWriter, req *http.Request) (split.Name, bool) {
	name := split.Name(chi.URLParam(req, "name"))
	if _, ok := s.result.Graphs[name]; !ok {
		http.Error(w, "unknown split", http.StatusNotFound)
		return "", false
	}
	return name, true
}

func (s *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.cli.Logger.Errorf("encoding response: %v", err)
	}
}
