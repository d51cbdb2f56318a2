package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/export"
	"github.com/specialistvlad/figvars/internal/model"
	"github.com/specialistvlad/figvars/internal/normalize"
	"github.com/specialistvlad/figvars/internal/projection"
	"github.com/specialistvlad/figvars/internal/render"
)

// Handler returns the read-only HTTP API.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /collections", a.collectionsHandler)
	mux.HandleFunc("GET /collections/{id}/rows", a.rowsHandler)
	mux.HandleFunc("GET /collections/{id}/groups", a.groupsHandler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r.WithContext(ctxlog.WithLogger(r.Context(), a.logger)))
	})
}

// Serve runs the HTTP API on the configured port until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.ServePort)

	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		errCh <- a.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
		return err
	}
	logger.Debug("Server shut down gracefully.")
	return nil
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) collectionsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := a.result(r.Context())
	if err != nil {
		a.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, export.Build(res))
}

type cellDTO struct {
	Text  string `json:"text,omitempty"`
	Hex   string `json:"hex,omitempty"`
	CSS   string `json:"css,omitempty"`
	Alias string `json:"alias,omitempty"`
}

type variableRowDTO struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	ActualName   string             `json:"actualName"`
	Type         string             `json:"type"`
	Hidden       bool               `json:"hidden"`
	Values       map[string]cellDTO `json:"values"`
	CodeSyntax   []render.Tag       `json:"codeSyntax,omitempty"`
	ReferencedBy []string           `json:"referencedBy,omitempty"`
}

type rowDTO struct {
	Key       string           `json:"key"`
	Name      string           `json:"name"`
	Path      []string         `json:"path"`
	Depth     int              `json:"depth"`
	ParentKey string           `json:"parentKey,omitempty"`
	Hidden    bool             `json:"hidden"`
	Variables []variableRowDTO `json:"variables"`
}

// rowsDTO is the table payload. ExpandedKeys lists every returned group key;
// tables start fully expanded.
type rowsDTO struct {
	Rows         []rowDTO `json:"rows"`
	ExpandedKeys []string `json:"expandedKeys"`
}

// collection loads the result and looks up the collection named in the path.
// It writes the error response itself and returns nil on failure.
func (a *App) collection(w http.ResponseWriter, r *http.Request) (*normalize.Result, *model.VariableCollection) {
	res, err := a.result(r.Context())
	if err != nil {
		a.writeError(w, r, http.StatusBadGateway, err)
		return nil, nil
	}
	coll := res.Collection(r.PathValue("id"))
	if coll == nil {
		a.writeError(w, r, http.StatusNotFound, fmt.Errorf("collection %q not found", r.PathValue("id")))
		return nil, nil
	}
	return res, coll
}

func (a *App) groupsHandler(w http.ResponseWriter, r *http.Request) {
	_, coll := a.collection(w, r)
	if coll == nil {
		return
	}
	opts := projection.GroupFilterOptions(coll.Groups)
	if opts == nil {
		opts = []projection.FilterOption{}
	}
	writeJSON(w, http.StatusOK, opts)
}

func (a *App) rowsHandler(w http.ResponseWriter, r *http.Request) {
	res, coll := a.collection(w, r)
	if coll == nil {
		return
	}

	var err error

	q := r.URL.Query()
	opts := projection.FilterOptions{Search: q.Get("search"), GroupKey: q.Get("group")}
	if raw := q.Get("editing"); raw != "" {
		opts.Editing, err = strconv.ParseBool(raw)
		if err != nil {
			a.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid editing flag %q", raw))
			return
		}
	}
	modes := coll.Modes
	if ref := q.Get("mode"); ref != "" {
		m, ok := coll.FindMode(ref)
		if !ok {
			a.writeError(w, r, http.StatusBadRequest, fmt.Errorf("unknown mode %q", ref))
			return
		}
		modes = []model.Mode{m}
	}

	rows := projection.Filter(projection.Flatten(coll.Groups, modes), opts)
	out := make([]rowDTO, 0, len(rows))
	for _, row := range rows {
		dto := rowDTO{
			Key:       row.Key,
			Name:      row.Name,
			Path:      row.Path,
			Depth:     row.Depth,
			ParentKey: row.ParentKey,
			Hidden:    row.Hidden,
			Variables: make([]variableRowDTO, 0, len(row.Variables)),
		}
		for _, vr := range row.Variables {
			v := vr.Variable
			vd := variableRowDTO{
				ID:           v.ID,
				Name:         v.Name,
				ActualName:   v.ActualName,
				Type:         string(v.ResolvedType),
				Hidden:       v.Hidden,
				Values:       make(map[string]cellDTO, len(vr.Values)),
				CodeSyntax:   render.CodeSyntaxTags(v),
				ReferencedBy: render.ReferenceLines(v, res),
			}
			for _, mv := range vr.Values {
				c := render.Cell(v, mv.ModeID, res)
				name := mv.ModeID
				if m, ok := coll.ModeByID(mv.ModeID); ok {
					name = m.Name
				}
				vd.Values[name] = cellDTO{Text: c.Text, Hex: c.Hex, CSS: c.CSS, Alias: c.AliasName}
			}
			dto.Variables = append(dto.Variables, vd)
		}
		out = append(out, dto)
	}
	writeJSON(w, http.StatusOK, rowsDTO{Rows: out, ExpandedKeys: projection.ExpandedKeys(rows)})
}

func (a *App) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	ctxlog.FromContext(r.Context()).Warn("Request failed.", "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
