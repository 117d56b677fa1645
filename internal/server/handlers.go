package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/graphml/pkg/buildinfo"
	"github.com/matzehuels/graphml/pkg/cache"
	apierr "github.com/matzehuels/graphml/pkg/errors"
	gio "github.com/matzehuels/graphml/pkg/io"
	"github.com/matzehuels/graphml/pkg/observability"
)

const hookSource = "http"

const contentTypeXML = "application/xml; charset=utf-8"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

func (s *Server) handleGraphML(w http.ResponseWriter, r *http.Request) {
	format, err := requestFormat(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := exportOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, apierr.Wrap(apierr.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, r, apierr.Wrap(apierr.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	ctx := r.Context()
	key := cache.ArtifactKey(body, cache.ArtifactOpts{
		Format:      format,
		Pretty:      opts.Pretty,
		NodeWeights: opts.NodeWeights,
		EdgeWeights: opts.EdgeWeights,
	})

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache get failed", "err", err)
	} else if ok {
		observability.Cache().OnCacheHit(ctx, hookSource)
		writeXML(w, data, "HIT")
		return
	}
	observability.Cache().OnCacheMiss(ctx, hookSource)

	doc, err := s.render(ctx, body, format, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.cache.Set(ctx, key, doc, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache set failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, hookSource, len(doc))
	}
	writeXML(w, doc, "MISS")
}

// render decodes body and encodes it as GraphML, reporting to the export hooks.
func (s *Server) render(ctx context.Context, body []byte, format string, opts gio.Options) (doc []byte, err error) {
	hooks := observability.Export()
	hooks.OnExportStart(ctx, hookSource)
	start := time.Now()
	var stats observability.ExportStats
	defer func() {
		hooks.OnExportComplete(ctx, hookSource, stats, time.Since(start), err)
	}()

	g, err := gio.Read(bytes.NewReader(body), format)
	if err != nil {
		return nil, apierr.Classify(err, "invalid graph")
	}

	var buf bytes.Buffer
	if err := gio.WriteGraphML(g, &buf, opts); err != nil {
		return nil, apierr.Classify(err, "encode graph")
	}
	stats = observability.ExportStats{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Bytes: buf.Len()}
	return buf.Bytes(), nil
}

// requestFormat picks the graph file format from the Content-Type header.
// A missing header means JSON.
func requestFormat(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return gio.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", apierr.Wrap(apierr.ErrCodeUnsupported, err, "invalid content type")
	}
	switch mt {
	case "application/json":
		return gio.FormatJSON, nil
	case "application/toml":
		return gio.FormatTOML, nil
	}
	return "", apierr.New(apierr.ErrCodeUnsupported, "unsupported content type: %s", mt)
}

func exportOptions(r *http.Request) (gio.Options, error) {
	q := r.URL.Query()

	var opts gio.Options
	if v := q.Get("pretty"); v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return opts, apierr.New(apierr.ErrCodeInvalidInput, "invalid pretty value: %q", v)
		}
		opts.Pretty = pretty
	}

	opts.NodeWeights = q.Get("node_weights")
	if err := apierr.ValidateExporterName(opts.NodeWeights); err != nil {
		return opts, err
	}
	opts.EdgeWeights = q.Get("edge_weights")
	if err := apierr.ValidateExporterName(opts.EdgeWeights); err != nil {
		return opts, err
	}
	return opts, nil
}

func writeXML(w http.ResponseWriter, data []byte, cacheStatus string) {
	w.Header().Set("Content-Type", contentTypeXML)
	w.Header().Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      apierr.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apierr.HTTPStatus(err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}

	code := apierr.GetCode(err)
	if code == "" {
		code = apierr.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", requestIDFromContext(r.Context()), "err", err)
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   apierr.UserMessage(err),
		RequestID: requestIDFromContext(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
