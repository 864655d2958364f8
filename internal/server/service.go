// Package server exposes the generator over HTTP. The render service is
// framework-agnostic; gin, echo and fiber adapters serve it.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path"

	"go.uber.org/zap"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/generator"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/loader"
	"github.com/toyz/polygen/internal/output"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// RenderRequest is the body of POST /render. Document is a model document:
// either a JSON object or a string holding YAML or JSON text.
type RenderRequest struct {
	Language string          `json:"language"`
	Document json.RawMessage `json:"document"`
}

// RenderedFile is one generated source file.
type RenderedFile struct {
	Path     string   `json:"path"`
	Language string   `json:"language"`
	Source   string   `json:"source"`
	Imports  []string `json:"imports"`
}

// RenderResponse is the body of a successful render.
type RenderResponse struct {
	Files []RenderedFile `json:"files"`
}

// LanguageInfo describes one target language.
type LanguageInfo struct {
	Name           string `json:"name"`
	Extension      string `json:"extension"`
	NamespaceStyle bool   `json:"namespaceStyle"`
}

// HTTPError is an error with a status code, rendered as {"error": message}.
type HTTPError struct {
	Code     int    `json:"code"`
	Message  string `json:"error"`
	Internal error  `json:"-"`
}

// Error makes HTTPError implement the error interface
func (he *HTTPError) Error() string {
	if he.Internal != nil {
		return he.Internal.Error()
	}
	return he.Message
}

// NewHTTPError creates a new HTTPError instance
func NewHTTPError(code int, err error) *HTTPError {
	return &HTTPError{Code: code, Message: err.Error(), Internal: err}
}

// Service renders model documents.
type Service struct {
	generator *generator.Generator
	logger    *zap.SugaredLogger
}

// NewService creates a render service. A nil logger discards log output.
func NewService(g *generator.Generator, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{generator: g, logger: logger}
}

// Render loads the request document and transforms every file it declares.
// Faults in the request or the model are reported as 400 errors.
func (s *Service) Render(ctx context.Context, req RenderRequest) (*RenderResponse, error) {
	l, err := lang.Parse(req.Language)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, err)
	}
	data, err := documentBytes(req.Document)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, err)
	}

	files, err := loader.LoadBytes("request", data)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, err)
	}
	results, err := s.generator.TransformAll(ctx, files, l)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewHTTPError(http.StatusServiceUnavailable, ctx.Err())
		}
		return nil, NewHTTPError(http.StatusBadRequest, err)
	}

	resp := &RenderResponse{Files: make([]RenderedFile, len(results))}
	for i, r := range results {
		resp.Files[i] = RenderedFile{
			Path:     path.Join(output.PackageDir(r.Language, r.Package), r.FileName+r.Extension),
			Language: r.Language.String(),
			Source:   r.Source(),
			Imports:  r.Imports,
		}
	}
	s.logger.Debugw("document rendered", "language", l, "files", len(results))
	return resp, nil
}

// Languages lists the supported targets.
func (s *Service) Languages() []LanguageInfo {
	all := lang.All()
	infos := make([]LanguageInfo, 0, len(all))
	for _, l := range all {
		p := lang.MustPolicy(l)
		infos = append(infos, LanguageInfo{
			Name:           l.String(),
			Extension:      p.Extension,
			NamespaceStyle: p.NamespaceStyle,
		})
	}
	return infos
}

// Decode parses a render request body.
func Decode(body []byte) (RenderRequest, error) {
	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return req, NewHTTPError(http.StatusBadRequest, errors.WrapParseError("request body", err))
	}
	return req, nil
}

func documentBytes(raw json.RawMessage) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errors.New(errors.ValidationErrorCode, "request has no document")
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, errors.WrapParseError("document", err)
		}
		return []byte(text), nil
	}
	return raw, nil
}

// errorStatus maps any handler error onto a status code and body.
func errorStatus(err error) (int, map[string]string) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code, map[string]string{"error": he.Message}
	}
	return http.StatusInternalServerError, map[string]string{"error": err.Error()}
}
