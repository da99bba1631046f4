package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/internal/report"
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// LintRequest is the body of POST /v1/lint.
type LintRequest struct {
	// Path names the document in findings. Its extension picks the format
	// when Format is empty.
	Path string `json:"path,omitempty"`
	// Format is "markdown" or "html". Defaults to markdown.
	Format string `json:"format,omitempty"`
	// Content is the raw document.
	Content string `json:"content"`
	// FailOn sets the severity threshold for Failed. Defaults to FAIL.
	FailOn string `json:"fail_on,omitempty"`
}

// LintResponse is the body returned by POST /v1/lint.
type LintResponse struct {
	report.Document
	Failed bool `json:"failed"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

const defaultRequestPath = "input.md"

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req LintRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, "invalid request body: "+err.Error())
		return
	}

	failOn := core.SeverityFail
	if req.FailOn != "" {
		sev, ok := core.ParseSeverity(req.FailOn)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid fail_on: "+req.FailOn)
			return
		}
		failOn = sev
	}

	doc, err := s.parseRequest(req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	results := lint.NewResults()
	if findings := s.analyzer.LintDocument(r.Context(), doc); len(findings) > 0 {
		results.Add(doc.Path, findings)
	}

	writeJSON(w, http.StatusOK, LintResponse{
		Document: report.NewDocument(results),
		Failed:   lint.ShouldFail(lint.CountSeverities(results), failOn),
	})
}

func (s *Server) parseRequest(req LintRequest) (*core.Document, error) {
	path := req.Path
	if path == "" {
		path = defaultRequestPath
	}

	switch strings.ToLower(req.Format) {
	case "":
		if _, err := parser.FormatOf(path); err != nil {
			return s.parser.ParseAs(parser.FormatMarkdown, path, req.Content)
		}
		return s.parser.Parse(path, req.Content)
	case "md", "markdown":
		return s.parser.ParseAs(parser.FormatMarkdown, path, req.Content)
	case "html", "htm":
		return s.parser.ParseAs(parser.FormatHTML, path, req.Content)
	default:
		return nil, errors.New("unsupported format: " + req.Format)
	}
}

// rulesResponse is the body of GET /v1/rules.
type rulesResponse struct {
	Rules []core.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")

	var infos []core.RuleInfo
	for _, def := range lint.GetAll() {
		if group != "" && def.Group != group {
			continue
		}
		infos = append(infos, lint.GetRuleInfo(lint.WrapRuleDef(def)))
	}
	if infos == nil {
		infos = []core.RuleInfo{}
	}
	writeJSON(w, http.StatusOK, rulesResponse{Rules: infos, Count: len(infos)})
}

func (s *Server) handleRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	def, ok := lint.GetByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "rule not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, lint.GetRuleInfo(lint.WrapRuleDef(def)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
