// Package rpc serves the request/reply actions sibling services call on
// this service: POST /rpc/{action} with body {"subdomain", "data"},
// answered with {"status", "data", "errorMessage"}.
package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	maxBodyBytes = 4 << 20
)

// ActionFunc answers one action from its raw data.
type ActionFunc func(ctx context.Context, data json.RawMessage) (any, error)

// Reply lets an action choose the reply status itself. Any other result is
// sent as the data of a successful reply.
type Reply struct {
	Status string
	Data   any
}

type request struct {
	Subdomain string          `json:"subdomain"`
	Data      json.RawMessage `json:"data"`
}

type reply struct {
	Status       string `json:"status"`
	Data         any    `json:"data"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Server dispatches broker actions by name.
type Server struct {
	actions map[string]ActionFunc
	log     *slog.Logger
}

// NewServer creates a Server answering actions.
func NewServer(log *slog.Logger, actions map[string]ActionFunc) *Server {
	return &Server{
		actions: actions,
		log:     log.With("component", "rpc"),
	}
}

// Mount registers the action route on r.
func (s *Server) Mount(r chi.Router) {
	r.Post("/rpc/{action}", s.handle)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "action")
	action, ok := s.actions[name]
	if !ok {
		http.Error(w, "unknown action", http.StatusNotFound)
		return
	}

	var req request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeReply(w, reply{Status: statusError, ErrorMessage: "malformed request: " + err.Error()})
		return
	}

	ctx := r.Context()
	if req.Subdomain != "" {
		ctx = ctxutil.WithSubdomain(ctx, req.Subdomain)
	}
	if len(req.Data) == 0 {
		req.Data = json.RawMessage("null")
	}

	result, err := action(ctx, req.Data)
	if err != nil {
		s.log.WarnContext(ctx, "rpc action failed",
			slog.String("action", name),
			slog.String("error", err.Error()),
		)
		writeReply(w, reply{Status: statusError, ErrorMessage: err.Error()})
		return
	}

	if custom, ok := result.(Reply); ok {
		writeReply(w, reply{Status: custom.Status, Data: custom.Data})
		return
	}
	writeReply(w, reply{Status: statusSuccess, Data: result})
}

func writeReply(w http.ResponseWriter, rep reply) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(rep) //nolint:errcheck
}

// decode unmarshals action data into T. Absent data yields the zero value.
func decode[T any](data json.RawMessage) (T, error) {
	var v T
	if len(data) == 0 || string(data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
}
