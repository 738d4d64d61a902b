package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

// maxBodyBytes bounds the request body of a single operation.
const maxBodyBytes = 1 << 20

const (
	codeOperationNotFound = "OPERATION_NOT_FOUND"
	codeParseFailed       = "GRAPHQL_PARSE_FAILED"
)

// ResolveFunc answers one operation from its raw variables.
type ResolveFunc func(ctx context.Context, vars json.RawMessage) (any, error)

// Operation is a root field entry point.
type Operation struct {
	// Permission, when set, must be granted to the caller.
	Permission string
	// Anonymous operations skip the login check.
	Anonymous bool
	Resolve   ResolveFunc
}

// Request is the body of POST /graphql. Without a query document the
// operation name is taken as the root field and variables as its arguments.
type Request struct {
	Query         string          `json:"query"`
	OperationName string          `json:"operationName"`
	Variables     json.RawMessage `json:"variables"`
}

// call is one root field selected by a request.
type call struct {
	field string
	key   string
	args  json.RawMessage
}

// Response is the GraphQL response envelope.
type Response struct {
	Data   map[string]any `json:"data"`
	Errors gqlerror.List  `json:"errors,omitempty"`
}

// Handler dispatches the root fields of a request to operations and renders
// results in the GraphQL envelope.
type Handler struct {
	ops       map[string]Operation
	checker   PermissionChecker
	presenter graphql.ErrorPresenterFunc
	log       *slog.Logger
}

// NewHandler creates a Handler over ops. A nil checker allows everything.
func NewHandler(log *slog.Logger, ops map[string]Operation, checker PermissionChecker) *Handler {
	if checker == nil {
		checker = AllowAll{}
	}
	return &Handler{
		ops:       ops,
		checker:   checker,
		presenter: NewErrorPresenter(log),
		log:       log.With("component", "graphql"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, Response{
			Errors: gqlerror.List{gqlerror.Errorf("malformed request body")},
		})
		return
	}

	calls, gqlErr := h.plan(req)
	if gqlErr != nil {
		writeResponse(w, http.StatusBadRequest, Response{Errors: gqlerror.List{gqlErr}})
		return
	}

	ctx := r.Context()
	resp := Response{Data: make(map[string]any, len(calls))}
	for _, c := range calls {
		result, err := h.execute(ctx, h.ops[c.field], c.args)
		if err != nil {
			gqlErr := h.presenter(ctx, err)
			gqlErr.Path = ast.Path{ast.PathName(c.key)}
			resp.Errors = append(resp.Errors, gqlErr)
			resp.Data[c.key] = nil
			continue
		}
		resp.Data[c.key] = result
	}
	writeResponse(w, http.StatusOK, resp)
}

// plan resolves req into the root fields to run. Every field must name a
// registered operation.
func (h *Handler) plan(req Request) ([]call, *gqlerror.Error) {
	if req.Query == "" {
		if _, ok := h.ops[req.OperationName]; !ok {
			return nil, operationNotFound(req.OperationName)
		}
		return []call{{field: req.OperationName, key: req.OperationName, args: req.Variables}}, nil
	}

	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		gqlErr := gqlerror.Errorf("parse query: %v", err)
		gqlErr.Extensions = map[string]interface{}{"code": codeParseFailed}
		return nil, gqlErr
	}
	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return nil, operationNotFound(req.OperationName)
	}

	vars := map[string]any{}
	if len(req.Variables) > 0 && string(req.Variables) != "null" {
		if err := json.Unmarshal(req.Variables, &vars); err != nil {
			return nil, gqlerror.Errorf("variables must be an object")
		}
	}
	for _, def := range op.VariableDefinitions {
		if _, ok := vars[def.Variable]; ok || def.DefaultValue == nil {
			continue
		}
		v, err := def.DefaultValue.Value(nil)
		if err != nil {
			return nil, gqlerror.Errorf("default of $%s: %v", def.Variable, err)
		}
		vars[def.Variable] = v
	}

	calls := make([]call, 0, len(op.SelectionSet))
	for _, sel := range op.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			return nil, gqlerror.Errorf("fragments are not supported at the root")
		}
		if _, ok := h.ops[field.Name]; !ok {
			return nil, operationNotFound(field.Name)
		}
		args, err := fieldArgs(field, vars)
		if err != nil {
			return nil, gqlerror.Errorf("%s: %v", field.Name, err)
		}
		key := field.Alias
		if key == "" {
			key = field.Name
		}
		calls = append(calls, call{field: field.Name, key: key, args: args})
	}
	if len(calls) == 0 {
		return nil, gqlerror.Errorf("operation selects no fields")
	}
	return calls, nil
}

// fieldArgs encodes the arguments of f as a JSON object. Variables come
// first so that resolvers reading flat variables keep working; literal and
// bound arguments override them.
func fieldArgs(f *ast.Field, vars map[string]any) (json.RawMessage, error) {
	args := make(map[string]any, len(vars)+len(f.Arguments))
	for k, v := range vars {
		args[k] = v
	}
	for _, arg := range f.Arguments {
		v, err := arg.Value.Value(vars)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", arg.Name, err)
		}
		args[arg.Name] = v
	}
	return json.Marshal(args)
}

func operationNotFound(name string) *gqlerror.Error {
	gqlErr := gqlerror.Errorf("unknown operation %q", name)
	gqlErr.Extensions = map[string]interface{}{"code": codeOperationNotFound}
	return gqlErr
}

func (h *Handler) execute(ctx context.Context, op Operation, vars json.RawMessage) (any, error) {
	if !op.Anonymous {
		if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
			return nil, fmt.Errorf("%w: login required", domain.ErrUnauthorized)
		}
	}
	if op.Permission != "" {
		if err := h.checker.Check(ctx, op.Permission); err != nil {
			return nil, err
		}
	}
	if len(vars) == 0 || string(vars) == "null" {
		vars = json.RawMessage("{}")
	}
	return op.Resolve(ctx, vars)
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}
