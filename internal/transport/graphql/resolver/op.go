package resolver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/transport/graphql"
)

// op adapts a typed service call to a ResolveFunc. Variables are decoded
// into In; decoding failures are reported as validation errors.
func op[In, Out any](fn func(ctx context.Context, in In) (Out, error)) graphql.ResolveFunc {
	return func(ctx context.Context, vars json.RawMessage) (any, error) {
		var in In
		if err := decodeVariables(vars, &in); err != nil {
			return nil, err
		}
		return fn(ctx, in)
	}
}

func decodeVariables(vars json.RawMessage, dst any) error {
	err := json.Unmarshal(vars, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(typeErr.Field, "must be "+typeErr.Type.String())
	}
	return domain.NewValidationError("variables", "malformed: "+err.Error())
}
