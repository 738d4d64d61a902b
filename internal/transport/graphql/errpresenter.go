package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

// Error codes reported in the "code" extension.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

// Domain errors whose message is safe to show to clients, in match order.
var clientErrors = []struct {
	err  error
	code string
}{
	{domain.ErrNotFound, CodeNotFound},
	{domain.ErrValidation, CodeValidation},
	{domain.ErrUnauthorized, CodeUnauthenticated},
	{domain.ErrForbidden, CodeForbidden},
}

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes. Upstream and unexpected errors are logged and
// replaced with a generic message.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)
		requestID := ctxutil.RequestIDFromCtx(ctx)

		for _, ce := range clientErrors {
			if !errors.Is(err, ce.err) {
				continue
			}
			gqlErr.Extensions = map[string]interface{}{"code": ce.code}
			var ve *domain.ValidationError
			if ce.code == CodeValidation && errors.As(err, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}
			return gqlErr
		}

		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			log.WarnContext(ctx, "upstream unavailable",
				slog.String("error", err.Error()),
				slog.String("request_id", requestID),
			)
			gqlErr.Message = "upstream service unavailable"
			gqlErr.Extensions = map[string]interface{}{"code": CodeUpstreamUnavailable}
			return gqlErr
		}

		log.ErrorContext(ctx, "unexpected GraphQL error",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		gqlErr.Message = "internal error"
		gqlErr.Extensions = map[string]interface{}{"code": CodeInternal}
		if requestID != "" {
			gqlErr.Extensions["requestId"] = requestID
		}
		return gqlErr
	}
}
