package posorder

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

// buildFilter turns the parameter bag into an order filter merged with the
// caller's access scope.
func (s *Service) buildFilter(ctx context.Context, in FilterInput) (domain.OrderFilter, error) {
	f := domain.OrderFilter{
		Scope:      domain.Selector(ctxutil.ScopeFromCtx(ctx)),
		CustomerID: in.CustomerID,
	}

	if in.Search != "" {
		f.SearchPattern = regexp.QuoteMeta(in.Search)
	}
	if in.CustomerType != "" {
		f.CustomerType = domain.CustomerType(in.CustomerType)
	}
	if len(in.Statuses) > 0 || len(in.ExcludeStatuses) > 0 {
		f.Statuses = in.Statuses
		f.ExcludeStatuses = in.ExcludeStatuses
	}

	pos, err := s.resolvePos(ctx, in)
	if err != nil {
		return domain.OrderFilter{}, err
	}
	f.Pos = pos

	if in.UserID != "" {
		userID := in.UserID
		switch userID {
		case userIDMe:
			userID, _ = ctxutil.UserIDFromCtx(ctx)
		case userIDNothing:
			userID = ""
		}
		f.UserID = &userID
	}

	f.PaidDate = s.dayRange(in.PaidStartDate, in.PaidEndDate)
	f.CreatedAt = s.dayRange(in.CreatedStartDate, in.CreatedEndDate)

	if len(in.Types) > 0 {
		f.Types = in.Types
	}

	if in.HasPaidDate {
		f.PaidDate = nil
		f.PaidDateExists = true
	}

	if in.PaidDate == paidDateToday || f.IsEmpty() {
		start := s.startOfDay(s.now())
		end := start.AddDate(0, 0, 1)
		f.PaidDate = &domain.TimeRange{From: &start, Until: &end}
		f.PaidDateExists = false
	}

	return f, nil
}

// resolvePos applies the terminal selectors in order posId, brandId,
// posToken, each later one overriding the earlier. A selector that resolves
// to no terminal yields a filter matching nothing.
func (s *Service) resolvePos(ctx context.Context, in FilterInput) (*domain.PosSelector, error) {
	var sel *domain.PosSelector

	lookups := []struct {
		ref    string
		lookup func(context.Context, string) (*domain.Pos, error)
	}{
		{in.PosID, s.pos.GetByID},
		{in.BrandID, s.pos.GetByBrand},
		{in.PosToken, s.pos.GetByToken},
	}

	for _, l := range lookups {
		if l.ref == "" {
			continue
		}
		pos, err := l.lookup(ctx, l.ref)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			sel = &domain.PosSelector{}
		case err != nil:
			return nil, fmt.Errorf("resolve pos %s: %w", l.ref, err)
		default:
			sel = &domain.PosSelector{Token: pos.Token}
		}
	}
	return sel, nil
}

// dayRange converts inclusive calendar-day bounds into a half-open range.
// The time of day of either bound is ignored.
func (s *Service) dayRange(from, to *Date) *domain.TimeRange {
	if from == nil && to == nil {
		return nil
	}
	r := &domain.TimeRange{}
	if from != nil {
		start := from.day(s.loc)
		r.From = &start
	}
	if to != nil {
		end := to.day(s.loc).AddDate(0, 0, 1)
		r.Until = &end
	}
	return r
}

func (s *Service) startOfDay(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}
