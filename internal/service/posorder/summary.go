package posorder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// Summary sums order amounts over the whole filter and adds one column per
// payment type, named by its POS title or, without one, its raw type.
func (s *Service) Summary(ctx context.Context, in FilterInput) (domain.SummaryRow, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	f, err := s.buildFilter(ctx, in)
	if err != nil {
		return nil, err
	}

	totals, payments, err := s.summaryPasses(ctx, f, domain.GroupFieldNone)
	if err != nil {
		return nil, fmt.Errorf("pos orders summary: %w", err)
	}

	row := domain.NewSummaryRow()
	for _, t := range totals {
		addTotals(row, t)
	}
	for _, p := range payments {
		row.Add(paymentLabel(p), p.Amount)
	}
	return row, nil
}

// GroupSummary sums order amounts per paid-date bucket. Payment type columns
// are keyed by type; Columns maps every key to its display label.
func (s *Service) GroupSummary(ctx context.Context, in GroupSummaryInput) (*domain.GroupSummary, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	f, err := s.buildFilter(ctx, in.FilterInput)
	if err != nil {
		return nil, err
	}

	group := domain.GroupField(in.GroupField)
	totals, payments, err := s.summaryPasses(ctx, f, group)
	if err != nil {
		return nil, fmt.Errorf("pos orders group summary: %w", err)
	}

	return s.reduceGroups(ctx, totals, payments), nil
}

// summaryPasses runs the amount and payment aggregations concurrently.
func (s *Service) summaryPasses(
	ctx context.Context,
	f domain.OrderFilter,
	group domain.GroupField,
) (totals []domain.AmountTotals, payments []domain.PaymentTotals, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.orders.AmountTotals(gctx, f, group)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.orders.PaymentTotals(gctx, f, group)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return totals, payments, nil
}

// reduceGroups pivots both passes into rows sorted by bucket key. A payment
// bucket with no matching amount bucket gets an all-zero row and is logged,
// since both passes are expected to produce the same keys.
func (s *Service) reduceGroups(ctx context.Context, totals []domain.AmountTotals, payments []domain.PaymentTotals) *domain.GroupSummary {
	buckets := make(map[string]domain.SummaryRow, len(totals))
	for _, t := range totals {
		row, ok := buckets[t.Group]
		if !ok {
			row = domain.NewSummaryRow()
			buckets[t.Group] = row
		}
		addTotals(row, t)
	}

	columns := domain.BaseSummaryColumns()
	for _, p := range payments {
		row, ok := buckets[p.Group]
		if !ok {
			s.log.WarnContext(ctx, "payment bucket without order totals",
				slog.String("bucket", p.Group),
				slog.String("payment_type", p.Type),
			)
			row = domain.NewSummaryRow()
			buckets[p.Group] = row
		}
		row.Add(p.Type, p.Amount)
		columns[p.Type] = paymentLabel(p)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	amounts := make([]domain.GroupAmount, 0, len(keys))
	for _, k := range keys {
		amounts = append(amounts, domain.GroupAmount{PaidDate: k, Values: buckets[k]})
	}
	return &domain.GroupSummary{Amounts: amounts, Columns: columns}
}

func addTotals(row domain.SummaryRow, t domain.AmountTotals) {
	row.Add(domain.SummaryCashAmount, t.CashAmount)
	row.Add(domain.SummaryMobileAmount, t.MobileAmount)
	row.Add(domain.SummaryTotalAmount, t.TotalAmount)
	row.Add(domain.SummaryCount, t.Count)
}

func paymentLabel(p domain.PaymentTotals) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Type
}
