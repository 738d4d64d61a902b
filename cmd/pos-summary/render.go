package main

import (
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var baseColumns = []string{
	domain.SummaryCount,
	domain.SummaryCashAmount,
	domain.SummaryMobileAmount,
	domain.SummaryTotalAmount,
}

// columnKeys orders the base columns first, then payment types by key.
func columnKeys(columns map[string]string) []string {
	keys := slices.Clone(baseColumns)
	var extra []string
	for k := range columns {
		if !slices.Contains(baseColumns, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

func render(w io.Writer, summary *domain.GroupSummary) error {
	keys := columnKeys(summary.Columns)

	header := []any{"paid date"}
	for _, k := range keys {
		label := summary.Columns[k]
		if label == "" {
			label = k
		}
		header = append(header, label)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, amount := range summary.Amounts {
		row := []string{amount.PaidDate}
		for _, k := range keys {
			row = append(row, strconv.FormatFloat(amount.Values[k], 'f', -1, 64))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
