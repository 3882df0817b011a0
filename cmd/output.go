package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vibast-solutions/ms-go-website/app/service"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type quoteRow struct {
	Plan     string `json:"plan" yaml:"plan"`
	Cycle    string `json:"cycle" yaml:"cycle"`
	PerMonth int64  `json:"per_month" yaml:"per_month"`
	Price    string `json:"price" yaml:"price"`
	Savings  string `json:"savings,omitempty" yaml:"savings,omitempty"`
	Popular  bool   `json:"popular" yaml:"popular"`
}

func quoteRows(quotes []service.PlanQuote) []quoteRow {
	rows := make([]quoteRow, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, quoteRow{
			Plan:     q.Plan.Name,
			Cycle:    string(q.Cycle),
			PerMonth: q.DisplayedPrice,
			Price:    q.FormattedPrice,
			Savings:  q.SavingsLabel,
			Popular:  q.Plan.Popular,
		})
	}
	return rows
}

func writeQuotes(w io.Writer, format string, rows []quoteRow) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "", outputTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PLAN\tCYCLE\tPRICE/MONTH\tSAVINGS\tPOPULAR")
		for _, row := range rows {
			savings := row.Savings
			if savings == "" {
				savings = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", row.Plan, row.Cycle, row.Price, savings, row.Popular)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
