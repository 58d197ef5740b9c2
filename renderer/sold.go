package renderer

import (
	"bytes"
	"fmt"

	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	md "github.com/nao1215/markdown"
)

// SoldMarkdown renders the brokerage export report: sold lots aggregated by
// sell date, with the share, proceeds and gain totals. With individual set,
// the per-lot rows are printed too.
func SoldMarkdown(r *taxform.SoldReport, individual bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(soldTitle(r))

	if len(r.Transactions) == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}

	if individual {
		doc.H2("Individual Transactions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{"Sell Date", "Acquired", "Shares", "Cost Basis", "Proceeds", "Gain"},
		}
		for _, tx := range r.Transactions {
			table.Rows = append(table.Rows, []string{
				tx.SellDate.String(),
				tx.AcquireDate.String(),
				tx.Quantity.StringFixed(4),
				amount(tx.CostBasis),
				amount(tx.Proceeds),
				tx.Gain.SignedString(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Aggregated by Sell Date")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Sell Date", "Shares", "Transactions"},
	}
	for _, rec := range r.ByDate {
		table.Rows = append(table.Rows, []string{
			rec.Date.String(),
			rec.Quantity.StringFixed(4),
			fmt.Sprintf("%d", rec.Count),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold("Total Sold Shares"),
			md.Bold(r.TotalSold.StringFixed(4)),
		},
		Rows: [][]string{
			{"Selling Days", fmt.Sprintf("%d", len(r.ByDate))},
			{"Individual Transactions", fmt.Sprintf("%d", len(r.Transactions))},
			{"Total Proceeds", amount(r.TotalProceeds)},
			{"Total Gain", r.TotalGain.SignedString()},
		},
	})

	return doc.String()
}

// soldTitle names the report after the year the sales span. Sales usually
// fall in a single tax year, but the export is cut by hand and may not.
func soldTitle(r *taxform.SoldReport) string {
	switch {
	case r.From.IsZero():
		return "Sold Shares"
	case r.From.Year() == r.To.Year():
		return fmt.Sprintf("Sold Shares %d", r.From.Year())
	default:
		return fmt.Sprintf("Sold Shares %d-%d", r.From.Year(), r.To.Year())
	}
}

// amount renders a money column, with a placeholder for rows the page layout
// broke apart.
func amount(m taxform.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}
