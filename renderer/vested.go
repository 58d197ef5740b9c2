package renderer

import (
	"bytes"
	"fmt"

	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	md "github.com/nao1215/markdown"
)

// VestedMarkdown renders the salary certificate report: vesting events
// aggregated by date, then the ESPP purchases, each with the totals the tax
// form asks for. With individual set, the per-award rows are printed too.
func VestedMarkdown(r *taxform.VestedReport, individual bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Vested Stocks"
	if r.Year != 0 {
		title = fmt.Sprintf("Vested Stocks %d", r.Year)
	}
	doc.H1(title)

	if len(r.Entries) == 0 {
		doc.PlainText("No vested stocks found.")
	} else {
		if individual {
			doc.H2("Individual Vestings")
			table := md.TableSet{
				Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
				Header:    []string{"Vest Date", "Shares"},
			}
			for _, e := range r.Entries {
				table.Rows = append(table.Rows, []string{e.VestDate.String(), e.Shares.StringFixed(3)})
			}
			doc.Table(table)
		}

		doc.H2("Aggregated by Vest Date")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Vest Date", "Shares", "Vestings"},
		}
		for _, rec := range r.ByDate {
			table.Rows = append(table.Rows, []string{
				rec.Date.String(),
				rec.Quantity.StringFixed(3),
				fmt.Sprintf("%d", rec.Count),
			})
		}
		doc.Table(table)

		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header: []string{
				md.Bold("Total Vested Shares"),
				md.Bold(r.TotalVested.StringFixed(3)),
			},
			Rows: [][]string{
				{"Vesting Days", fmt.Sprintf("%d", len(r.ByDate))},
				{"Vesting Events", fmt.Sprintf("%d", len(r.Entries))},
			},
		})
	}

	doc.H2("ESPP Purchases")
	if len(r.Purchases) == 0 {
		doc.PlainText("No ESPP purchases found.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Offering Period", "Shares"},
		}
		for _, p := range r.Purchases {
			table.Rows = append(table.Rows, []string{offPeriod(p.OffPeriod), p.Shares.StringFixed(4)})
		}
		doc.Table(table)

		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header: []string{
				md.Bold("Total Purchased Shares"),
				md.Bold(r.TotalPurchased.StringFixed(4)),
			},
		})
	}

	return doc.String()
}

// offPeriod makes the six-digit offering period readable: "062024" prints as
// "06/2024".
func offPeriod(p string) string {
	if len(p) != 6 {
		return p
	}
	return p[:2] + "/" + p[2:]
}
