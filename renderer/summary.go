package renderer

import (
	"bytes"
	"fmt"

	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the bottom line of both documents: shares that
// came in, shares that went out, and the resulting net position.
func SummaryMarkdown(s *taxform.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Summary"
	if s.Year != 0 {
		title = fmt.Sprintf("Summary %d", s.Year)
	}
	doc.H1(title)

	netLabel := "Net Position (Remaining)"
	net := s.Net()
	if s.Oversold() {
		netLabel = "Net Position (Oversold)"
		net = net.Abs()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Position", "Shares"},
		Rows: [][]string{
			{"Total Vested Shares", s.TotalVested.StringFixed(3)},
			{"Total Purchased Shares (ESPP)", s.TotalPurchased.StringFixed(3)},
			{md.Bold("Total Owned Shares"), md.Bold(s.Owned().StringFixed(3))},
			{"Total Sold Shares", s.TotalSold.StringFixed(3)},
			{md.Bold(netLabel), md.Bold(net.StringFixed(3))},
		},
	})

	if s.Oversold() {
		doc.PlainText("More shares were sold than vested and purchased in this period; the difference usually comes from lots vested in earlier years.")
	}

	return doc.String()
}
