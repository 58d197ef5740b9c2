package taxform

import (
	"log"
	"regexp"
	"strings"
)

// A SoldTransaction is one row of the brokerage transaction export: a lot
// acquired on one day, sold on another, with the amounts the broker settled.
type SoldTransaction struct {
	SellDate    Date
	AcquireDate Date
	Quantity    Quantity
	CostBasis   Money
	Proceeds    Money
	Gain        Money
}

func (t SoldTransaction) When() Date      { return t.SellDate }
func (t SoldTransaction) Units() Quantity { return t.Quantity }

// soldLineRE matches one transaction row of the brokerage export, e.g.
//
//	Jan-16-2024 Jun-01-2020 3.0000 $549.75 $1,175.99 + $626.24 USD DO
//
// The sell and acquisition dates come first, then the quantity and the cost
// basis. Proceeds, the signed gain and the currency code are optional, so a
// row the page layout broke apart still yields its date and share count.
var soldLineRE = regexp.MustCompile(`(\w{3}-\d{2}-\d{4})\s+(\w{3}-\d{2}-\d{4})\s+([\d.]+)\s+\$([\d,.]+)(?:\s+\$([\d,.]+)\s+([-+])\s+\$([\d,.]+)(?:\s+([A-Z]{3}))?)?`)

// ParseTransactions scans the text of the brokerage transaction export for
// sold lots. Lines that do not have the row shape (headings, footers, order
// numbers, running totals) are ignored.
func ParseTransactions(text string) []SoldTransaction {
	var txs []SoldTransaction
	for _, line := range strings.Split(text, "\n") {
		m := soldLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		sold, err := ParseDate(m[1])
		if err != nil {
			log.Printf("skipping transaction row %q: %v", line, err)
			continue
		}
		acquired, err := ParseDate(m[2])
		if err != nil {
			log.Printf("skipping transaction row %q: %v", line, err)
			continue
		}
		quantity, err := ParseQuantity(m[3])
		if err != nil {
			log.Printf("skipping transaction row %q: %v", line, err)
			continue
		}

		tx := SoldTransaction{SellDate: sold, AcquireDate: acquired, Quantity: quantity}
		currency := m[8]
		if currency == "" {
			currency = "USD"
		}
		// The amount columns are best effort: a row that lost them to the
		// page layout still counts its shares.
		tx.CostBasis, _ = ParseMoney(m[4], currency)
		if m[5] != "" {
			tx.Proceeds, _ = ParseMoney(m[5], currency)
			tx.Gain, _ = ParseMoney(m[7], currency)
			if m[6] == "-" {
				tx.Gain = tx.Gain.Neg()
			}
		}
		txs = append(txs, tx)
	}
	return txs
}
