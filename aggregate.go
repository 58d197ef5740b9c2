package taxform

import "slices"

// DatedQuantity is the view of a transaction the aggregator needs: the day
// it happened and how many shares it moved.
type DatedQuantity interface {
	When() Date
	Units() Quantity
}

// An AggregatedRecord is the sum of every transaction sharing one calendar
// date. The tax form wants one line per date, not one per award or lot.
type AggregatedRecord struct {
	Date     Date
	Quantity Quantity
	Count    int // transactions merged into this record
}

// AggregateByDate groups transactions by calendar date, sums their share
// quantities exactly, and returns the records in chronological order.
func AggregateByDate[T DatedQuantity](txs []T) []AggregatedRecord {
	byDate := make(map[Date]AggregatedRecord, len(txs))
	for _, tx := range txs {
		rec := byDate[tx.When()]
		rec.Date = tx.When()
		rec.Quantity = rec.Quantity.Add(tx.Units())
		rec.Count++
		byDate[tx.When()] = rec
	}
	records := make([]AggregatedRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b AggregatedRecord) int { return a.Date.Compare(b.Date) })
	return records
}

// Total sums the share quantities of all transactions.
func Total[T DatedQuantity](txs []T) Quantity {
	var total Quantity
	for _, tx := range txs {
		total = total.Add(tx.Units())
	}
	return total
}
