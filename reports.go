package taxform

// A VestedReport gathers what the tax form needs from the salary
// certificate: the vesting events aggregated by date, the ESPP purchases,
// and their totals.
type VestedReport struct {
	Year           int
	Entries        []VestedEntry
	ByDate         []AggregatedRecord
	TotalVested    Quantity
	Purchases      []EsppEntry
	TotalPurchased Quantity
}

// NewVestedReport aggregates a parsed certificate into a report.
func NewVestedReport(cert *Certificate) *VestedReport {
	r := &VestedReport{
		Year:        cert.Year,
		Entries:     cert.Vested,
		ByDate:      AggregateByDate(cert.Vested),
		TotalVested: Total(cert.Vested),
		Purchases:   cert.ESPP,
	}
	for _, p := range cert.ESPP {
		r.TotalPurchased = r.TotalPurchased.Add(p.Shares)
	}
	return r
}

// A SoldReport gathers the sold lots of the brokerage export, aggregated by
// sell date.
type SoldReport struct {
	Transactions  []SoldTransaction
	ByDate        []AggregatedRecord
	TotalSold     Quantity
	TotalProceeds Money
	TotalGain     Money
	From, To      Date // span of sell dates, zero when there are none
}

// NewSoldReport aggregates the export's transactions into a report.
func NewSoldReport(txs []SoldTransaction) *SoldReport {
	r := &SoldReport{
		Transactions: txs,
		ByDate:       AggregateByDate(txs),
		TotalSold:    Total(txs),
	}
	for _, tx := range txs {
		r.TotalProceeds = r.TotalProceeds.Add(tx.Proceeds)
		r.TotalGain = r.TotalGain.Add(tx.Gain)
	}
	if len(r.ByDate) > 0 {
		r.From = r.ByDate[0].Date
		r.To = r.ByDate[len(r.ByDate)-1].Date
	}
	return r
}

// A Summary is the bottom line of the declaration: how many shares came in,
// how many went out, and whether the two documents agree.
type Summary struct {
	Year           int
	TotalVested    Quantity
	TotalPurchased Quantity
	TotalSold      Quantity
}

// NewSummary combines both reports. Either may be nil when its document was
// skipped; the corresponding totals stay zero.
func NewSummary(vested *VestedReport, sold *SoldReport) *Summary {
	s := &Summary{}
	if vested != nil {
		s.Year = vested.Year
		s.TotalVested = vested.TotalVested
		s.TotalPurchased = vested.TotalPurchased
	}
	if sold != nil {
		s.TotalSold = sold.TotalSold
	}
	return s
}

// Owned returns the shares that entered the account: vested plus purchased.
func (s *Summary) Owned() Quantity { return s.TotalVested.Add(s.TotalPurchased) }

// Net returns the position left after sales. A negative net means the
// export sold more shares than the certificate accounts for, usually
// because the lots vested in earlier years.
func (s *Summary) Net() Quantity { return s.Owned().Sub(s.TotalSold) }

// Oversold reports whether the net position is negative.
func (s *Summary) Oversold() bool { return s.Net().IsNegative() }
