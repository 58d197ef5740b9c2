package taxform

import "testing"

// fidelityText mimics the text extracted from a brokerage transaction export:
// a heading block, one transaction row per sold lot, and footers.
const fidelityText = `Transaction Summary
Symbol: ACME ACME CORP
Date sold or transferred Date acquired Quantity Cost basis Proceeds Gain/loss
Jan-16-2024 Jun-01-2020 3.0000 $549.75 $1,175.99 + $626.24 USD DO
Jan-16-2024 Dec-15-2021 42.0000 $4,750.20 $16,463.16 + $11,712.96 USD DO
May-20-2024 Mar-01-2023 120.3210 $11,950.00 $47,160.03 + $35,210.03 USD SP
Dec-30-2024 Jun-01-2024 0.0260 $2.55 $2.43 - $0.12 USD SP
Order number: W1234567
Total 165.3470 $17,252.50 $64,801.61
`

func TestParseTransactions(t *testing.T) {
	txs := ParseTransactions(fidelityText)
	if len(txs) != 4 {
		t.Fatalf("got %d transactions, want 4: %v", len(txs), txs)
	}

	first := txs[0]
	if first.SellDate != MustParse("Jan-16-2024") {
		t.Errorf("SellDate = %v, want 16.01.2024", first.SellDate)
	}
	if first.AcquireDate != MustParse("Jun-01-2020") {
		t.Errorf("AcquireDate = %v, want 01.06.2020", first.AcquireDate)
	}
	if !first.Quantity.Equal(Q(3.0)) {
		t.Errorf("Quantity = %v, want 3", first.Quantity)
	}
	if !first.CostBasis.Equal(M(549.75, "USD")) {
		t.Errorf("CostBasis = %v, want $549.75", first.CostBasis)
	}
	if !first.Proceeds.Equal(M(1175.99, "USD")) {
		t.Errorf("Proceeds = %v, want $1,175.99", first.Proceeds)
	}
	if !first.Gain.Equal(M(626.24, "USD")) {
		t.Errorf("Gain = %v, want $626.24", first.Gain)
	}

	// The loss row carries its sign.
	loss := txs[3]
	if !loss.Gain.Equal(M(-0.12, "USD")) {
		t.Errorf("Gain = %v, want -$0.12", loss.Gain)
	}
	if !loss.Quantity.Equal(Q(0.026)) {
		t.Errorf("Quantity = %v, want 0.026", loss.Quantity)
	}
}

// A row the page layout broke after the cost basis column still yields its
// dates and share count.
func TestParseTransactionsPartialRow(t *testing.T) {
	txs := ParseTransactions("Feb-01-2024 Jan-10-2022 5.0000 $500.00\n")
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	tx := txs[0]
	if !tx.Quantity.Equal(Q(5.0)) {
		t.Errorf("Quantity = %v, want 5", tx.Quantity)
	}
	if !tx.CostBasis.Equal(M(500.0, "USD")) {
		t.Errorf("CostBasis = %v, want $500.00", tx.CostBasis)
	}
	if !tx.Proceeds.IsZero() || !tx.Gain.IsZero() {
		t.Errorf("Proceeds = %v, Gain = %v, want zero values", tx.Proceeds, tx.Gain)
	}
}

// Rows with an invalid month abbreviation are reported and skipped, not
// half-read.
func TestParseTransactionsBadDate(t *testing.T) {
	txs := ParseTransactions("Foo-16-2024 Jun-01-2020 3.0000 $549.75\n")
	if len(txs) != 0 {
		t.Fatalf("got %d transactions, want 0: %v", len(txs), txs)
	}
}

func TestParseTransactionsEmptyDocument(t *testing.T) {
	if txs := ParseTransactions("Transaction Summary\nno rows here\n"); len(txs) != 0 {
		t.Errorf("got %d transactions from a rowless document", len(txs))
	}
}
