// Package taxform extracts the stock figures a Swiss tax declaration needs
// from the two documents an employee share plan produces every year: the
// salary certificate annex listing vested awards and ESPP purchases, and the
// brokerage transaction export listing sold shares.
//
// The core functionalities include:
//   - Document Parsing: Scanning the plain-text content of both documents
//     for the lines that carry transactions, tolerating the page furniture
//     (headers, footers, running totals) that PDF extraction leaves behind.
//   - Date Normalization: Reading the dotted European dates of the
//     certificate and the month-abbreviated dates of the brokerage export
//     into a single day-granularity Date type.
//   - Aggregation: Grouping transactions that share a calendar date and
//     summing their share quantities with exact decimal arithmetic, so the
//     figures can be transcribed line by line into the tax form.
//   - Reporting: Turning the extracted entries into vested, sold and summary
//     reports, including the net position check that flags an oversold
//     balance.
//
// This package serves as the foundational logic for the `stf` command-line
// tool; it never writes anything, all state lives in the input documents.
package taxform
