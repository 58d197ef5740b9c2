package taxform

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// A VestedEntry is one vesting event from the salary certificate: on the
// vest date a number of shares of an award became the employee's property
// and therefore taxable income.
type VestedEntry struct {
	VestDate Date
	Shares   Quantity
}

func (e VestedEntry) When() Date      { return e.VestDate }
func (e VestedEntry) Units() Quantity { return e.Shares }

// An EsppEntry is one purchase from the employee stock purchase plan. The
// certificate identifies a purchase by its offering period (MMYYYY), not by
// a calendar day.
type EsppEntry struct {
	OffPeriod string // six digits, e.g. "062024"
	Shares    Quantity
}

// A Certificate holds everything extracted from the annex of the salary
// certificate: the vesting events of the year and the ESPP purchases.
type Certificate struct {
	Year   int // from the "Vested Stocks <year>" heading, 0 when absent
	Vested []VestedEntry
	ESPP   []EsppEntry
}

// Headings and line shapes of the certificate annex.
var (
	vestedHeadingRE = regexp.MustCompile(`Vested Stocks\s+(\d{4})`)
	dottedDateRE    = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
	offPeriodRE     = regexp.MustCompile(`^\d{6}$`)
)

const (
	sectionVested = "vested"
	sectionESPP   = "espp"
)

func certificateMarkers() []sectionMarker {
	return []sectionMarker{
		{name: sectionVested, match: vestedHeadingRE.MatchString},
		{name: sectionESPP, match: func(line string) bool { return strings.Contains(line, "ESPP") }},
	}
}

// ParseCertificate scans the text of the salary certificate annex for the
// vested stocks table and the ESPP purchase table. A missing section simply
// yields no entries: a year without vesting events still has a certificate,
// and not every employee is enrolled in the purchase plan.
func ParseCertificate(text string) *Certificate {
	cert := &Certificate{}
	for _, sec := range splitSections(strings.Split(text, "\n"), certificateMarkers()) {
		switch sec.name {
		case sectionVested:
			if m := vestedHeadingRE.FindStringSubmatch(sec.header); m != nil {
				cert.Year, _ = strconv.Atoi(m[1])
			}
			cert.Vested = parseVestedLines(sec.lines)
		case sectionESPP:
			cert.ESPP = parseEsppLines(sec.lines)
		}
	}
	return cert
}

// parseVestedLines reads the rows of the vested stocks table. A data row
// whitespace-splits into at least six columns with the vest date third and
// the released share count sixth. Column headings, the running totals and
// page decoration are skipped.
func parseVestedLines(lines []string) []VestedEntry {
	var entries []VestedEntry
	for _, line := range lines {
		if isVestedHeading(line) || isTotalLine(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 6 || !dottedDateRE.MatchString(fields[2]) {
			continue
		}
		day, err := ParseDate(fields[2])
		if err != nil {
			log.Printf("skipping vested row %q: %v", line, err)
			continue
		}
		shares, err := ParseQuantity(fields[5])
		if err != nil {
			log.Printf("skipping vested row %q: %v", line, err)
			continue
		}
		entries = append(entries, VestedEntry{VestDate: day, Shares: shares})
	}
	return entries
}

func isVestedHeading(line string) bool {
	return (strings.Contains(line, "Award") && strings.Contains(line, "Date")) ||
		strings.Contains(line, "Date Date Price")
}

// numberDecoration strips everything a printed total is decorated with, so
// that isTotalLine can test what remains.
var numberDecoration = strings.NewReplacer(".", "", "'", "", " ", "")

// isTotalLine reports whether the line is a running total: digits only, once
// the decimal dots, apostrophe separators and spaces are removed.
func isTotalLine(line string) bool {
	s := numberDecoration.Replace(line)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseEsppLines reads the rows of the ESPP purchase table. A data row
// starts with the six-digit offering period followed by the purchased share
// count. The table ends at the amount footer or the page number; the CHF
// conversion rows and column headings in between are skipped.
func parseEsppLines(lines []string) []EsppEntry {
	var entries []EsppEntry
	for _, line := range lines {
		if strings.Contains(line, "Total amount") || strings.Contains(line, "Page") {
			break
		}
		if isEsppHeading(line) || strings.HasPrefix(strings.TrimSpace(line), "CHF") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !offPeriodRE.MatchString(fields[0]) {
			continue
		}
		shares, err := ParseQuantity(fields[1])
		if err != nil {
			log.Printf("skipping purchase row %q: %v", line, err)
			continue
		}
		entries = append(entries, EsppEntry{OffPeriod: fields[0], Shares: shares})
	}
	return entries
}

func isEsppHeading(line string) bool {
	return (strings.Contains(line, "Off Period") && strings.Contains(line, "Purchased")) ||
		strings.Contains(line, "Shares Price")
}
