// Package bank reads bank statement CSV exports into movements.
package bank

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	enc "github.com/MrJamesThe3rd/condo/internal/encoding"
)

var ErrUnknownFormat = errors.New("UNKNOWN_STATEMENT_FORMAT")

// Movement is one statement line. Amount is always positive; Type says
// whether money came in (income) or left (expense). Row is the line of the
// file it was read from.
type Movement struct {
	Row         int
	Date        time.Time
	Description string
	Reference   string
	Amount      decimal.Decimal
	Type        category.Type
}

// Parser auto-detects the export layout by matching header names against
// known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Movement, error) {
	utf8r, _, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := readRecords(reader)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("%w: expected columns for %s", ErrUnknownFormat, profileNames())
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// record is a CSV row with the file line it started on. Blank lines are
// skipped by the reader, so the index alone does not give the line.
type record struct {
	line  int
	cells []string
}

func readRecords(r *csv.Reader) ([]record, error) {
	var out []record

	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		line, _ := r.FieldPos(0)
		out = append(out, record{line: line, cells: cells})
	}
}

// detectDelimiter prefers ';' when the first non-empty line uses it.
func detectDelimiter(data []byte) rune {
	for line := range strings.Lines(string(data)) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Count(line, ";") > strings.Count(line, ",") {
			return ';'
		}

		return ','
	}

	return ','
}

// colIndex maps upper-cased column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows []record) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row.cells {
			name := strings.ToUpper(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func profileNames() string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}

	return strings.Join(names, ", ")
}

// parseRows extracts movements; rows without a parseable date or amount are
// footers or balances and are skipped.
func parseRows(p *Profile, cols colIndex, rows []record) ([]Movement, error) {
	refIdx := -1
	if i, ok := cols[p.RefCol]; ok {
		refIdx = i
	}

	var movements []Movement

	for _, rec := range rows {
		row, rowNum := rec.cells, rec.line

		date, ok := parseDate(cellValue(row, cols[p.DateCol]))
		if !ok {
			continue
		}

		amount, txType, ok := rowAmount(p, cols, row)
		if !ok {
			continue
		}

		desc := cellValue(row, cols[p.DescCol])
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		movements = append(movements, Movement{
			Row:         rowNum,
			Date:        date,
			Description: desc,
			Reference:   cellValue(row, refIdx),
			Amount:      amount,
			Type:        txType,
		})
	}

	return movements, nil
}

func rowAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, category.Type, bool) {
	switch p.AmountMode {
	case amountSingle:
		d, ok := cellAmount(row, cols[p.AmountCol])
		if !ok {
			return decimal.Zero, "", false
		}

		if d.IsNegative() {
			return d.Neg(), category.TypeExpense, true
		}

		return d, category.TypeIncome, true
	case amountSplit:
		if d, ok := cellAmount(row, cols[p.DebitCol]); ok {
			return d.Abs(), category.TypeExpense, true
		}

		if d, ok := cellAmount(row, cols[p.CreditCol]); ok {
			return d.Abs(), category.TypeIncome, true
		}
	}

	return decimal.Zero, "", false
}

func cellAmount(row []string, idx int) (decimal.Decimal, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := parseAmount(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}

	return d, true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
