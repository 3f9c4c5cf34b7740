package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column names of the tabular format.
const (
	ColumnDay  = "Day"
	ColumnDate = "Date"
)

// Boolean tokens written by Serialize.
const (
	TokenTrue  = "TRUE"
	TokenFalse = "FALSE"
)

// trueTokens is the complete coercion table for flag cells. Any other value,
// including empty cells and "FALSE", reads as false.
var trueTokens = map[string]bool{
	"TRUE": true,
	"True": true,
	"true": true,
}

// ParseFlag coerces a cell value to a check-in state.
func ParseFlag(cell string) bool {
	return trueTokens[strings.TrimSpace(cell)]
}

// FormatFlag renders a check-in state as a cell value.
func FormatFlag(v bool) string {
	if v {
		return TokenTrue
	}
	return TokenFalse
}

// Header returns the header row: Day, Date, then the platforms in order.
func Header() []string {
	return append([]string{ColumnDay, ColumnDate}, PlatformNames()...)
}

// Serialize renders the table as a header row followed by 30 data rows.
func Serialize(t Table) [][]string {
	rows := make([][]string, 0, ChallengeDays+1)
	rows = append(rows, Header())
	for _, rec := range t.Days {
		row := make([]string, 0, PlatformCount+2)
		row = append(row, strconv.Itoa(rec.Day), rec.Date.Format(DateLayout))
		for _, done := range rec.Flags {
			row = append(row, FormatFlag(done))
		}
		rows = append(rows, row)
	}
	return rows
}

// Parse builds a table from tabular rows whose first row is the header.
// Unknown columns are ignored and missing platform columns read as false.
func Parse(rows [][]string) (Table, error) {
	var t Table
	if len(rows) == 0 {
		return t, fmt.Errorf("%w: no header row", ErrFormat)
	}

	dayCol, dateCol := -1, -1
	platformCols := make(map[Platform]int, PlatformCount)
	for i, name := range rows[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch name {
		case ColumnDay:
			dayCol = i
		case ColumnDate:
			dateCol = i
		default:
			if p, err := ParsePlatform(name); err == nil {
				platformCols[p] = i
			}
		}
	}
	if dayCol < 0 {
		return t, fmt.Errorf("%w: missing %q column", ErrFormat, ColumnDay)
	}
	if dateCol < 0 {
		return t, fmt.Errorf("%w: missing %q column", ErrFormat, ColumnDate)
	}

	var seen [ChallengeDays]bool
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := n + 2
		day, err := strconv.Atoi(strings.TrimSpace(cell(row, dayCol)))
		if err != nil || day < 1 || day > ChallengeDays {
			return Table{}, fmt.Errorf("%w: row %d: invalid day %q", ErrFormat, line, cell(row, dayCol))
		}
		if seen[day-1] {
			return Table{}, fmt.Errorf("%w: row %d: duplicate day %d", ErrFormat, line, day)
		}
		seen[day-1] = true

		date, err := time.Parse(DateLayout, strings.TrimSpace(cell(row, dateCol)))
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %d: invalid date %q", ErrFormat, line, cell(row, dateCol))
		}

		rec := DayRecord{Day: day, Date: date}
		for p, col := range platformCols {
			rec.Flags[p] = ParseFlag(cell(row, col))
		}
		t.Days[day-1] = rec
	}

	for i, ok := range seen {
		if !ok {
			return Table{}, fmt.Errorf("%w: missing day %d", ErrFormat, i+1)
		}
	}
	first := t.Days[0].Date
	for i := 1; i < ChallengeDays; i++ {
		if want := first.AddDate(0, 0, i); !t.Days[i].Date.Equal(want) {
			return Table{}, fmt.Errorf("%w: day %d dated %s, want %s", ErrFormat,
				i+1, t.Days[i].Date.Format(DateLayout), want.Format(DateLayout))
		}
	}
	return t, nil
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
