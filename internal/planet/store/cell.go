package store

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/entity"
)

// ErrMalformed is returned when the dataset file cannot be decoded into records.
var ErrMalformed = errors.New("malformed dataset")

// Cells spelled like this are missing data and decode to null.
//
//nolint:gochecknoglobals // lookup table
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

//nolint:gochecknoglobals // compiled once
var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// parseCell types a raw cell: null markers, then int64, then finite decimal
// floats. Anything else stays a string with its original spacing.
func parseCell(raw string) entity.Value {
	if _, ok := naValues[raw]; ok {
		return entity.Null()
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return entity.Null()
	}

	if intPattern.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return entity.Integer(n)
		}
	}

	if floatPattern.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return entity.Float(f)
		}
	}

	return entity.String(raw)
}

// normalizeHeaders strips a UTF-8 BOM, names blank columns "Unnamed: i" and
// suffixes repeated names with ".1", ".2", ... so every column is addressable.
func normalizeHeaders(raw []string) ([]string, error) {
	headers := make([]string, len(raw))
	used := make(map[string]struct{}, len(raw))
	counts := make(map[string]int, len(raw))

	for i, name := range raw {
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("%w: header %d is not valid UTF-8", ErrMalformed, i)
		}
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		unique := name
		for {
			if _, taken := used[unique]; !taken {
				break
			}
			counts[name]++
			unique = fmt.Sprintf("%s.%d", name, counts[name])
		}

		used[unique] = struct{}{}
		headers[i] = unique
	}

	return headers, nil
}

// rowBuilder turns raw rows into records that share one header set.
type rowBuilder struct {
	columns []string
	records []entity.Record
}

func newRowBuilder(header []string) (*rowBuilder, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}

	columns, err := normalizeHeaders(header)
	if err != nil {
		return nil, err
	}

	return &rowBuilder{columns: columns}, nil
}

// add appends one row. line is only used for error messages.
func (b *rowBuilder) add(line int, cells []string) error {
	if len(cells) > len(b.columns) {
		return fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformed, line, len(cells), len(b.columns))
	}

	rec := make(entity.Record, len(b.columns))
	for i, name := range b.columns {
		value := entity.Null()
		if i < len(cells) {
			if !utf8.ValidString(cells[i]) {
				return fmt.Errorf("%w: line %d field %q is not valid UTF-8", ErrMalformed, line, name)
			}
			value = parseCell(cells[i])
		}
		rec[i] = entity.Field{Name: name, Value: value}
	}

	b.records = append(b.records, rec)

	return nil
}

func (b *rowBuilder) dataset() entity.Dataset {
	return entity.Dataset{Columns: b.columns, Records: b.records}
}
