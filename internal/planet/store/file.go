package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/entity"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// File loads the dataset from a file on local disk. Nothing is cached: every
// Load opens, decodes and closes the file again.
type File struct {
	path   string
	sheet  string
	format Format
}

// NewFile picks the decoder from the file extension. ".xlsx" reads a
// spreadsheet (sheet, or the first one when empty); everything else is read
// as comma-separated text.
func NewFile(path, sheet string) *File {
	format := FormatCSV
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		format = FormatXLSX
	}

	return &File{path: path, sheet: sheet, format: format}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Format() Format {
	return f.format
}

func (f *File) Load(ctx context.Context) (entity.Dataset, error) {
	if f.format == FormatXLSX {
		return f.loadXLSX(ctx)
	}

	file, err := os.Open(f.path)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("open dataset %q: %w", f.path, err)
	}
	defer file.Close()

	return decodeCSV(ctx, file)
}

func decodeCSV(ctx context.Context, r io.Reader) (entity.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return entity.Dataset{}, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	if err != nil {
		return entity.Dataset{}, csvErr(err)
	}

	builder, err := newRowBuilder(header)
	if err != nil {
		return entity.Dataset{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.Dataset{}, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return entity.Dataset{}, csvErr(err)
		}

		line, _ := reader.FieldPos(0)
		if err := builder.add(line, record); err != nil {
			return entity.Dataset{}, err
		}
	}

	return builder.dataset(), nil
}

func csvErr(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %v", ErrMalformed, perr)
	}
	return fmt.Errorf("read dataset: %w", err)
}

func (f *File) loadXLSX(ctx context.Context) (entity.Dataset, error) {
	book, err := excelize.OpenFile(f.path)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("open dataset %q: %w", f.path, err)
	}
	defer book.Close()

	sheet := f.sheet
	if sheet == "" {
		sheet = book.GetSheetName(0)
	}

	rows, err := book.Rows(sheet)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("%w: sheet %q: %v", ErrMalformed, sheet, err)
	}
	defer rows.Close()

	var builder *rowBuilder
	line := 0
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return entity.Dataset{}, err
		}

		line++
		cells, err := rows.Columns()
		if err != nil {
			return entity.Dataset{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		if len(cells) == 0 {
			continue
		}

		if builder == nil {
			if builder, err = newRowBuilder(cells); err != nil {
				return entity.Dataset{}, err
			}
			continue
		}

		if err := builder.add(line, cells); err != nil {
			return entity.Dataset{}, err
		}
	}
	if err := rows.Error(); err != nil {
		return entity.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	if builder == nil {
		return entity.Dataset{}, fmt.Errorf("%w: missing header row", ErrMalformed)
	}

	return builder.dataset(), nil
}
