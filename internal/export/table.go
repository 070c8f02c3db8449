package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/katalvlaran/fdcomp/drainage"
)

// ErrUnknownFormat indicates a file extension with no table codec.
var ErrUnknownFormat = errors.New("export: unknown table format")

// TableHeader names the path table columns in row order.
var TableHeader = []string{
	"terminus_row", "terminus_col", "origin_row", "origin_col",
	"cells", "accumulation", "length_m",
}

const sheetName = "paths"

// WriteTable writes t to path, choosing CSV or XLSX from the extension.
func WriteTable(path string, t drainage.PathTable) error {
	switch ext(path) {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err = WriteTableCSV(f, t); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return WriteTableXLSX(path, t)
	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// ReadTable reads a path table written by WriteTable.
func ReadTable(path string) (drainage.PathTable, error) {
	switch ext(path) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadTableCSV(f)
	case ".xlsx":
		return ReadTableXLSX(path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// WriteTableCSV writes a header line and one line per path.
func WriteTableCSV(w io.Writer, t drainage.PathTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableHeader); err != nil {
		return err
	}
	line := make([]string, drainage.TableColumns)
	for _, p := range t {
		for i, v := range p.Row() {
			line[i] = strconv.FormatUint(uint64(v), 10)
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadTableCSV parses a path table. A leading header line is skipped; rows
// need at least the four cell columns.
func ReadTableCSV(r io.Reader) (drainage.PathTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}

	rows := make([][]uint32, 0, len(records))
	for n, rec := range records {
		row := make([]uint32, len(rec))
		for i, s := range rec {
			v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("export: row %d column %d: %w", n+1, i+1, err)
			}
			row[i] = uint32(v)
		}
		rows = append(rows, row)
	}

	return drainage.TableFromRows(rows)
}

// WriteTableXLSX saves t as a single-sheet workbook.
func WriteTableXLSX(path string, t drainage.PathTable) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return err
	}
	head := sheet.AddRow()
	for _, name := range TableHeader {
		head.AddCell().SetString(name)
	}
	for _, p := range t {
		row := sheet.AddRow()
		for _, v := range p.Row() {
			row.AddCell().SetInt(int(v))
		}
	}

	return file.Save(path)
}

// ReadTableXLSX reads the first sheet of a workbook written by WriteTableXLSX.
func ReadTableXLSX(path string) (drainage.PathTable, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if len(file.Sheets) == 0 {
		return drainage.PathTable{}, nil
	}

	var rows [][]uint32
	for n, r := range file.Sheets[0].Rows {
		if n == 0 && len(r.Cells) > 0 && r.Cells[0].Value == TableHeader[0] {
			continue
		}
		row := make([]uint32, len(r.Cells))
		for i, c := range r.Cells {
			v, err := c.Int()
			if err != nil || v < 0 {
				return nil, fmt.Errorf("export: %s row %d column %d: %q", path, n+1, i+1, c.Value)
			}
			row[i] = uint32(v)
		}
		rows = append(rows, row)
	}

	return drainage.TableFromRows(rows)
}

// WriteScoresCSV writes one line per path: its id, cell span and score.
func WriteScoresCSV(w io.Writer, t drainage.PathTable, scores []float64) error {
	if len(scores) != len(t) {
		return fmt.Errorf("export: %d scores for %d paths", len(scores), len(t))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "terminus", "origin", "cells", "score"}); err != nil {
		return err
	}
	for i, p := range t {
		err := cw.Write([]string{
			strconv.Itoa(i + 1),
			p.Terminus.String(),
			p.Origin.String(),
			strconv.FormatUint(uint64(p.Cells), 10),
			strconv.FormatFloat(scores[i], 'f', 6, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseUint(strings.TrimSpace(rec[0]), 10, 32)

	return err != nil
}
