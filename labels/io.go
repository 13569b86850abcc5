package labels

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ParseRowFiles reads every input file and concatenates their rows in
// submission order. Any unreadable file fails the whole batch; no partial
// result is returned.
func ParseRowFiles(paths []string) ([]Row, error) {
	var combined []Row
	for _, path := range paths {
		rows, err := ParseRowFile(path)
		if err != nil {
			return nil, err
		}
		combined = append(combined, rows...)
	}
	return combined, nil
}

// ParseRowFile reads a single CSV/TSV/XLSX file into header-keyed rows.
func ParseRowFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return ParseRowData(filepath.Base(path), data)
}

// ParseRowData parses an in-memory file; name selects the format by
// extension. The GUI feeds it bytes straight from the file dialog.
func ParseRowData(name string, data []byte) ([]Row, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return parseDelimitedRows(name, data, ',')
	case ".tsv":
		return parseDelimitedRows(name, data, '\t')
	case ".xlsx":
		return parseWorkbookRows(name, data)
	default:
		return nil, fmt.Errorf("%s: unsupported file type %q", name, ext)
	}
}

func parseDelimitedRows(name string, data []byte, comma rune) ([]Row, error) {
	// Exports from older spreadsheet tools are frequently Windows-1252;
	// fall back to that when the bytes are not valid UTF-8.
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		data = decoded
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return rowsFromCells(name, cells)
}

func parseWorkbookRows(name string, data []byte) ([]Row, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer book.Close()
	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", name)
	}
	// Only the first sheet is read.
	cells, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return rowsFromCells(name, cells)
}

func rowsFromCells(name string, cells [][]string) ([]Row, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%s: %w", name, errEmptyFile)
	}
	headers := make([]string, 0, len(cells[0]))
	for _, cell := range cells[0] {
		headers = append(headers, cleanCell(cell))
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := Row{Headers: headers, Values: make(map[string]string, len(headers))}
		empty := true
		for i, header := range headers {
			if header == "" || i >= len(line) {
				continue
			}
			value := cleanCell(line[i])
			if value == "" {
				continue
			}
			row.Values[header] = value
			empty = false
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var errEmptyFile = errors.New("file has no header row")
