package plot4gmns

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// csvRow gives access to cells of a single CSV record by column name
type csvRow struct {
	fname   string
	line    int
	header  map[string]int
	records []string
}

func (row csvRow) has(column string) bool {
	idx, ok := row.header[column]
	return ok && idx < len(row.records) && strings.TrimSpace(row.records[idx]) != ""
}

func (row csvRow) str(column string) string {
	idx, ok := row.header[column]
	if !ok || idx >= len(row.records) {
		return ""
	}
	return strings.TrimSpace(row.records[idx])
}

func (row csvRow) float(column string, defaultValue float64) (float64, error) {
	if !row.has(column) {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(row.str(column), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Can't parse '%s' at %s:%d", column, row.fname, row.line)
	}
	return value, nil
}

func (row csvRow) int(column string, defaultValue int) (int, error) {
	if !row.has(column) {
		return defaultValue, nil
	}
	raw := row.str(column)
	value, err := strconv.Atoi(raw)
	if err == nil {
		return value, nil
	}
	// Some GMNS producers write integers as floats, e.g. lanes '2.0'
	valueFloat, errFloat := strconv.ParseFloat(raw, 64)
	if errFloat != nil {
		return 0, errors.Wrapf(err, "Can't parse '%s' at %s:%d", column, row.fname, row.line)
	}
	return int(valueFloat), nil
}

func (row csvRow) int64(column string, defaultValue int64) (int64, error) {
	if !row.has(column) {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(row.str(column), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Can't parse '%s' at %s:%d", column, row.fname, row.line)
	}
	return value, nil
}

// readCSV walks every record of given file. Columns are looked up by header names.
// Returns os.ErrNotExist (wrapped) if file is missing, so caller could treat it as optional
func readCSV(fname string, comma rune, required []string, handle func(row csvRow) error) error {
	file, err := os.Open(fname)
	if err != nil {
		return errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerRecords, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "Can't read header of '%s'", fname)
	}
	header := make(map[string]int, len(headerRecords))
	for i, column := range headerRecords {
		// Strip UTF-8 BOM which spreadsheet editors like to put in the first cell
		column = strings.TrimPrefix(column, "\ufeff")
		header[strings.ToLower(strings.TrimSpace(column))] = i
	}
	for _, column := range required {
		if _, ok := header[column]; !ok {
			return errors.Errorf("Column '%s' is missing in '%s'", column, fname)
		}
	}

	line := 1
	for {
		records, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return errors.Wrapf(err, "Can't read record at %s:%d", fname, line)
		}
		err = handle(csvRow{fname: fname, line: line, header: header, records: records})
		if err != nil {
			return err
		}
	}
	return nil
}
