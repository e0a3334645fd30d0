package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kriskaras/realtech-arv-v1/models"
)

// ReadSalesCSV reads a CSV file with a header row and returns one RawRow
// per record, keyed by header name. Blank lines are skipped by the CSV
// reader; rows with a different field count than the header are an error.
func ReadSalesCSV(path string) ([]models.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	return readSales(f)
}

func readSales(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}

		row := make(models.RawRow, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
