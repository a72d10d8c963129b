package resolver

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// airportRow is one record of the local airport table.
type airportRow struct {
	name         string
	municipality string
	iataCode     string
}

// AirportTable is the last-resort local lookup for candidates the remote
// services return without a recognized code. The CSV is loaded once and
// cached for the process lifetime.
type AirportTable struct {
	rows []airportRow
}

// LoadAirportTable reads the airport CSV from disk. The file must carry
// name, municipality and iata_code columns; extra columns are ignored.
func LoadAirportTable(path string) (*AirportTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open airport table: %w", err)
	}
	defer f.Close()

	t, err := ReadAirportTable(f)
	if err != nil {
		return nil, fmt.Errorf("read airport table %s: %w", path, err)
	}
	return t, nil
}

// ReadAirportTable parses airport records from CSV data.
func ReadAirportTable(r io.Reader) (*AirportTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name", "municipality", "iata_code"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var rows []airportRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		row := airportRow{
			name:         field(record, cols["name"]),
			municipality: field(record, cols["municipality"]),
			iataCode:     field(record, cols["iata_code"]),
		}
		if row.name == "" {
			continue
		}
		rows = append(rows, row)
	}

	return &AirportTable{rows: rows}, nil
}

// Len returns the number of loaded airport records.
func (t *AirportTable) Len() int {
	return len(t.rows)
}

// FindIATA looks up a code for an airport name, in order: exact name match,
// substring name match, then municipality substring match against the
// original city name. Only rows with a code count.
func (t *AirportTable) FindIATA(airportName, city string) string {
	name := strings.ToLower(airportName)

	for _, row := range t.rows {
		if row.iataCode != "" && strings.ToLower(row.name) == name {
			return row.iataCode
		}
	}

	for _, row := range t.rows {
		if row.iataCode != "" && strings.Contains(strings.ToLower(row.name), name) {
			return row.iataCode
		}
	}

	if city != "" {
		cityLower := strings.ToLower(city)
		for _, row := range t.rows {
			if row.iataCode != "" && row.municipality != "" &&
				strings.Contains(strings.ToLower(row.municipality), cityLower) {
				return row.iataCode
			}
		}
	}

	return ""
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
