package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// readFeatureCSV reads every column of a numeric CSV as feature vectors.
// When hasHeader is true the first row is returned as the header instead of
// being parsed.
func readFeatureCSV(path string, hasHeader bool) ([][]float64, []string, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, nil, err
	}

	var header []string
	if hasHeader && len(rows) > 0 {
		header = rows[0]
		rows = rows[1:]
	}

	data := make([][]float64, 0, len(rows))
	for i, row := range rows {
		vec := make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: row %d column %d: %w", path, i+1, j+1, err)
			}
			vec[j] = v
		}
		data = append(data, vec)
	}
	return data, header, nil
}

// readSeriesCSV reads a single numeric column of a CSV in row order.
func readSeriesCSV(path string, column int, hasHeader bool) ([]float64, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if hasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	series := make([]float64, 0, len(rows))
	for i, row := range rows {
		if column >= len(row) {
			return nil, fmt.Errorf("%s: row %d has %d columns, need column %d", path, i+1, len(row), column)
		}
		v, err := strconv.ParseFloat(row[column], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d column %d: %w", path, i+1, column+1, err)
		}
		series = append(series, v)
	}
	return series, nil
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// writeClusterCSV writes the feature rows back with an appended cluster
// label column.
func writeClusterCSV(path string, header []string, data [][]float64, labels []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header != nil {
		if err := w.Write(append(append([]string{}, header...), "Cluster")); err != nil {
			return err
		}
	}
	for i, vec := range data {
		row := make([]string, 0, len(vec)+1)
		for _, v := range vec {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, strconv.Itoa(labels[i]))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeAnomalyCSV writes one row per series point: index, value, and a 0/1
// anomaly flag.
func writeAnomalyCSV(path string, series []float64, indices []int) error {
	flagged := make(map[int]bool, len(indices))
	for _, idx := range indices {
		flagged[idx] = true
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Index", "Value", "Anomaly"}); err != nil {
		return err
	}
	for i, v := range series {
		flag := "0"
		if flagged[i] {
			flag = "1"
		}
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64), flag}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
