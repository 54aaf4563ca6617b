package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/talgya/statecraft/internal/metrics"
)

// LoadWeights reads a resource,weight,baseline CSV into a quality function.
// Rows with any blank field are skipped; non-numeric values are an error, as
// is a file that yields no usable rows.
func LoadWeights(path string) (*metrics.Quality, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weights file: %w", err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rdr.FieldsPerRecord = -1
	rows, err := rdr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}

	weights := make(map[string]metrics.Weight)
	for line, row := range rows {
		if line == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "resource") {
			continue // header
		}
		if len(row) < 3 {
			continue
		}
		name := strings.TrimSpace(row[0])
		wt := strings.TrimSpace(row[1])
		bl := strings.TrimSpace(row[2])
		if name == "" || wt == "" || bl == "" {
			continue
		}
		w, err := strconv.ParseFloat(wt, 64)
		if err != nil {
			return nil, fmt.Errorf("weights file %s line %d: weight %q: %w", path, line+1, wt, err)
		}
		b, err := strconv.ParseFloat(bl, 64)
		if err != nil {
			return nil, fmt.Errorf("weights file %s line %d: baseline %q: %w", path, line+1, bl, err)
		}
		weights[name] = metrics.Weight{Weight: w, Baseline: b}
	}

	q, err := metrics.NewQuality(weights)
	if err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	return q, nil
}
