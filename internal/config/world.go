// Package config loads planner inputs: the initial world CSV, the state
// quality weights CSV, Lisp-style transform template files, and YAML run
// parameter files.
package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/talgya/statecraft/internal/resource"
	"github.com/talgya/statecraft/internal/world"
)

const (
	countryColumn    = "Country"
	populationColumn = "Population"
)

// LoadWorld reads a world CSV with header Country,Population,<Resource>...
// Every row must fill every column — the resource vocabulary is shared
// across countries, so a blank cell is a format error rather than a zero.
func LoadWorld(path string) (*world.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open world file: %w", err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rows, err := rdr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("world file %s has no country rows", path)
	}

	header := rows[0]
	countryIdx, popIdx := -1, -1
	for i, col := range header {
		switch col {
		case countryColumn:
			countryIdx = i
		case populationColumn:
			popIdx = i
		}
	}
	if countryIdx < 0 {
		return nil, fmt.Errorf("world file %s missing %s column", path, countryColumn)
	}
	if popIdx < 0 {
		return nil, fmt.Errorf("world file %s missing %s column", path, populationColumn)
	}

	var countries []*world.Country
	for line, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("world file %s line %d: %d cells, want %d", path, line+2, len(row), len(header))
		}
		name := row[countryIdx]
		if name == "" {
			return nil, fmt.Errorf("world file %s line %d: empty country name", path, line+2)
		}
		pop, err := strconv.Atoi(row[popIdx])
		if err != nil {
			return nil, fmt.Errorf("world file %s line %d: population %q: %w", path, line+2, row[popIdx], err)
		}
		bundle := resource.Bundle{}
		for i, cell := range row {
			if i == countryIdx || i == popIdx {
				continue
			}
			if cell == "" {
				return nil, fmt.Errorf("world file %s line %d: blank %s cell (vocabulary is shared across rows)", path, line+2, header[i])
			}
			qty, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("world file %s line %d: %s %q: %w", path, line+2, header[i], cell, err)
			}
			bundle[header[i]] = qty
		}
		countries = append(countries, world.NewCountry(name, pop, bundle))
	}

	return world.New(countries...)
}
