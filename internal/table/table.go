// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is a loaded CSV preview: the header row plus up to maxRows data rows.
type Table struct {
	Header    []string
	Rows      [][]string
	Truncated bool
}

// Load reads path as CSV. maxRows <= 0 loads everything. Ragged rows are
// tolerated, matching the forgiving behavior of typical dataframe loaders.
func Load(path string, maxRows int) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("empty CSV file: %s", path)
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	t := Table{Header: header}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if maxRows > 0 && len(t.Rows) >= maxRows {
			t.Truncated = true
			break
		}
		t.Rows = append(t.Rows, rec)
	}

	return t, nil
}
