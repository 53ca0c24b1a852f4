package unitcell

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Column names exactly as they appear in the CSV headers. The loader is
// header-indexed, so column order in the files does not matter, but the
// names are case sensitive.
const (
	colID             = "ID"
	colUnitCell       = "Unit Cell"
	colE1             = "E1"
	colE2             = "E2"
	colE3             = "E3"
	colG12            = "G12"
	colG13            = "G13"
	colG23            = "G23"
	colNu12           = "Nu12"
	colNu13           = "Nu13"
	colNu23           = "Nu23"
	colError          = "Error"
	colStrutThickness = "Strut thickness [mm]"
	colStiffVolume    = "Stiff volume"
	colTotalVolume    = "Total volume"
	colInfillMaterial = "Infill material"
)

// FilePair names the outputs (engineering constants) and inputs (geometric
// parameterization) CSV for one unit-cell category.
type FilePair struct {
	Outputs string
	Inputs  string
}

// header maps column name -> index for one CSV file.
type header map[string]int

func readCSV(path string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}
	h := header{}
	for i, name := range rows[0] {
		h[strings.TrimSpace(name)] = i
	}
	return h, rows[1:], nil
}

func (h header) require(path string, names ...string) error {
	for _, n := range names {
		if _, ok := h[n]; !ok {
			return fmt.Errorf("%s: missing required column %q", path, n)
		}
	}
	return nil
}

func (h header) float(row []string, name string) (float64, error) {
	i := h[name]
	if i >= len(row) {
		return 0, fmt.Errorf("short row: no field for column %q", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func (h header) int(row []string, name string) (int, error) {
	i := h[name]
	if i >= len(row) {
		return 0, fmt.Errorf("short row: no field for column %q", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(row[i]))
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func (h header) str(row []string, name string) string {
	i := h[name]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// mergeKey identifies a row within one category file.
type mergeKey struct {
	ID       int
	UnitCell string
}

// readOutputsCSV reads an outputs (engineering constants) file into partial
// records keyed by (ID, Unit Cell). Duplicate keys are an error: merge
// semantics require uniqueness per source file.
func readOutputsCSV(path string) (map[mergeKey]Record, []mergeKey, error) {
	h, rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}
	if err := h.require(path, colID, colUnitCell, colE1, colE2, colG12, colNu12); err != nil {
		return nil, nil, err
	}
	out := make(map[mergeKey]Record, len(rows))
	var order []mergeKey
	for n, row := range rows {
		var rec Record
		rec.ID, err = h.int(row, colID)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		rec.UnitCell = h.str(row, colUnitCell)
		read := func(dst *float64, name string) {
			if err != nil {
				return
			}
			if _, ok := h[name]; !ok {
				return // optional column (E3, Nu13... absent for 2D runs)
			}
			*dst, err = h.float(row, name)
		}
		read(&rec.E1, colE1)
		read(&rec.E2, colE2)
		read(&rec.E3, colE3)
		read(&rec.G12, colG12)
		read(&rec.G13, colG13)
		read(&rec.G23, colG23)
		read(&rec.Nu12, colNu12)
		read(&rec.Nu13, colNu13)
		read(&rec.Nu23, colNu23)
		read(&rec.SimError, colError)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		k := mergeKey{rec.ID, rec.UnitCell}
		if _, dup := out[k]; dup {
			return nil, nil, fmt.Errorf("%s: duplicate key (ID=%d, Unit Cell=%s)", path, k.ID, k.UnitCell)
		}
		out[k] = rec
		order = append(order, k)
	}
	return out, order, nil
}

// inputsRow is the geometric-inputs side of the merge.
type inputsRow struct {
	StrutThickness float64
	StiffVolume    float64
	TotalVolume    float64
	InfillMaterial string
}

// readInputsCSV reads an inputs (design variables) file keyed by
// (ID, Unit Cell).
func readInputsCSV(path string) (map[mergeKey]inputsRow, error) {
	h, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if err := h.require(path, colID, colUnitCell, colStrutThickness, colStiffVolume, colTotalVolume, colInfillMaterial); err != nil {
		return nil, err
	}
	out := make(map[mergeKey]inputsRow, len(rows))
	for n, row := range rows {
		id, err := h.int(row, colID)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		k := mergeKey{id, h.str(row, colUnitCell)}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("%s: duplicate key (ID=%d, Unit Cell=%s)", path, k.ID, k.UnitCell)
		}
		var ir inputsRow
		if ir.StrutThickness, err = h.float(row, colStrutThickness); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		if ir.StiffVolume, err = h.float(row, colStiffVolume); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		if ir.TotalVolume, err = h.float(row, colTotalVolume); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		ir.InfillMaterial = h.str(row, colInfillMaterial)
		out[k] = ir
	}
	return out, nil
}

// LoadCategory reads one outputs/inputs pair and merges them on
// (ID, Unit Cell). Every outputs row must have an inputs counterpart;
// a mismatch aborts the load (no partial category).
func LoadCategory(pair FilePair) ([]Record, error) {
	outs, order, err := readOutputsCSV(pair.Outputs)
	if err != nil {
		return nil, err
	}
	ins, err := readInputsCSV(pair.Inputs)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(order))
	for _, k := range order {
		rec := outs[k]
		ir, ok := ins[k]
		if !ok {
			return nil, fmt.Errorf("merge %s + %s: no inputs row for (ID=%d, Unit Cell=%s)",
				pair.Outputs, pair.Inputs, k.ID, k.UnitCell)
		}
		rec.StrutThickness = ir.StrutThickness
		rec.StiffVolume = ir.StiffVolume
		rec.TotalVolume = ir.TotalVolume
		rec.InfillMaterial = ir.InfillMaterial
		recs = append(recs, rec)
	}
	return recs, nil
}

// LoadAll concatenates all category pairs into one merged slice, preserving
// pair order. The first failing pair aborts the whole load.
func LoadAll(pairs []FilePair) ([]Record, error) {
	var all []Record
	for _, p := range pairs {
		recs, err := LoadCategory(p)
		if err != nil {
			return nil, err
		}
		Infof("loaded %d rows from %s + %s", len(recs), p.Outputs, p.Inputs)
		all = append(all, recs...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no records loaded")
	}
	return all, nil
}
