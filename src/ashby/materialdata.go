package ashby

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaterialRecord is one row of a material-property table. Range-type
// quantities carry "<quantity> low"/"<quantity> high" bounds; value-type
// quantities a single number per quantity.
type MaterialRecord struct {
	Category string
	Low      map[string]float64
	High     map[string]float64
	Value    map[string]float64
}

// Range returns the low/high bounds for a quantity.
func (m MaterialRecord) Range(q string) (lo, hi float64, ok bool) {
	lo, okLo := m.Low[q]
	hi, okHi := m.High[q]
	return lo, hi, okLo && okHi
}

// LoadMaterialCSV reads a material table. The "Category" column is required;
// every other column is either "<q> low"/"<q> high" (range data) or a bare
// quantity name (value data). All numeric cells must parse.
func LoadMaterialCSV(path string) ([]MaterialRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	head := rows[0]
	catIdx := -1
	for i, name := range head {
		if strings.TrimSpace(name) == "Category" {
			catIdx = i
		}
	}
	if catIdx < 0 {
		return nil, fmt.Errorf("%s: missing required column %q", path, "Category")
	}
	var out []MaterialRecord
	for n, row := range rows[1:] {
		rec := MaterialRecord{
			Low:   map[string]float64{},
			High:  map[string]float64{},
			Value: map[string]float64{},
		}
		for i, cell := range row {
			name := strings.TrimSpace(head[i])
			if i == catIdx {
				rec.Category = strings.TrimSpace(cell)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %q: %w", path, n+2, name, err)
			}
			switch {
			case strings.HasSuffix(name, " low"):
				rec.Low[strings.TrimSuffix(name, " low")] = v
			case strings.HasSuffix(name, " high"):
				rec.High[strings.TrimSuffix(name, " high")] = v
			default:
				rec.Value[name] = v
			}
		}
		if rec.Category == "" {
			return nil, fmt.Errorf("%s row %d: empty Category", path, n+2)
		}
		out = append(out, rec)
	}
	return out, nil
}

// GroupByCategory buckets records per category, order of first appearance.
func GroupByCategory(recs []MaterialRecord) (map[string][]MaterialRecord, []string) {
	groups := map[string][]MaterialRecord{}
	var order []string
	for _, r := range recs {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups, order
}
