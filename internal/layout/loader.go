package layout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const aliasFile = "model_aliases.csv"

// LoadAliasesFromDataDir reads model_aliases.csv (columns model,family) from
// dataDir. A missing file yields no aliases and no error.
func LoadAliasesFromDataDir(dataDir string) (map[string]string, error) {
	path := filepath.Join(dataDir, aliasFile)
	if _, err := os.Stat(path); err != nil {
		return map[string]string{}, nil
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	mi, ok1 := cols["model"]
	fi, ok2 := cols["family"]
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("csv %s: header must contain model and family", path)
	}

	out := map[string]string{}
	for i, row := range rows[1:] {
		if mi >= len(row) || fi >= len(row) {
			continue
		}
		model := strings.TrimSpace(row[mi])
		fam := strings.TrimSpace(row[fi])
		if model == "" {
			continue
		}
		if _, ok := families[fam]; !ok {
			return nil, fmt.Errorf("csv %s row %d: unknown family %q", path, i+2, fam)
		}
		out[model] = fam
	}
	return out, nil
}
