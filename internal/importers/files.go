package importers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EntityForFilename picks the entity type from a CSV file name. The first
// keyword found in import order wins, so "order_products.csv" is products.
func EntityForFilename(name string) (EntityType, bool) {
	lower := strings.ToLower(filepath.Base(name))
	if filepath.Ext(lower) != ".csv" {
		return "", false
	}
	for _, e := range EntityOrder {
		if strings.Contains(lower, e.Keyword()) {
			return e, true
		}
	}
	return "", false
}

// DiscoverFiles lists the importable CSV files in dir by entity type, each
// list sorted by file name. Unrecognised files are ignored.
func DiscoverFiles(dir string) (map[EntityType][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory %s: %w", dir, err)
	}

	files := make(map[EntityType][]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entity, ok := EntityForFilename(entry.Name())
		if !ok {
			continue
		}
		files[entity] = append(files[entity], filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
