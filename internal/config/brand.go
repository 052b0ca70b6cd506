// internal/config/brand.go

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperr "shawl/internal/error"
	"shawl/internal/models"

	"github.com/BurntSushi/toml"
)

// LoadBrands reads every *.json and *.toml brand file in dir, keyed by name.
// A missing directory yields no brands.
func LoadBrands(dir string) (map[string]models.Brand, error) {
	brands := make(map[string]models.Brand)
	if dir == "" {
		return brands, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return brands, nil
		}
		return nil, apperr.New(apperr.ConfigError, "error reading brands directory", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		var b models.Brand
		switch strings.ToLower(filepath.Ext(name)) {
		case ".json":
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, apperr.New(apperr.ConfigError, "error reading brand "+name, err)
			}
			if err := json.Unmarshal(data, &b); err != nil {
				return nil, apperr.New(apperr.ConfigError, "error parsing brand "+name, err)
			}
		case ".toml":
			if _, err := toml.DecodeFile(path, &b); err != nil {
				return nil, apperr.New(apperr.ConfigError, "error parsing brand "+name, err)
			}
		default:
			continue
		}
		if b.Name == "" {
			b.Name = strings.TrimSuffix(name, filepath.Ext(name))
		}
		if b.ManualFile != "" && !filepath.IsAbs(b.ManualFile) {
			b.ManualFile = filepath.Join(dir, b.ManualFile)
		}
		brands[b.Name] = b
	}
	return brands, nil
}

// ResolveBrand returns the configured brand merged over the default brand.
// An empty name selects the default.
func (c *Config) ResolveBrand() (models.Brand, error) {
	def := models.DefaultBrand()
	if c.UI.Brand == "" {
		return def, nil
	}
	brands, err := LoadBrands(c.UI.BrandsDir)
	if err != nil {
		return def, err
	}
	b, ok := brands[c.UI.Brand]
	if !ok {
		return def, apperr.New(apperr.ConfigError, fmt.Sprintf("brand %q not found in %s", c.UI.Brand, c.UI.BrandsDir), nil)
	}
	return b.Merge(def), nil
}
