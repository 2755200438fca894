// Package catalog loads the plant catalog used to turn luminosity classes
// into planting suggestions.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mpaiva/sunplot/pkg/classify"
)

// Plant is one catalog entry. Luminosity names the class the plant thrives
// in, matching the classifier's band names.
type Plant struct {
	Name       string  `json:"name"`
	Species    string  `json:"species,omitempty"`
	Luminosity string  `json:"luminosity"`
	SpacingM   float64 `json:"spacing_m,omitempty"`
}

// Catalog is the full plant list, grouped on demand by luminosity class.
type Catalog struct {
	Plants []Plant `json:"plants"`
}

// Load reads a plant catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plant catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing plant catalog JSON: %w", err)
	}

	for i, p := range c.Plants {
		if p.Name == "" {
			return nil, fmt.Errorf("plant catalog entry %d has no name", i)
		}
		if !validLuminosity(p.Luminosity) {
			return nil, fmt.Errorf("plant %q has unknown luminosity %q", p.Name, p.Luminosity)
		}
	}
	return &c, nil
}

// ForClass returns the plants suited to one luminosity class, in catalog
// order.
func (c *Catalog) ForClass(class classify.Class) []Plant {
	var out []Plant
	for _, p := range c.Plants {
		if p.Luminosity == string(class) {
			out = append(out, p)
		}
	}
	return out
}

func validLuminosity(s string) bool {
	for _, cl := range classify.Classes {
		if s == string(cl) {
			return true
		}
	}
	return false
}
