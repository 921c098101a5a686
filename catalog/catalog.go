// Package catalog holds the static reference tables the engine and the API
// serve from: coffee origins, varietals, blend profiles and common equipment
// presets. Everything here is immutable after Default() builds it; the
// engine receives the catalog as an argument and never mutates it.
package catalog

import "sort"

// Origin describes a growing region and how it shifts extraction.
// ExtractionModifier is in percentage points; positive means the coffee
// extracts easier (grind coarser), negative that it resists extraction.
type Origin struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ExtractionModifier float64 `json:"extractionModifier"`
	Characteristics    string  `json:"characteristics"`
}

// Varietal describes a cultivar.
type Varietal struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ExtractionModifier float64 `json:"extractionModifier"`
	Characteristics    string  `json:"characteristics"`
}

// BlendProfile describes a named blend style.
type BlendProfile struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ExtractionModifier float64 `json:"extractionModifier"`
	Description        string  `json:"description"`
}

// Catalog bundles the lookup tables. It implements engine.ModifierLookup.
type Catalog struct {
	origins   map[string]Origin
	varietals map[string]Varietal
	blends    map[string]BlendProfile
}

// OriginModifier resolves an origin id. Missing ids report ok=false and the
// caller treats that as a neutral adjustment.
func (c *Catalog) OriginModifier(id string) (float64, bool) {
	o, ok := c.origins[id]
	return o.ExtractionModifier, ok
}

func (c *Catalog) VarietalModifier(id string) (float64, bool) {
	v, ok := c.varietals[id]
	return v.ExtractionModifier, ok
}

func (c *Catalog) BlendModifier(id string) (float64, bool) {
	b, ok := c.blends[id]
	return b.ExtractionModifier, ok
}

// Origins returns all origins sorted by id, for the reference endpoints.
func (c *Catalog) Origins() []Origin {
	out := make([]Origin, 0, len(c.origins))
	for _, o := range c.origins {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Varietals() []Varietal {
	out := make([]Varietal, 0, len(c.varietals))
	for _, v := range c.varietals {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Blends() []BlendProfile {
	out := make([]BlendProfile, 0, len(c.blends))
	for _, b := range c.blends {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Default builds the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		origins:   make(map[string]Origin, len(origins)),
		varietals: make(map[string]Varietal, len(varietals)),
		blends:    make(map[string]BlendProfile, len(blendProfiles)),
	}
	for _, o := range origins {
		c.origins[o.ID] = o
	}
	for _, v := range varietals {
		c.varietals[v.ID] = v
	}
	for _, b := range blendProfiles {
		c.blends[b.ID] = b
	}
	return c
}
