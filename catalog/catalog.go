// Package catalog loads code description tables from YAML.
//
// A catalog names a code vocabulary and describes every code in it. Hand
// written traits can delegate CodeToString to Describe, and cmd/xgx-resultgen
// turns a catalog into a complete trait.
//
//	package: storage
//	type: StorageCode
//	success: OK
//	default: Unknown
//	codes:
//	  - {code: 0, name: OK, description: success}
//	  - {code: 1, name: Unknown, description: unknown storage error}
//	  - {code: 2, name: NotFound, description: object not found}
package catalog

import (
	"bytes"
	"os"
	"slices"
	"strconv"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Error is the error class of everything this package returns.
var Error = errs.Class("catalog")

// Entry describes one code.
type Entry struct {
	Code        int64  `yaml:"code"`
	Name        string `yaml:"name" validate:"required,goident"`
	Description string `yaml:"description" validate:"required"`
}

// File is the on-disk form of a catalog.
type File struct {
	Package string  `yaml:"package" validate:"required,goident"`
	Type    string  `yaml:"type" validate:"required,goident"`
	Success string  `yaml:"success" validate:"required"`
	Default string  `yaml:"default" validate:"required"`
	Codes   []Entry `yaml:"codes" validate:"required,min=1,dive"`
}

// Catalog is a validated, read-only code table.
type Catalog struct {
	file    File
	entries []Entry // sorted by code
	byCode  map[int64]Entry
	byName  map[string]Entry
}

// Parse decodes and validates a catalog. Unknown YAML keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, Error.New("decode: %w", err)
	}
	return New(f)
}

// MustParse is Parse for embedded catalogs; it panics on error.
func MustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return Parse(data)
}

// New validates f and builds its lookup tables.
func New(f File) (*Catalog, error) {
	if err := validate(f); err != nil {
		return nil, err
	}

	c := &Catalog{
		file:    f,
		entries: slices.Clone(f.Codes),
		byCode:  make(map[int64]Entry, len(f.Codes)),
		byName:  make(map[string]Entry, len(f.Codes)),
	}
	for _, e := range f.Codes {
		if _, dup := c.byCode[e.Code]; dup {
			return nil, Error.New("duplicate code %d", e.Code)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, Error.New("duplicate name %q", e.Name)
		}
		c.byCode[e.Code] = e
		c.byName[e.Name] = e
	}
	if _, ok := c.byName[f.Success]; !ok {
		return nil, Error.New("success %q is not a declared code", f.Success)
	}
	if _, ok := c.byName[f.Default]; !ok {
		return nil, Error.New("default %q is not a declared code", f.Default)
	}
	if f.Success == f.Default {
		return nil, Error.New("default %q must not be the success code", f.Default)
	}
	slices.SortFunc(c.entries, func(a, b Entry) int {
		switch {
		case a.Code < b.Code:
			return -1
		case a.Code > b.Code:
			return 1
		}
		return 0
	})
	return c, nil
}

func (c *Catalog) Package() string  { return c.file.Package }
func (c *Catalog) TypeName() string { return c.file.Type }

// Success returns the entry of the success code.
func (c *Catalog) Success() Entry { return c.byName[c.file.Success] }

// Default returns the entry of the default error code.
func (c *Catalog) Default() Entry { return c.byName[c.file.Default] }

// Entries returns a copy of all entries ordered by code.
func (c *Catalog) Entries() []Entry { return slices.Clone(c.entries) }

func (c *Catalog) Entry(code int64) (Entry, bool) {
	e, ok := c.byCode[code]
	return e, ok
}

func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Describe returns the description of code, or "unknown code N" for codes the
// catalog does not declare. It never fails.
func (c *Catalog) Describe(code int64) string {
	if e, ok := c.byCode[code]; ok {
		return e.Description
	}
	return "unknown code " + strconv.FormatInt(code, 10)
}
