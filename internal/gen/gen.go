// Package gen renders a catalog as Go source declaring a ready-to-use trait.
package gen

import (
	"bytes"
	"go/format"
	"go/token"
	"go/types"
	"math"

	"github.com/zeebo/errs"

	"github.com/xgx-io/xgx-result/catalog"
)

// Error is the error class of everything this package returns.
var Error = errs.Class("gen")

// ImportPath is the import path of the result package in generated code.
const ImportPath = "github.com/xgx-io/xgx-result"

// kindRange bounds the code values each underlying kind can hold. uint and
// uint64 are capped at MaxInt64 because catalog codes are int64.
var kindRange = map[string][2]int64{
	"int":    {math.MinInt64, math.MaxInt64},
	"int8":   {math.MinInt8, math.MaxInt8},
	"int16":  {math.MinInt16, math.MaxInt16},
	"int32":  {math.MinInt32, math.MaxInt32},
	"int64":  {math.MinInt64, math.MaxInt64},
	"uint":   {0, math.MaxInt64},
	"uint8":  {0, math.MaxUint8},
	"uint16": {0, math.MaxUint16},
	"uint32": {0, math.MaxUint32},
	"uint64": {0, math.MaxInt64},
}

// Options override what the catalog declares. Empty fields keep the catalog's
// values; Underlying defaults to "int".
type Options struct {
	Package    string
	Type       string
	Underlying string
	// Source is mentioned in the generated header when set.
	Source string
}

type constant struct {
	Ident       string
	Value       int64
	Description string
}

type model struct {
	Source     string
	Package    string
	Type       string
	Underlying string
	Unsigned   bool
	Success    string
	Default    string
	Constants  []constant
}

// Generate returns gofmt'ed source for cat.
func Generate(cat *catalog.Catalog, opts Options) ([]byte, error) {
	m, err := newModel(cat, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, m); err != nil {
		return nil, Error.Wrap(err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, Error.New("format generated source: %w", err)
	}
	return out, nil
}

func newModel(cat *catalog.Catalog, opts Options) (model, error) {
	m := model{
		Source:     opts.Source,
		Package:    cat.Package(),
		Type:       cat.TypeName(),
		Underlying: "int",
	}
	if opts.Package != "" {
		m.Package = opts.Package
	}
	if opts.Type != "" {
		m.Type = opts.Type
	}
	if opts.Underlying != "" {
		m.Underlying = opts.Underlying
	}
	if !token.IsIdentifier(m.Package) {
		return model{}, Error.New("invalid package name %q", m.Package)
	}
	if !token.IsIdentifier(m.Type) {
		return model{}, Error.New("invalid type name %q", m.Type)
	}
	bounds, ok := kindRange[m.Underlying]
	if !ok {
		return model{}, Error.New("underlying type %q is not an integer kind", m.Underlying)
	}

	m.Unsigned = bounds[0] == 0
	m.Success = m.Type + cat.Success().Name
	m.Default = m.Type + cat.Default().Name

	if types.Universe.Lookup(m.Type) != nil {
		return model{}, Error.New("type name %q shadows a predeclared identifier", m.Type)
	}
	if m.Type == "strconv" || m.Type == "xgxresult" {
		return model{}, Error.New("type name %q collides with an import", m.Type)
	}
	// Package-scope identifiers of the generated file.
	declared := map[string]bool{
		m.Type:            true,
		m.Type + "Trait":  true,
		m.Type + "Result": true,
	}
	for _, e := range cat.Entries() {
		if e.Code < bounds[0] || e.Code > bounds[1] {
			return model{}, Error.New("code %s=%d does not fit in %s", e.Name, e.Code, m.Underlying)
		}
		ident := m.Type + e.Name
		if !token.IsIdentifier(ident) {
			return model{}, Error.New("entry %s yields invalid identifier %s", e.Name, ident)
		}
		if declared[ident] {
			return model{}, Error.New("entry %s collides with generated identifier %s", e.Name, ident)
		}
		declared[ident] = true
		m.Constants = append(m.Constants, constant{
			Ident:       ident,
			Value:       e.Code,
			Description: e.Description,
		})
	}
	return m, nil
}
