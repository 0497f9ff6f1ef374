package gen

import "text/template"

var sourceTemplate = template.Must(template.New("trait").Parse(`// Code generated by xgx-resultgen{{with .Source}} from {{.}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"strconv"

	xgxresult "` + ImportPath + `"
)

// {{.Type}} enumerates the codes of this vocabulary.
type {{.Type}} {{.Underlying}}

const (
{{- range .Constants}}
	{{.Ident}} {{$.Type}} = {{.Value}}
{{- end}}
)

// {{.Type}}Trait is the error trait of {{.Type}}.
type {{.Type}}Trait struct{}

func ({{.Type}}Trait) Success() {{.Type}}      { return {{.Success}} }
func ({{.Type}}Trait) DefaultError() {{.Type}} { return {{.Default}} }

// CodeToString describes c; undeclared values render as "unknown code N".
func ({{.Type}}Trait) CodeToString(c {{.Type}}) string {
	switch c {
{{- range .Constants}}
	case {{.Ident}}:
		return {{printf "%q" .Description}}
{{- end}}
	}
{{- if .Unsigned}}
	return "unknown code " + strconv.FormatUint(uint64(c), 10)
{{- else}}
	return "unknown code " + strconv.FormatInt(int64(c), 10)
{{- end}}
}

// {{.Type}}Result is a result over {{.Type}}.
type {{.Type}}Result = xgxresult.Result[{{.Type}}Trait, {{.Type}}]
`))
