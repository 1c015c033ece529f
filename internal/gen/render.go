package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/on-the-ground/cie1931/lut"
)

// Generator is the name recorded in the header of every generated file.
const Generator = "cie1931gen"

// bytesPerLine is the number of data bytes on each line of the string constant.
const bytesPerLine = 16

var fileTemplate = template.Must(template.New("table").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

import "github.com/on-the-ground/cie1931/lut"

// {{.Name}} maps linear input 0..{{.Params.InputMax}} onto CIE 1931 lightness 0..{{.Params.OutputMax}}.
// Its {{.Params.Size}} {{.Params.Kind}} elements occupy {{.Params.ByteLen}} bytes of read-only data.
var {{.Name}} = lut.MustNew[{{.Params.Kind}}]({{.Prefix}}InputMax, {{.Prefix}}OutputMax, {{.Prefix}}Data)

const (
{{- range .Consts}}
	{{.}}
{{- end}}
)

// The domain must not be empty and the data length must match the bounds.
const _ uint = {{.Prefix}}InputMax - 1

var _ = [1]struct{}{}[len({{.Prefix}}Data)-{{.Prefix}}InputMax*{{.Params.Kind.Width}}-{{.Params.Kind.Width}}]

const {{.Prefix}}Data = "" +
{{- range $i, $line := .Lines}}{{if $i}} +{{end}}
	"{{$line}}"
{{- end}}
`))

// Table is a compiled table ready to be rendered as Go source.
type Table struct {
	Name   string
	Params lut.Params
	Data   string
}

type fileData struct {
	Generator string
	Package   string
	Name      string
	Prefix    string
	Params    lut.Params
	Consts    []string
	Lines     []string
}

// Render produces the gofmt-formatted Go source declaring t in package pkg.
func Render(pkg string, t Table) ([]byte, error) {
	if len(t.Data) != t.Params.ByteLen() {
		return nil, fmt.Errorf("%w: %s wants %d bytes, got %d", lut.ErrDataLength, t.Params, t.Params.ByteLen(), len(t.Data))
	}
	prefix := unexported(t.Name)
	fd := fileData{
		Generator: Generator,
		Package:   pkg,
		Name:      t.Name,
		Prefix:    prefix,
		Params:    t.Params,
		Consts: alignConsts(
			[2]string{prefix + "InputMax", fmt.Sprint(t.Params.InputMax)},
			[2]string{prefix + "OutputMax", fmt.Sprint(t.Params.OutputMax)},
			[2]string{prefix + "Digest", fmt.Sprintf("0x%016x", lut.Digest(t.Data))},
			[2]string{prefix + "ID", strconv.Quote(t.Params.ID().String())},
		),
		Lines: dataLines(t.Data),
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, fd); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", t.Name, err)
	}
	return src, nil
}

// alignConsts lines up the = of name/value pairs the way gofmt does.
func alignConsts(pairs ...[2]string) []string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%-*s = %s", width, p[0], p[1])
	}
	return lines
}

func dataLines(data string) []string {
	lines := make([]string, 0, (len(data)+bytesPerLine-1)/bytesPerLine)
	var sb strings.Builder
	for start := 0; start < len(data); start += bytesPerLine {
		sb.Reset()
		for _, b := range []byte(data[start:min(start+bytesPerLine, len(data))]) {
			fmt.Fprintf(&sb, `\x%02x`, b)
		}
		lines = append(lines, sb.String())
	}
	return lines
}
