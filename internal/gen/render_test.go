package gen_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/on-the-ground/cie1931/internal/gen"
	"github.com/on-the-ground/cie1931/lut"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTable(t *testing.T, name string, p lut.Params) string {
	t.Helper()
	data, err := lut.Compile(p)
	require.NoError(t, err)
	src, err := gen.Render("leds", gen.Table{Name: name, Params: p, Data: data})
	require.NoError(t, err)
	return string(src)
}

func TestRender_Layout(t *testing.T) {
	p := lut.Params{InputMax: 20, OutputMax: 255, Kind: lut.KindUint8}
	src := renderTable(t, "Small", p)

	data, err := lut.Compile(p)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src, "// Code generated by cie1931gen. DO NOT EDIT.\n\npackage leds\n"))
	assert.Contains(t, src, "var Small = lut.MustNew[uint8](smallInputMax, smallOutputMax, smallData)")
	assert.Contains(t, src, "\tsmallInputMax  = 20\n")
	assert.Contains(t, src, "\tsmallOutputMax = 255\n")
	assert.Contains(t, src, "\tsmallID        = \""+p.ID().String()+"\"\n")
	assert.Contains(t, src, "const _ uint = smallInputMax - 1\n")
	assert.Contains(t, src, "var _ = [1]struct{}{}[len(smallData)-smallInputMax*1-1]\n")
	// 21 bytes split into a full line and a 5 byte tail
	assert.Contains(t, src, "const smallData = \"\" +\n\t\"\\x00")
	assert.Equal(t, 2, strings.Count(src, "\n\t\"\\x"))
	assert.True(t, strings.HasSuffix(src, "\"\n"))
	assert.Contains(t, src, escape(data[16:]))
}

func escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&sb, `\x%02x`, s[i])
	}
	return sb.String()
}

func TestRender_ParsesAsGo(t *testing.T) {
	src := renderTable(t, "Wide", lut.Params{InputMax: 32, OutputMax: 1 << 40, Kind: lut.KindUint64})

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "wide.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "leds", f.Name.Name)
	assert.True(t, ast.IsGenerated(f))

	var names []string
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				for _, n := range vs.Names {
					names = append(names, n.Name)
				}
			}
		}
	}
	assert.Subset(t, names, []string{"Wide", "wideInputMax", "wideOutputMax", "wideDigest", "wideID", "wideData"})
	assert.Contains(t, src, "[len(wideData)-wideInputMax*8-8]")
}

func TestRender_Deterministic(t *testing.T) {
	p := lut.Params{InputMax: 1023, OutputMax: 4095, Kind: lut.KindUint16}
	assert.Equal(t, renderTable(t, "Pwm", p), renderTable(t, "Pwm", p))
}

func TestRender_RejectsMismatchedData(t *testing.T) {
	_, err := gen.Render("leds", gen.Table{
		Name:   "Broken",
		Params: lut.Params{InputMax: 10, OutputMax: 10, Kind: lut.KindUint16},
		Data:   "abc",
	})
	assert.ErrorIs(t, err, lut.ErrDataLength)
}
