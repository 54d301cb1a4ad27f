// Command mkprimitives generates the primitive wrapper family in the ua
// package. The table below is the single source of truth for which
// primitives are supported; each entry yields one transparent wrapper type
// bound to the matching sys scalar and its descriptor.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

// entry describes one primitive wrapper. The wrapper name doubles as the
// sys scalar and TypeIndex suffix; HostType is the Go primitive the
// constructor takes; NodeID is the type's numeric identifier in namespace 0.
type entry struct {
	Name     string
	HostType string
	NodeID   uint16
	Zero     string
}

var primitives = []entry{
	{"Boolean", "bool", 1, "false"},
	{"SByte", "int8", 2, "0"},
	{"Byte", "uint8", 3, "0"},
	{"Int16", "int16", 4, "0"},
	{"UInt16", "uint16", 5, "0"},
	{"Int32", "int32", 6, "0"},
	{"UInt32", "uint32", 7, "0"},
	{"Int64", "int64", 8, "0"},
	{"UInt64", "uint64", 9, "0"},
	{"Float", "float32", 10, "0"},
	{"Double", "float64", 11, "0"},
}

var tmpl = template.Must(template.New("primitives").Parse(`// Code generated by mkprimitives; DO NOT EDIT.

package ua

import (
	"unsafe"

	"github.com/wippyai/opcua-runtime/sys"
)
{{range .}}
// {{.Name}} wraps the native scalar sys.{{.Name}} (data type ns=0;i={{.NodeID}}).
type {{.Name}} struct {
	inner sys.{{.Name}}
}

// Build-time layout proof: {{.Name}} and sys.{{.Name}} have identical size
// and alignment, so pointers between them may be reinterpreted freely.
var (
	_ [unsafe.Sizeof({{.Name}}{})]byte  = [unsafe.Sizeof(sys.{{.Name}}({{.Zero}}))]byte{}
	_ [unsafe.Alignof({{.Name}}{})]byte = [unsafe.Alignof(sys.{{.Name}}({{.Zero}}))]byte{}
)

var _ DataType = (*{{.Name}})(nil)

// New{{.Name}} wraps value. Construction is a pure bit copy.
func New{{.Name}}(value {{.HostType}}) {{.Name}} {
	n := sys.{{.Name}}(value)
	return fromBits[{{.Name}}](&n)
}

// Value returns the wrapped host value.
func (w {{.Name}}) Value() {{.HostType}} {
	return {{.HostType}}(w.inner)
}

// View reinterprets w as its native type. The returned pointer shares w's
// storage and carries no ownership.
func (w *{{.Name}}) View() *sys.{{.Name}} {
	return viewAs[sys.{{.Name}}](w)
}

// Ptr returns the raw pointer handed to native engine calls.
func (w *{{.Name}}) Ptr() unsafe.Pointer {
	return unsafe.Pointer(w)
}

// TypeIndex identifies the descriptor-table entry for {{.Name}}.
func ({{.Name}}) TypeIndex() sys.TypeIndex {
	return sys.TypeIndex{{.Name}}
}

// DataType returns the static type descriptor for {{.Name}}.
func ({{.Name}}) DataType() *sys.DataType {
	return descriptor(sys.TypeIndex{{.Name}})
}
{{end}}`))

func main() {
	out := flag.String("out", "primitives_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, primitives); err != nil {
		fmt.Fprintf(os.Stderr, "mkprimitives: %v\n", err)
		os.Exit(1)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkprimitives: format: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "mkprimitives: %v\n", err)
		os.Exit(1)
	}
}
