// Package codecgen generates Encode and Decode methods and per-state
// registries for package packet.
//
// Structs whose doc comment carries "@gen:" get both methods, built from
// their `field` tags. The options after "@gen:" choose the registries a
// packet joins: regserver, regclient. Registries are named after the
// source file, so status.go yields StatusServerboundRegistry.
//
// A field tag names one codec of package packet:
//
//	Port  uint16 `field:"UnsignedShort"`
//	Props []Prop `field:"PrefixedArray" elem:"Prop"`
//
// Generic codecs take an element codec through `elem`. An elem naming a
// packet codec uses WriteX/ReadX; any other name uses the unexported
// writeX/readX declared next to the packet.
package codecgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

type codec struct {
	generic bool // takes an element codec
}

var codecs = map[string]codec{
	"Boolean":       {},
	"Byte":          {},
	"UnsignedShort": {},
	"Int":           {},
	"Long":          {},
	"Position":      {},
	"UUID":          {},
	"VarInt":        {},
	"String":        {},
	"PrefixedBytes": {},
	"PrefixedArray": {generic: true},
	"Optional":      {generic: true},
}

type field struct {
	name  string
	codec string
	elem  string
}

// elemFns returns the write and read functions passed to a generic codec.
func (f field) elemFns() (string, string) {
	if _, ok := codecs[f.elem]; ok {
		return "Write" + f.elem, "Read" + f.elem
	}
	return "write" + f.elem, "read" + f.elem
}

type packetDecl struct {
	name           string
	id             string
	server, client bool
	fields         []field
}

type source struct {
	file    string
	prefix  string
	packets []packetDecl
}

// Generate parses the Go files in dir and returns the formatted source of
// their zz_generated_codec.go.
func Generate(dir string) ([]byte, error) {
	pkg, sources, err := scanDir(dir)
	if err != nil {
		return nil, err
	}
	return format.Source(render(pkg, sources))
}

func scanDir(dir string) (pkg string, sources []source, err error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return
	}

	fset := token.NewFileSet()
	for _, path := range paths {
		base := filepath.Base(path)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		file, perr := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if perr != nil {
			return "", nil, perr
		}
		if pkg == "" {
			pkg = file.Name.Name
		}

		packets, perr := scanFile(fset, file)
		if perr != nil {
			return "", nil, perr
		}
		if len(packets) == 0 {
			continue
		}

		stem := strings.TrimSuffix(base, ".go")
		sources = append(sources, source{
			file:    base,
			prefix:  strings.ToUpper(stem[:1]) + stem[1:],
			packets: packets,
		})
	}
	return
}

func scanFile(fset *token.FileSet, file *ast.File) ([]packetDecl, error) {
	ids := packetIDs(file)

	var packets []packetDecl
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
			continue
		}
		opts, ok := genOptions(gen.Doc)
		if !ok {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s: @gen on non-struct type %s", fset.Position(ts.Pos()), ts.Name.Name)
			}

			p := packetDecl{name: ts.Name.Name, id: ids[ts.Name.Name]}
			if p.id == "" {
				return nil, fmt.Errorf("%s: %s has no ID method returning a literal", fset.Position(ts.Pos()), p.name)
			}
			for _, opt := range opts {
				switch opt {
				case "regserver":
					p.server = true
				case "regclient":
					p.client = true
				default:
					return nil, fmt.Errorf("%s: unknown @gen option %q", fset.Position(ts.Pos()), opt)
				}
			}

			fields, err := structFields(fset, st)
			if err != nil {
				return nil, err
			}
			p.fields = fields
			packets = append(packets, p)
		}
	}
	return packets, nil
}

// packetIDs maps receiver type names to the literal their ID method returns.
func packetIDs(file *ast.File) map[string]string {
	ids := make(map[string]string)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "ID" || fn.Recv == nil || fn.Body == nil {
			continue
		}

		recv := fn.Recv.List[0].Type
		if star, ok := recv.(*ast.StarExpr); ok {
			recv = star.X
		}
		ident, ok := recv.(*ast.Ident)
		if !ok {
			continue
		}

		for _, stmt := range fn.Body.List {
			ret, ok := stmt.(*ast.ReturnStmt)
			if !ok || len(ret.Results) != 1 {
				continue
			}
			if lit, ok := ret.Results[0].(*ast.BasicLit); ok && lit.Kind == token.INT {
				ids[ident.Name] = lit.Value
			}
		}
	}
	return ids
}

func genOptions(doc *ast.CommentGroup) ([]string, bool) {
	for _, c := range doc.List {
		_, rest, ok := strings.Cut(c.Text, "@gen:")
		if !ok {
			continue
		}

		var opts []string
		for _, opt := range strings.Split(rest, ",") {
			if opt = strings.TrimSpace(opt); opt != "" {
				opts = append(opts, opt)
			}
		}
		return opts, true
	}
	return nil, false
}

func structFields(fset *token.FileSet, st *ast.StructType) ([]field, error) {
	var fields []field
	for _, f := range st.Fields.List {
		if f.Tag == nil {
			continue
		}
		raw, err := strconv.Unquote(f.Tag.Value)
		if err != nil {
			return nil, err
		}
		tag := reflect.StructTag(raw)

		name := tag.Get("field")
		if name == "" {
			continue
		}
		c, ok := codecs[name]
		if !ok {
			return nil, fmt.Errorf("%s: unknown codec %q", fset.Position(f.Pos()), name)
		}
		elem := tag.Get("elem")
		if c.generic != (elem != "") {
			return nil, fmt.Errorf("%s: codec %s with elem %q", fset.Position(f.Pos()), name, elem)
		}

		for _, n := range f.Names {
			fields = append(fields, field{name: n.Name, codec: name, elem: elem})
		}
	}
	return fields, nil
}

func render(pkg string, sources []source) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by gen_packet_codec.go; DO NOT EDIT.\npackage %s\n\nimport (\n\t\"io\"\n)\n", pkg)

	for _, src := range sources {
		fmt.Fprintf(&b, "\n// Source: %s\n", src.file)
		renderRegistry(&b, src.prefix+"Serverbound", src.packets, func(p packetDecl) bool { return p.server })
		renderRegistry(&b, src.prefix+"Clientbound", src.packets, func(p packetDecl) bool { return p.client })

		for _, p := range src.packets {
			renderEncode(&b, p)
			renderDecode(&b, p)
		}
	}
	return b.Bytes()
}

func renderRegistry(b *bytes.Buffer, name string, packets []packetDecl, member func(packetDecl) bool) {
	var entries []packetDecl
	for _, p := range packets {
		if member(p) {
			entries = append(entries, p)
		}
	}
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(b, "var %sRegistry = Registry{\n", name)
	for _, p := range entries {
		fmt.Fprintf(b, "\t%s: func() Packet { return &%s{} },\n", p.id, p.name)
	}
	b.WriteString("}\n")
}

func renderEncode(b *bytes.Buffer, p packetDecl) {
	fmt.Fprintf(b, "\nfunc (p %s) Encode(w io.Writer) (err error) {\n", p.name)
	b.WriteString("\tif err = WriteVarInt(w, p.ID()); err != nil { return }\n")
	for _, f := range p.fields {
		args := "w, p." + f.name
		if f.elem != "" {
			write, _ := f.elemFns()
			args += ", " + write
		}
		fmt.Fprintf(b, "\tif err = Write%s(%s); err != nil { return }\n", f.codec, args)
	}
	b.WriteString("\treturn\n}\n")
}

func renderDecode(b *bytes.Buffer, p packetDecl) {
	fmt.Fprintf(b, "\nfunc (p *%s) Decode(r *Reader) (err error) {\n", p.name)
	for _, f := range p.fields {
		args := "r"
		if f.elem != "" {
			_, read := f.elemFns()
			args += ", " + read
		}
		fmt.Fprintf(b, "\tif p.%s, err = Read%s(%s); err != nil { return }\n", f.name, f.codec, args)
	}
	b.WriteString("\treturn nil\n}\n")
}
