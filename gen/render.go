package gen

import (
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const header = "// Code generated by localekit. DO NOT EDIT.\n\n"

// langidImport is imported by every generated file: the enumeration's
// LanguageID method returns a langid.ID and Parse validates with it.
const langidImport = "github.com/localekit/localekit/langid"

// Render emits the model as a formatted Go source file belonging to
// package pkg. The output carries the enumeration, its identifier
// conversions, and one method per accessor; it is passed through
// go/format, so a rendering that does not form valid Go is rejected
// here rather than by the consumer's build.
func (m *Model) Render(pkg string) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header)
	fmt.Fprintf(&b, "// Package %s provides typed access to the project's translation\n// catalogs.\n", pkg)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	b.WriteString("import (\n")
	b.WriteString("\t\"fmt\"\n")
	if m.hasFormatted() {
		b.WriteString("\t\"strings\"\n")
	}
	fmt.Fprintf(&b, "\n\t%s\n", strconv.Quote(langidImport))
	b.WriteString(")\n\n")

	m.renderType(&b)
	m.renderConversions(&b)
	for _, acc := range m.Accessors {
		m.renderAccessor(&b, acc)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

func (m *Model) hasFormatted() bool {
	for _, acc := range m.Accessors {
		if len(acc.Params) > 0 {
			return true
		}
	}
	return false
}

func (m *Model) renderType(b *strings.Builder) {
	name := m.TypeName

	fmt.Fprintf(b, "// %s enumerates the supported languages. The zero value is the\n", name)
	fmt.Fprintf(b, "// fallback language (%s).\n", m.Variants[0].Tag)
	fmt.Fprintf(b, "type %s int\n\n", name)

	b.WriteString("const (\n")
	for i, v := range m.Variants {
		if i == 0 {
			fmt.Fprintf(b, "\t%s%s %s = iota\n", name, v.Name, name)
		} else {
			fmt.Fprintf(b, "\t%s%s\n", name, v.Name)
		}
	}
	b.WriteString(")\n\n")
}

func (m *Model) renderConversions(b *strings.Builder) {
	name := m.TypeName
	fallback := m.Variants[0]

	fmt.Fprintf(b, "// LanguageID returns the ISO 639-1 identifier of the language.\n")
	fmt.Fprintf(b, "func (l %s) LanguageID() langid.ID {\n", name)
	if len(m.Variants) == 1 {
		fmt.Fprintf(b, "\treturn %s\n}\n\n", strconv.Quote(fallback.Tag.Value()))
	} else {
		b.WriteString("\tswitch l {\n")
		for _, v := range m.Variants[1:] {
			fmt.Fprintf(b, "\tcase %s%s:\n\t\treturn %s\n", name, v.Name, strconv.Quote(v.Tag.Value()))
		}
		fmt.Fprintf(b, "\tdefault:\n\t\treturn %s\n\t}\n}\n\n", strconv.Quote(fallback.Tag.Value()))
	}

	fmt.Fprintf(b, "func (l %s) String() string {\n\treturn string(l.LanguageID())\n}\n\n", name)

	fmt.Fprintf(b, "// Parse%s returns the language matching an ISO 639-1 identifier.\n", name)
	fmt.Fprintf(b, "// Identifiers of unsupported languages are reported as errors; use\n")
	fmt.Fprintf(b, "// UnmarshalText for fallback behaviour instead.\n")
	fmt.Fprintf(b, "func Parse%s(s string) (%s, error) {\n", name, name)
	fmt.Fprintf(b, "\tid, err := langid.Parse(s)\n\tif err != nil {\n\t\treturn %s%s, err\n\t}\n", name, fallback.Name)
	b.WriteString("\tswitch id {\n")
	for _, v := range m.Variants {
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn %s%s, nil\n", strconv.Quote(v.Tag.Value()), name, v.Name)
	}
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn %s%s, fmt.Errorf(\"unsupported language %%q\", s)\n}\n\n", name, fallback.Name)

	fmt.Fprintf(b, "func (l %s) MarshalText() ([]byte, error) {\n\treturn []byte(l.LanguageID()), nil\n}\n\n", name)

	fmt.Fprintf(b, "// UnmarshalText decodes an ISO 639-1 identifier. Identifiers of\n")
	fmt.Fprintf(b, "// unsupported languages select the fallback language; malformed\n")
	fmt.Fprintf(b, "// identifiers are errors.\n")
	fmt.Fprintf(b, "func (l *%s) UnmarshalText(text []byte) error {\n", name)
	fmt.Fprintf(b, "\tv, err := Parse%s(string(text))\n", name)
	b.WriteString("\tif err != nil {\n")
	b.WriteString("\t\tif _, invalid := err.(*langid.InvalidError); invalid {\n\t\t\treturn err\n\t\t}\n")
	fmt.Fprintf(b, "\t\tv = %s%s\n\t}\n", name, fallback.Name)
	b.WriteString("\t*l = v\n\treturn nil\n}\n\n")
}

func (m *Model) renderAccessor(b *strings.Builder, acc Accessor) {
	name := m.TypeName

	args := make([]string, len(acc.Params))
	for i, p := range acc.Params {
		args[i] = argName(p) + " string"
	}

	fmt.Fprintf(b, "// %s returns the localized value of the %q key.\n", acc.Method, acc.Key)
	fmt.Fprintf(b, "func (l %s) %s(%s) string {\n", name, acc.Method, strings.Join(args, ", "))

	if len(acc.Arms) == 0 {
		fmt.Fprintf(b, "\t%s\n", m.renderReturn(acc, strconv.Quote(acc.Fallback)))
		b.WriteString("}\n\n")
		return
	}

	b.WriteString("\tvar text string\n\tswitch l {\n")
	for _, arm := range acc.Arms {
		fmt.Fprintf(b, "\tcase %s%s:\n\t\ttext = %s\n", name, arm.Variant, strconv.Quote(arm.Text))
	}
	fmt.Fprintf(b, "\tdefault:\n\t\ttext = %s\n\t}\n", strconv.Quote(acc.Fallback))
	fmt.Fprintf(b, "\t%s\n}\n\n", m.renderReturn(acc, "text"))
}

// renderReturn emits the return statement of an accessor: the selected
// text as-is for plain keys, interpolated for formatted keys.
func (m *Model) renderReturn(acc Accessor, expr string) string {
	if len(acc.Params) == 0 {
		return "return " + expr
	}

	pairs := make([]string, 0, len(acc.Params)*2)
	for _, p := range acc.Params {
		pairs = append(pairs, strconv.Quote("{"+p+"}"), argName(p))
	}
	return fmt.Sprintf("return strings.NewReplacer(%s).Replace(%s)", strings.Join(pairs, ", "), expr)
}

// argName maps a placeholder name to a method argument name. The
// placeholder alphabet ([a-z_]+) already forms valid Go identifiers;
// only keywords need an escape.
func argName(param string) string {
	if token.IsKeyword(param) {
		return param + "_"
	}
	return param
}

var titleCaser = cases.Title(language.English)

// exportedIdent derives an exported Go identifier from a key or tag:
// segments split on non-alphanumeric runes, each title-cased. Digits
// are kept but cannot lead the identifier.
func exportedIdent(s string) string {
	isSep := func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}

	var b strings.Builder
	for _, seg := range strings.FieldsFunc(s, isSep) {
		b.WriteString(titleCaser.String(seg))
	}

	ident := b.String()
	if ident == "" {
		return ""
	}
	if ident[0] >= '0' && ident[0] <= '9' {
		ident = "Key" + ident
	}
	return ident
}
