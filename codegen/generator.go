// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	gofmt "go/format"
	"strings"

	"github.com/Bulat-Ziganshin/EasyProtoBuf/descriptor"
)

const pbDelimiter = "."

// checkRequiredFieldTemplate is the Go counterpart of the original's
// CHECK_REQUIRED_FIELD_TEMPLATE: {0}=message name, {1}=proto field name
// (used in the error text), {2}=Go field identifier (used in the Has*
// check).
const checkRequiredFieldTemplate = "\tif !m.Has{2} {\n\t\treturn wire.MissingRequiredField(\"{0}.{1}\")\n\t}\n"

// Generator renders Go source for every message in a FileDescriptorSet,
// following Options. It is the Go counterpart of the original's free
// function generator(FileDescriptorSet&); state lives on the struct only
// so callers can set Options once. Generate normalizes Options in place,
// so the CLI's errgroup-parallel multi-file run builds one Generator per
// file from a shared Options value.
type Generator struct {
	Options Options
}

// printer accumulates generated source line by line, mirroring
// protogen.GeneratedFile.P's "stringify each argument, then newline"
// contract.
type printer struct {
	b strings.Builder
}

func (p *printer) P(args ...interface{}) {
	for _, a := range args {
		fmt.Fprint(&p.b, a)
	}
	p.b.WriteByte('\n')
}

func (p *printer) String() string { return p.b.String() }

// Generate renders every message in every file of set as Go source,
// returning one gofmt-formatted file.
func (g *Generator) Generate(packageName string, set *descriptor.FileDescriptorSet) ([]byte, error) {
	g.Options.Normalize()

	var p printer
	p.P("// Code generated by easypb-gen. DO NOT EDIT.")
	for _, f := range set.File {
		p.P("// Source: ", f.Name)
	}
	p.P()
	p.P("package ", packageName)
	p.P()
	p.P(`import "github.com/Bulat-Ziganshin/EasyProtoBuf/wire"`)
	p.P()

	for _, file := range set.File {
		packageNamePrefix := pbDelimiter
		if file.Package != "" {
			packageNamePrefix = pbDelimiter + file.Package + pbDelimiter
		}
		for _, messageType := range file.MessageType {
			if err := g.generateMessage(&p, packageNamePrefix, "", messageType); err != nil {
				return nil, err
			}
		}
	}

	src := p.String()
	formatted, err := gofmt.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting generated source: %w", err)
	}
	return formatted, nil
}

// generateMessage emits one message's struct and, recursively, every
// type nested inside it -- nested_type and enum_type both flatten to
// top-level Go declarations, matching protoc-gen-go's own convention.
func (g *Generator) generateMessage(p *printer, packageNamePrefix, outerPrefix string, msg *descriptor.DescriptorProto) error {
	goName := outerPrefix + goIdent(msg.Name)

	var fieldsDefs, hasFieldsDefs, encoder, decodeCases, checkRequired, defaultsInit strings.Builder

	for _, field := range msg.Field {
		if field.Type == descriptor.TypeGroup {
			p.P("// field ", field.Name, " is a proto2 group, which is not supported; skipped")
			continue
		}

		goType := goTypeStr(packageNamePrefix, field, &g.Options)
		fieldName := goIdent(field.Name)

		defaultStr := ""
		if field.HasDefaultValue && !g.Options.NoDefaultValues {
			defaultStr = field.DefaultValue
		}
		if defaultStr != "" {
			fieldsDefs.WriteString(fmt.Sprintf("\t%s %s // default %q\n", fieldName, goType, defaultStr))
			if !field.IsRepeated() {
				defaultsInit.WriteString(fmt.Sprintf("\t\t%s: %s,\n", fieldName, defaultLiteral(field, defaultStr)))
			}
		} else {
			fieldsDefs.WriteString(fmt.Sprintf("\t%s %s\n", fieldName, goType))
		}

		if !field.IsRepeated() && !g.Options.NoHasFields {
			hasFieldsDefs.WriteString(fmt.Sprintf("\tHas%s bool\n", fieldName))
		}

		g.generateFieldEncode(&encoder, field, fieldName)
		g.generateFieldDecode(&decodeCases, packageNamePrefix, field, fieldName)
	}

	// check_required_fields is built in its own pass over msg.Field,
	// one block per required field in declaration order, matching the
	// original's CHECK_REQUIRED_FIELD_TEMPLATE emission.
	for _, field := range msg.Field {
		if field.IsRequired() && !g.Options.NoRequired {
			checkRequired.WriteString(format(checkRequiredFieldTemplate, msg.Name, field.Name, goIdent(field.Name)))
		}
	}

	if !g.Options.NoClass {
		p.P("type ", goName, " struct {")
		p.P(fieldsDefs.String())
		if !g.Options.NoHasFields {
			p.P(hasFieldsDefs.String())
		}
		p.P("}")
		p.P()

		if defaultsInit.Len() > 0 {
			p.P("// New", goName, " returns a ", goName, " with its schema-declared field")
			p.P("// defaults applied. Fields Decode never observes on the wire keep")
			p.P("// these values, matching the original's in-class member initializer.")
			p.P("func New", goName, "() *", goName, " {")
			p.P("\treturn &", goName, "{")
			p.P(defaultsInit.String())
			p.P("\t}")
			p.P("}")
			p.P()
		}
	}

	if !g.Options.NoEncoder {
		p.P("func (m *", goName, ") Encode(e *wire.Encoder) {")
		p.P(encoder.String())
		p.P("}")
		p.P()
	}

	if !g.Options.NoDecoder {
		p.P("func (m *", goName, ") Decode(d *wire.Decoder) error {")
		p.P("\tfor {")
		p.P("\t\tmore, err := d.Next()")
		p.P("\t\tif err != nil {")
		p.P("\t\t\treturn err")
		p.P("\t\t}")
		p.P("\t\tif !more {")
		p.P("\t\t\tbreak")
		p.P("\t\t}")
		p.P("\t\tswitch d.FieldNum {")
		p.P(decodeCases.String())
		p.P("\t\tdefault:")
		p.P("\t\t\tif err := d.SkipField(); err != nil {")
		p.P("\t\t\t\treturn err")
		p.P("\t\t\t}")
		p.P("\t\t}")
		p.P("\t}")
		p.P(checkRequired.String())
		p.P("\treturn nil")
		p.P("}")
		p.P()
	}

	for _, nested := range msg.NestedType {
		if err := g.generateMessage(p, packageNamePrefix, goName+"_", nested); err != nil {
			return err
		}
	}
	for _, enum := range msg.EnumType {
		g.generateEnum(p, goName+"_", enum)
	}
	return nil
}

func (g *Generator) generateFieldEncode(w *strings.Builder, field *descriptor.FieldDescriptorProto, fieldName string) {
	base := exportedTypeName(field)
	accessor := "m." + fieldName
	check := ""
	if !field.IsRepeated() && !g.Options.NoHasFields {
		check = "if m.Has" + fieldName + " "
	}

	packed := field.IsRepeated() && g.writeAsPacked(field) && field.CanBePacked()

	var call string
	switch {
	case packed:
		call = fmt.Sprintf("e.PutPacked%s(%d, %s)", base, field.Number, accessor)
	case field.IsRepeated():
		call = fmt.Sprintf("e.PutRepeated%s(%d, %s)", base, field.Number, accessor)
	default:
		call = fmt.Sprintf("e.Put%s(%d, %s)", base, field.Number, accessor)
	}

	errorReturning := base == "String" || base == "Bytes" || base == "Message" || packed

	if check != "" {
		w.WriteString("\t" + check + "{\n")
		if errorReturning {
			w.WriteString("\t\t_ = " + call + "\n")
		} else {
			w.WriteString("\t\t" + call + "\n")
		}
		w.WriteString("\t}\n")
		return
	}
	if errorReturning {
		w.WriteString("\t_ = " + call + "\n")
	} else {
		w.WriteString("\t" + call + "\n")
	}
}

func (g *Generator) generateFieldDecode(w *strings.Builder, packageNamePrefix string, field *descriptor.FieldDescriptorProto, fieldName string) {
	base := exportedTypeName(field)

	var pre, call string
	switch {
	case field.Type == descriptor.TypeMessage && field.IsRepeated():
		elemType := qualifiedGoTypeStr(packageNamePrefix, field.TypeName)
		call = fmt.Sprintf("wire.AppendRepeatedMessage(d, &m.%s, func() *%s { return &%s{} })", fieldName, elemType, elemType)
	case field.Type == descriptor.TypeMessage:
		elemType := qualifiedGoTypeStr(packageNamePrefix, field.TypeName)
		hasArg := "nil"
		if !g.Options.NoHasFields {
			hasArg = "&m.Has" + fieldName
		}
		pre = fmt.Sprintf("\t\t\tif m.%s == nil {\n\t\t\t\tm.%s = &%s{}\n\t\t\t}\n", fieldName, fieldName, elemType)
		call = fmt.Sprintf("wire.GetMessage(d, m.%s, %s)", fieldName, hasArg)
	case field.IsRepeated():
		call = fmt.Sprintf("wire.AppendRepeated%s(d, &m.%s)", base, fieldName)
	default:
		hasArg := "nil"
		if !g.Options.NoHasFields {
			hasArg = "&m.Has" + fieldName
		}
		call = fmt.Sprintf("wire.Get%s(d, &m.%s, %s)", base, fieldName, hasArg)
	}

	w.WriteString(fmt.Sprintf("\t\tcase %d:\n%s\t\t\tif err := %s; err != nil {\n\t\t\t\treturn err\n\t\t\t}\n", field.Number, pre, call))
}

// writeAsPacked applies the three-way packed-selection rule from the
// original: a global --packed/--no-packed flag overrides every field;
// absent either, the field's own FieldOptions.packed decides.
func (g *Generator) writeAsPacked(field *descriptor.FieldDescriptorProto) bool {
	if g.Options.Packed {
		return true
	}
	if g.Options.NoPacked {
		return false
	}
	packedField := field.HasOptions && field.Options != nil && field.Options.HasPacked && field.Options.Packed
	return packedField && field.CanBePacked()
}

func (g *Generator) generateEnum(p *printer, outerPrefix string, enum *descriptor.EnumDescriptorProto) {
	goName := outerPrefix + goIdent(enum.Name)
	p.P("type ", goName, " int32")
	p.P()
	if len(enum.Value) > 0 {
		p.P("const (")
		for _, v := range enum.Value {
			p.P("\t", goName, "_", goIdent(v.Name), " ", goName, " = ", fmt.Sprint(v.Number))
		}
		p.P(")")
		p.P()
	}
}

// goIdent converts a proto identifier (snake_case, possibly with
// leading/trailing underscores) into an exported Go identifier, the way
// protoc-gen-go camel-cases field and type names.
func goIdent(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
