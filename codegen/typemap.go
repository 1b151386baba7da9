// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"

	"github.com/Bulat-Ziganshin/EasyProtoBuf/descriptor"
)

// exportedTypeName returns the Go-exported scalar name used to build the
// wire package's Put*/Get*/AppendRepeated*/PutPacked* call for a field's
// type (e.g. "Int32", "Sint64", "Message").
func exportedTypeName(f *descriptor.FieldDescriptorProto) string {
	switch f.Type {
	case descriptor.TypeDouble:
		return "Double"
	case descriptor.TypeFloat:
		return "Float"
	case descriptor.TypeInt64:
		return "Int64"
	case descriptor.TypeUint64:
		return "Uint64"
	case descriptor.TypeInt32:
		return "Int32"
	case descriptor.TypeFixed64:
		return "Fixed64"
	case descriptor.TypeFixed32:
		return "Fixed32"
	case descriptor.TypeBool:
		return "Bool"
	case descriptor.TypeString:
		return "String"
	case descriptor.TypeMessage:
		return "Message"
	case descriptor.TypeBytes:
		return "Bytes"
	case descriptor.TypeUint32:
		return "Uint32"
	case descriptor.TypeEnum:
		return "Enum"
	case descriptor.TypeSfixed32:
		return "Sfixed32"
	case descriptor.TypeSfixed64:
		return "Sfixed64"
	case descriptor.TypeSint32:
		return "Sint32"
	case descriptor.TypeSint64:
		return "Sint64"
	default:
		return "?type"
	}
}

// qualifiedGoTypeStr returns the Go identifier for a fully qualified
// Protobuf message/enum type, analogous to the original's
// cpp_qualified_type_str: strip the leading ".package." prefix, then
// flatten the remaining "." separators with "_". Unlike the C++
// original, the enclosing message's own name prefix is NOT additionally
// stripped: C++ nested types are lexically scoped inside their
// enclosing struct, so a bare "Inner" resolves there, but this
// generator flattens nested messages into top-level Go declarations
// named "Outer_Inner" (protoc-gen-go's convention), so the full
// flattened name must be kept.
func qualifiedGoTypeStr(packageNamePrefix, messageType string) string {
	if strings.HasPrefix(messageType, packageNamePrefix) {
		messageType = messageType[len(packageNamePrefix):]
	}
	return strings.ReplaceAll(messageType, ".", "_")
}

// baseGoTypeStr returns the Go type for a field's base type, i.e. before
// a repeated field is wrapped in a slice.
func baseGoTypeStr(packageNamePrefix string, f *descriptor.FieldDescriptorProto, opt *Options) string {
	switch f.Type {
	case descriptor.TypeInt32, descriptor.TypeSint32, descriptor.TypeSfixed32:
		return "int32"
	case descriptor.TypeInt64, descriptor.TypeSint64, descriptor.TypeSfixed64:
		return "int64"
	case descriptor.TypeUint32, descriptor.TypeFixed32:
		return "uint32"
	case descriptor.TypeUint64, descriptor.TypeFixed64:
		return "uint64"
	case descriptor.TypeDouble:
		return "float64"
	case descriptor.TypeFloat:
		return "float32"
	case descriptor.TypeBool:
		return "bool"
	case descriptor.TypeEnum:
		return "int32"
	case descriptor.TypeString:
		return opt.StringType
	case descriptor.TypeBytes:
		return "[]byte"
	case descriptor.TypeMessage:
		return "*" + qualifiedGoTypeStr(packageNamePrefix, f.TypeName)
	case descriptor.TypeGroup:
		return "?group"
	default:
		return "?type"
	}
}

// goTypeStr returns the full Go type for a field, wrapping repeated
// fields in the configured repeated-type container (a slice by default,
// matching --repeated-type's original purpose of picking a container).
func goTypeStr(packageNamePrefix string, f *descriptor.FieldDescriptorProto, opt *Options) string {
	base := baseGoTypeStr(packageNamePrefix, f, opt)
	if f.IsRepeated() {
		return opt.RepeatedType + base
	}
	return base
}

// defaultLiteral renders a field's raw schema default as a Go expression
// for use as a struct literal value: strings and bytes are quoted,
// everything else (numeric and boolean literals, and enum constants,
// which this generator represents as plain int32) is inserted verbatim,
// matching spec.md §4.6 point 1(c).
func defaultLiteral(f *descriptor.FieldDescriptorProto, raw string) string {
	switch f.Type {
	case descriptor.TypeString:
		return fmt.Sprintf("%q", raw)
	case descriptor.TypeBytes:
		return fmt.Sprintf("[]byte(%q)", raw)
	default:
		return raw
	}
}
