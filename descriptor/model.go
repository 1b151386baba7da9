// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package descriptor holds the subset of descriptor.proto's message set
// this code generator understands: files, messages, fields, enums,
// oneofs, and the handful of options the generator consults.
package descriptor

import "github.com/Bulat-Ziganshin/EasyProtoBuf/wire"

// Field type constants, matching FieldDescriptorProto.Type in
// descriptor.proto.
const (
	TypeDouble   = 1
	TypeFloat    = 2
	TypeInt64    = 3
	TypeUint64   = 4
	TypeInt32    = 5
	TypeFixed64  = 6
	TypeFixed32  = 7
	TypeBool     = 8
	TypeString   = 9
	TypeGroup    = 10
	TypeMessage  = 11
	TypeBytes    = 12
	TypeUint32   = 13
	TypeEnum     = 14
	TypeSfixed32 = 15
	TypeSfixed64 = 16
	TypeSint32   = 17
	TypeSint64   = 18
)

// Field label constants, matching FieldDescriptorProto.Label.
const (
	LabelOptional = 1
	LabelRequired = 2
	LabelRepeated = 3
)

// OneofDescriptorProto names one oneof group within a message. Only the
// group's name is parsed; fields' oneof_index is skipped, and the
// generator emits no oneof-specific accessors (spec Non-goal).
type OneofDescriptorProto struct {
	Name    string
	HasName bool
}

func (m *OneofDescriptorProto) Encode(e *wire.Encoder) {
	if m.HasName {
		_ = e.PutString(1, m.Name)
	}
}

func (m *OneofDescriptorProto) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.GetString(d, &m.Name, &m.HasName); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}

// EnumValueDescriptorProto is one named constant within an enum.
type EnumValueDescriptorProto struct {
	Name      string
	Number    int32
	HasName   bool
	HasNumber bool
}

func (m *EnumValueDescriptorProto) Encode(e *wire.Encoder) {
	if m.HasName {
		_ = e.PutString(1, m.Name)
	}
	if m.HasNumber {
		e.PutInt32(2, m.Number)
	}
}

func (m *EnumValueDescriptorProto) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.GetString(d, &m.Name, &m.HasName); err != nil {
				return err
			}
		case 2:
			if err := wire.GetInt32(d, &m.Number, &m.HasNumber); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}

// EnumDescriptorProto is a single enum type.
type EnumDescriptorProto struct {
	Name    string
	Value   []*EnumValueDescriptorProto
	HasName bool
}

func (m *EnumDescriptorProto) Encode(e *wire.Encoder) {
	if m.HasName {
		_ = e.PutString(1, m.Name)
	}
	for _, v := range m.Value {
		_ = e.PutMessage(2, v)
	}
}

func (m *EnumDescriptorProto) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.GetString(d, &m.Name, &m.HasName); err != nil {
				return err
			}
		case 2:
			if err := wire.AppendRepeatedMessage(d, &m.Value, func() *EnumValueDescriptorProto {
				return &EnumValueDescriptorProto{}
			}); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}

// FieldOptions carries the subset of FieldOptions this generator reads:
// whether a repeated scalar field was explicitly marked packed.
type FieldOptions struct {
	Packed    bool
	HasPacked bool
}

func (m *FieldOptions) Encode(e *wire.Encoder) {
	if m.HasPacked {
		e.PutBool(2, m.Packed)
	}
}

func (m *FieldOptions) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 2:
			if err := wire.GetBool(d, &m.Packed, &m.HasPacked); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}

// FieldDescriptorProto describes a single message field.
type FieldDescriptorProto struct {
	Name         string
	Number       int32
	Label        int32
	Type         int32
	TypeName     string
	DefaultValue string
	Options      *FieldOptions

	HasName         bool
	HasNumber       bool
	HasLabel        bool
	HasType         bool
	HasTypeName     bool
	HasDefaultValue bool
	HasOptions      bool
}

func (m *FieldDescriptorProto) Encode(e *wire.Encoder) {
	if m.HasName {
		_ = e.PutString(1, m.Name)
	}
	if m.HasNumber {
		e.PutInt32(3, m.Number)
	}
	if m.HasLabel {
		e.PutEnum(4, m.Label)
	}
	if m.HasType {
		e.PutEnum(5, m.Type)
	}
	if m.HasTypeName {
		_ = e.PutString(6, m.TypeName)
	}
	if m.HasDefaultValue {
		_ = e.PutString(7, m.DefaultValue)
	}
	if m.HasOptions {
		_ = e.PutMessage(8, m.Options)
	}
}

func (m *FieldDescriptorProto) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.GetString(d, &m.Name, &m.HasName); err != nil {
				return err
			}
		case 3:
			if err := wire.GetInt32(d, &m.Number, &m.HasNumber); err != nil {
				return err
			}
		case 4:
			if err := wire.GetEnum(d, &m.Label, &m.HasLabel); err != nil {
				return err
			}
		case 5:
			if err := wire.GetEnum(d, &m.Type, &m.HasType); err != nil {
				return err
			}
		case 6:
			if err := wire.GetString(d, &m.TypeName, &m.HasTypeName); err != nil {
				return err
			}
		case 7:
			if err := wire.GetString(d, &m.DefaultValue, &m.HasDefaultValue); err != nil {
				return err
			}
		case 8:
			if m.Options == nil {
				m.Options = &FieldOptions{}
			}
			if err := wire.GetMessage(d, m.Options, &m.HasOptions); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	if !m.HasName {
		return wire.MissingRequiredField("FieldDescriptorProto.name")
	}
	return nil
}

// IsRepeated reports whether this field repeats.
func (m *FieldDescriptorProto) IsRepeated() bool { return m.Label == LabelRepeated }

// IsRequired reports whether this field is required.
func (m *FieldDescriptorProto) IsRequired() bool { return m.Label == LabelRequired }

// CanBePacked reports whether this field's type is eligible for packed
// encoding: a repeated scalar that is neither a string, bytes, nor a
// message (nor a group).
func (m *FieldDescriptorProto) CanBePacked() bool {
	if !m.IsRepeated() {
		return false
	}
	switch m.Type {
	case TypeString, TypeBytes, TypeMessage, TypeGroup:
		return false
	default:
		return true
	}
}

// MessageOptions carries the subset of MessageOptions this generator
// reads. map_entry is parsed for completeness but the generator does not
// consult it: a synthetic map-entry message is generated like any other
// nested message, and the map field as a repeated message field.
type MessageOptions struct {
	MapEntry    bool
	HasMapEntry bool
}

func (m *MessageOptions) Encode(e *wire.Encoder) {
	if m.HasMapEntry {
		e.PutBool(7, m.MapEntry)
	}
}

func (m *MessageOptions) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 7:
			if err := wire.GetBool(d, &m.MapEntry, &m.HasMapEntry); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}

// DescriptorProto describes a single message type.
type DescriptorProto struct {
	Name       string
	Field      []*FieldDescriptorProto
	NestedType []*DescriptorProto
	EnumType   []*EnumDescriptorProto
	OneofDecl  []*OneofDescriptorProto
	Options    *MessageOptions

	HasName    bool
	HasOptions bool
}

func (m *DescriptorProto) Encode(e *wire.Encoder) {
	if m.HasName {
		_ = e.PutString(1, m.Name)
	}
	for _, f := range m.Field {
		_ = e.PutMessage(2, f)
	}
	for _, n := range m.NestedType {
		_ = e.PutMessage(3, n)
	}
	for _, en := range m.EnumType {
		_ = e.PutMessage(4, en)
	}
	if m.HasOptions {
		_ = e.PutMessage(7, m.Options)
	}
	for _, o := range m.OneofDecl {
		_ = e.PutMessage(8, o)
	}
}

func (m *DescriptorProto) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.GetString(d, &m.Name, &m.HasName); err != nil {
				return err
			}
		case 2:
			if err := wire.AppendRepeatedMessage(d, &m.Field, func() *FieldDescriptorProto {
				return &FieldDescriptorProto{}
			}); err != nil {
				return err
			}
		case 3:
			if err := wire.AppendRepeatedMessage(d, &m.NestedType, func() *DescriptorProto {
				return &DescriptorProto{}
			}); err != nil {
				return err
			}
		case 4:
			if err := wire.AppendRepeatedMessage(d, &m.EnumType, func() *EnumDescriptorProto {
				return &EnumDescriptorProto{}
			}); err != nil {
				return err
			}
		case 7:
			if m.Options == nil {
				m.Options = &MessageOptions{}
			}
			if err := wire.GetMessage(d, m.Options, &m.HasOptions); err != nil {
				return err
			}
		case 8:
			if err := wire.AppendRepeatedMessage(d, &m.OneofDecl, func() *OneofDescriptorProto {
				return &OneofDescriptorProto{}
			}); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	if !m.HasName {
		return wire.MissingRequiredField("DescriptorProto.name")
	}
	return nil
}

// FileDescriptorProto describes a single .proto source file.
type FileDescriptorProto struct {
	Name        string
	Package     string
	MessageType []*DescriptorProto
	EnumType    []*EnumDescriptorProto

	HasName    bool
	HasPackage bool
}

func (m *FileDescriptorProto) Encode(e *wire.Encoder) {
	if m.HasName {
		_ = e.PutString(1, m.Name)
	}
	if m.HasPackage {
		_ = e.PutString(2, m.Package)
	}
	for _, msg := range m.MessageType {
		_ = e.PutMessage(4, msg)
	}
	for _, en := range m.EnumType {
		_ = e.PutMessage(5, en)
	}
}

func (m *FileDescriptorProto) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.GetString(d, &m.Name, &m.HasName); err != nil {
				return err
			}
		case 2:
			if err := wire.GetString(d, &m.Package, &m.HasPackage); err != nil {
				return err
			}
		case 4:
			if err := wire.AppendRepeatedMessage(d, &m.MessageType, func() *DescriptorProto {
				return &DescriptorProto{}
			}); err != nil {
				return err
			}
		case 5:
			if err := wire.AppendRepeatedMessage(d, &m.EnumType, func() *EnumDescriptorProto {
				return &EnumDescriptorProto{}
			}); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}

// FileDescriptorSet bundles every FileDescriptorProto a generator run
// was asked to process -- the top-level message the CLI expects each
// input file to contain.
type FileDescriptorSet struct {
	File []*FileDescriptorProto
}

func (m *FileDescriptorSet) Encode(e *wire.Encoder) {
	for _, f := range m.File {
		_ = e.PutMessage(1, f)
	}
}

func (m *FileDescriptorSet) Decode(d *wire.Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			if err := wire.AppendRepeatedMessage(d, &m.File, func() *FileDescriptorProto {
				return &FileDescriptorProto{}
			}); err != nil {
				return err
			}
		default:
			if err := d.SkipField(); err != nil {
				return err
			}
		}
	}
	return nil
}
