package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bulat-Ziganshin/EasyProtoBuf/descriptor"
)

func fileSet(msg *descriptor.DescriptorProto) *descriptor.FileDescriptorSet {
	return &descriptor.FileDescriptorSet{
		File: []*descriptor.FileDescriptorProto{
			{
				Name: "test.proto", HasName: true,
				Package: "test", HasPackage: true,
				MessageType: []*descriptor.DescriptorProto{msg},
			},
		},
	}
}

// TestGenerateBasicMessage exercises the scenario from the spec's
// generator example: a message with an optional uint32 field "x" and a
// required string field "y".
func TestGenerateBasicMessage(t *testing.T) {
	msg := &descriptor.DescriptorProto{
		Name: "Basic", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "x", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeUint32, HasType: true},
			{Name: "y", HasName: true, Number: 2, HasNumber: true,
				Label: descriptor.LabelRequired, HasLabel: true, Type: descriptor.TypeString, HasType: true},
		},
	}

	g := &Generator{Options: DefaultOptions()}
	src, err := g.Generate("test", fileSet(msg))
	require.NoError(t, err)

	s := string(src)
	assert.Contains(t, s, "type Basic struct {")
	assert.Contains(t, s, "X uint32")
	assert.Contains(t, s, "Y string")
	assert.Contains(t, s, "HasX bool")
	assert.Contains(t, s, "func (m *Basic) Encode(e *wire.Encoder) {")
	assert.Contains(t, s, "e.PutUint32(1, m.X)")
	assert.Contains(t, s, "func (m *Basic) Decode(d *wire.Decoder) error {")
	assert.Contains(t, s, `wire.MissingRequiredField("Basic.y")`)
}

func TestGenerateRepeatedAndPackedFields(t *testing.T) {
	msg := &descriptor.DescriptorProto{
		Name: "Nums", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "values", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelRepeated, HasLabel: true, Type: descriptor.TypeInt32, HasType: true,
				Options: &descriptor.FieldOptions{Packed: true, HasPacked: true}, HasOptions: true},
		},
	}

	g := &Generator{Options: DefaultOptions()}
	src, err := g.Generate("test", fileSet(msg))
	require.NoError(t, err)

	s := string(src)
	assert.Contains(t, s, "Values []int32")
	assert.Contains(t, s, "e.PutPackedInt32(1, m.Values)")
	assert.Contains(t, s, "wire.AppendRepeatedInt32(d, &m.Values)")
}

func TestGenerateNestedMessage(t *testing.T) {
	inner := &descriptor.DescriptorProto{
		Name: "Inner", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "v", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeInt32, HasType: true},
		},
	}
	outer := &descriptor.DescriptorProto{
		Name: "Outer", HasName: true,
		NestedType: []*descriptor.DescriptorProto{inner},
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "inner", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeMessage, HasType: true,
				TypeName: ".test.Outer.Inner", HasTypeName: true},
		},
	}

	g := &Generator{Options: DefaultOptions()}
	src, err := g.Generate("test", fileSet(outer))
	require.NoError(t, err)

	s := string(src)
	assert.Contains(t, s, "type Outer struct {")
	assert.Contains(t, s, "type Outer_Inner struct {")
	assert.Contains(t, s, "Inner *Outer_Inner")
	assert.Contains(t, s, "wire.GetMessage(d, m.Inner, &m.HasInner)")
}

func TestGenerateDefaultValueConstructor(t *testing.T) {
	msg := &descriptor.DescriptorProto{
		Name: "Config", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "retries", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeInt32, HasType: true,
				DefaultValue: "3", HasDefaultValue: true},
			{Name: "name", HasName: true, Number: 2, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeString, HasType: true,
				DefaultValue: "worker", HasDefaultValue: true},
			{Name: "nickname", HasName: true, Number: 3, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeString, HasType: true},
		},
	}

	g := &Generator{Options: DefaultOptions()}
	src, err := g.Generate("test", fileSet(msg))
	require.NoError(t, err)

	s := string(src)
	assert.Contains(t, s, "func NewConfig() *Config {")
	assert.Contains(t, s, "Retries: 3,")
	assert.Contains(t, s, `Name:    "worker",`)
	assert.NotContains(t, s, "Nickname:")
}

func TestNoDefaultValuesSuppressesConstructor(t *testing.T) {
	msg := &descriptor.DescriptorProto{
		Name: "Config", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "retries", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeInt32, HasType: true,
				DefaultValue: "3", HasDefaultValue: true},
		},
	}

	opts := DefaultOptions()
	opts.NoDefaultValues = true
	g := &Generator{Options: opts}
	src, err := g.Generate("test", fileSet(msg))
	require.NoError(t, err)

	s := string(src)
	assert.NotContains(t, s, "NewConfig")
	assert.NotContains(t, s, "// default")
}

func TestGenerateNoHasFieldsImpliesNoRequired(t *testing.T) {
	msg := &descriptor.DescriptorProto{
		Name: "Basic", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "y", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelRequired, HasLabel: true, Type: descriptor.TypeString, HasType: true},
		},
	}
	opts := DefaultOptions()
	opts.NoHasFields = true
	g := &Generator{Options: opts}
	src, err := g.Generate("test", fileSet(msg))
	require.NoError(t, err)

	s := string(src)
	assert.NotContains(t, s, "HasY")
	assert.NotContains(t, s, "MissingRequiredField")
}
