package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bulat-Ziganshin/EasyProtoBuf/wire"
)

func TestFieldDescriptorRoundTrip(t *testing.T) {
	f := &FieldDescriptorProto{
		Name: "x", HasName: true,
		Number: 1, HasNumber: true,
		Label: LabelOptional, HasLabel: true,
		Type: TypeUint32, HasType: true,
	}
	encoded := wire.Marshal(f)

	got := &FieldDescriptorProto{}
	require.NoError(t, wire.Unmarshal(encoded, got))
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, f.Number, got.Number)
	assert.Equal(t, f.Label, got.Label)
	assert.Equal(t, f.Type, got.Type)
}

func TestFieldDescriptorMissingNameFails(t *testing.T) {
	f := &FieldDescriptorProto{Number: 1, HasNumber: true}
	encoded := wire.Marshal(f)

	got := &FieldDescriptorProto{}
	err := wire.Unmarshal(encoded, got)
	require.Error(t, err)
	var fe *wire.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "FieldDescriptorProto.name", fe.Field)
}

func TestMessageDescriptorWithNestedField(t *testing.T) {
	msg := &DescriptorProto{
		Name: "MainMessage", HasName: true,
		Field: []*FieldDescriptorProto{
			{Name: "x", HasName: true, Number: 1, HasNumber: true,
				Label: LabelOptional, HasLabel: true, Type: TypeUint32, HasType: true},
			{Name: "y", HasName: true, Number: 2, HasNumber: true,
				Label: LabelRequired, HasLabel: true, Type: TypeString, HasType: true},
		},
	}
	encoded := wire.Marshal(msg)

	got := &DescriptorProto{}
	require.NoError(t, wire.Unmarshal(encoded, got))
	require.Len(t, got.Field, 2)
	assert.True(t, got.Field[1].IsRequired())
	assert.False(t, got.Field[0].IsRepeated())
}

func TestFileDescriptorSetRoundTrip(t *testing.T) {
	set := &FileDescriptorSet{
		File: []*FileDescriptorProto{
			{Name: "a.proto", HasName: true, Package: "pkg", HasPackage: true},
		},
	}
	encoded := wire.Marshal(set)

	got := &FileDescriptorSet{}
	require.NoError(t, wire.Unmarshal(encoded, got))
	require.Len(t, got.File, 1)
	assert.Equal(t, "a.proto", got.File[0].Name)
	assert.Equal(t, "pkg", got.File[0].Package)
}

func TestCanBePacked(t *testing.T) {
	cases := []struct {
		f    FieldDescriptorProto
		want bool
	}{
		{FieldDescriptorProto{Label: LabelRepeated, Type: TypeInt32}, true},
		{FieldDescriptorProto{Label: LabelRepeated, Type: TypeString}, false},
		{FieldDescriptorProto{Label: LabelRepeated, Type: TypeMessage}, false},
		{FieldDescriptorProto{Label: LabelOptional, Type: TypeInt32}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.f.CanBePacked())
	}
}
