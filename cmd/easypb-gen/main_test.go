package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bulat-Ziganshin/EasyProtoBuf/descriptor"
	"github.com/Bulat-Ziganshin/EasyProtoBuf/wire"
)

func TestPackageNameForFallsBackToMain(t *testing.T) {
	set := &descriptor.FileDescriptorSet{
		File: []*descriptor.FileDescriptorProto{{Name: "a.proto", HasName: true}},
	}
	assert.Equal(t, "main", packageNameFor(set))
}

func TestPackageNameForUsesLastPathSegment(t *testing.T) {
	set := &descriptor.FileDescriptorSet{
		File: []*descriptor.FileDescriptorProto{
			{Name: "a.proto", HasName: true, Package: "acme.widgets", HasPackage: true},
		},
	}
	assert.Equal(t, "widgets", packageNameFor(set))
}

func TestRunGeneratesFromDescriptorSetFile(t *testing.T) {
	msg := &descriptor.DescriptorProto{
		Name: "Point", HasName: true,
		Field: []*descriptor.FieldDescriptorProto{
			{Name: "x", HasName: true, Number: 1, HasNumber: true,
				Label: descriptor.LabelOptional, HasLabel: true, Type: descriptor.TypeInt32, HasType: true},
		},
	}
	set := &descriptor.FileDescriptorSet{
		File: []*descriptor.FileDescriptorProto{
			{Name: "point.proto", HasName: true, Package: "geo", HasPackage: true,
				MessageType: []*descriptor.DescriptorProto{msg}},
		},
	}
	buf := wire.Marshal(set)

	path := writeTempDescriptorSet(t, buf)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "package geo")
	assert.Contains(t, out.String(), "type Point struct {")
}

func writeTempDescriptorSet(t *testing.T, buf []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "descriptor-set-*.bin")
	require.NoError(t, err)
	_, err = f.Write(buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
