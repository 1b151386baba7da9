// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

// Options controls what a Generator emits, mirroring the `option`
// global struct in the original codegen.cpp and the CLI flags
// main.cpp parses onto it.
type Options struct {
	NoClass         bool
	NoDecoder       bool
	NoEncoder       bool
	NoHasFields     bool
	NoRequired      bool
	NoDefaultValues bool
	Packed          bool
	NoPacked        bool
	StringType      string
	RepeatedType    string
}

// DefaultOptions returns the CLI's defaults: emit everything, represent
// strings/bytes as Go's native string/[]byte, repeated fields as slices.
func DefaultOptions() Options {
	return Options{
		StringType:   "string",
		RepeatedType: "[]",
	}
}

// Normalize applies the derived rule main.cpp's option parser encodes:
// suppressing has_* fields also suppresses required-field checks, since
// a generated Decode method with no has_* bookkeeping has nothing to
// test presence against.
func (o *Options) Normalize() {
	if o.NoHasFields {
		o.NoRequired = true
	}
}
