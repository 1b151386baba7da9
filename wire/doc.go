// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements the protocol-buffer binary wire format: varint
// and zigzag integer encoding, tagged field framing, and a typed
// Put*/Get* codec API that generated message types build on.
//
// Terms used throughout this package and its siblings:
//
//	tag              (field_number << 3) | wire_type, itself varint-encoded
//	wire type        one of varint, fixed64, length-delimited, fixed32;
//	                 start_group/end_group are recognized but unsupported
//	zigzag           a bijection from signed to unsigned integers that
//	                 keeps small-magnitude negative values compact
//	packed           a repeated scalar field encoded as one
//	                 length-delimited run of back-to-back values instead
//	                 of one tag-value pair per element
//	presence         whether a field was observed on the wire, tracked
//	                 through an optional *bool out-parameter on Get calls
package wire
