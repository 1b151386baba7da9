// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"
)

// format renders a template string whose only placeholders are "{}"
// (the next positional argument) and "{N}" (argument number N,
// zero-indexed), mirroring the original's myformat. "{}" consumes
// args[cur] and advances cur; "{N}" reads args[N] and resets cur to
// N+1, so a later "{}" continues from just past the last index named
// explicitly.
func format(tmpl string, args ...string) string {
	var b strings.Builder
	cur := 0
	i := 0
	for i < len(tmpl) {
		if tmpl[i] == '{' && i+1 < len(tmpl) && tmpl[i+1] == '}' {
			b.WriteString(arg(args, cur))
			cur++
			i += 2
			continue
		}
		if tmpl[i] == '{' && i+2 < len(tmpl) && isDigit(tmpl[i+1]) && tmpl[i+2] == '}' {
			n := int(tmpl[i+1] - '0')
			b.WriteString(arg(args, n))
			cur = n + 1
			i += 3
			continue
		}
		b.WriteByte(tmpl[i])
		i++
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func arg(args []string, n int) string {
	if n < 0 || n >= len(args) {
		panic(fmt.Sprintf("codegen: not enough arguments for template (want #%d, have %d)", n, len(args)))
	}
	return args[n]
}
