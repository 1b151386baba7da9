// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command easypb-gen reads one or more encoded FileDescriptorSet files and
// writes generated Go source implementing their messages' wire encoding to
// standard output.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"golang.org/x/sync/errgroup"

	"github.com/Bulat-Ziganshin/EasyProtoBuf/codegen"
	"github.com/Bulat-Ziganshin/EasyProtoBuf/descriptor"
	"github.com/Bulat-Ziganshin/EasyProtoBuf/wire"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := codegen.DefaultOptions()
	var (
		groff bool
		bash  bool
	)

	cmd := &cobra.Command{
		Use:   "easypb-gen [flags] descriptor-set-file...",
		Short: "Generate Go record/encode/decode source from descriptor sets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Normalize()

			if groff {
				return genManPage(cmd)
			}
			if bash {
				return cmd.Root().GenBashCompletion(os.Stdout)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.NoClass, "no-class", opts.NoClass, "suppress the generated struct declaration")
	flags.BoolVar(&opts.NoDecoder, "no-decoder", opts.NoDecoder, "suppress the generated Decode method")
	flags.BoolVar(&opts.NoEncoder, "no-encoder", opts.NoEncoder, "suppress the generated Encode method")
	flags.BoolVar(&opts.NoHasFields, "no-has-fields", opts.NoHasFields, "suppress Has* presence fields (implies --no-required)")
	flags.BoolVar(&opts.NoRequired, "no-required", opts.NoRequired, "suppress required-field checks in Decode")
	flags.BoolVar(&opts.NoDefaultValues, "no-default-values", opts.NoDefaultValues, "ignore schema default values (no default comments, no New<Message> constructors)")
	flags.BoolVar(&opts.Packed, "packed", opts.Packed, "force all packable repeated scalar fields to use packed encoding")
	flags.BoolVar(&opts.NoPacked, "no-packed", opts.NoPacked, "force all repeated scalar fields to use unpacked encoding")
	flags.StringVar(&opts.StringType, "string-type", opts.StringType, "Go type used for string fields")
	flags.StringVar(&opts.RepeatedType, "repeated-type", opts.RepeatedType, "prefix used to build the Go type of repeated fields")
	flags.BoolVar(&groff, "groff", false, "print a groff-formatted man page and exit")
	flags.BoolVar(&bash, "bash", false, "print a bash completion script and exit")

	return cmd
}

func run(cmd *cobra.Command, paths []string, opts codegen.Options) error {
	outputs := make([][]byte, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			out, err := generateOne(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("generation failed")
		return err
	}

	w := cmd.OutOrStdout()
	for _, out := range outputs {
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func generateOne(path string, opts codegen.Options) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	set := &descriptor.FileDescriptorSet{}
	if err := wire.Unmarshal(buf, set); err != nil {
		return nil, fmt.Errorf("decoding descriptor set: %w", err)
	}

	packageName := packageNameFor(set)
	gen := &codegen.Generator{Options: opts}
	out, err := gen.Generate(packageName, set)
	if err != nil {
		return nil, fmt.Errorf("generating source: %w", err)
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "is a proto2 group, which is not supported") {
			log.WithField("file", path).Warn(strings.TrimSpace(strings.TrimPrefix(line, "//")))
		}
	}

	return out, nil
}

// packageNameFor derives a Go package name from the first file's proto
// package, falling back to "main" when none is declared.
func packageNameFor(set *descriptor.FileDescriptorSet) string {
	for _, f := range set.File {
		if f.Package != "" {
			parts := strings.Split(f.Package, ".")
			return parts[len(parts)-1]
		}
	}
	return "main"
}

func genManPage(cmd *cobra.Command) error {
	header := &doc.GenManHeader{
		Title:   "EASYPB-GEN",
		Section: "1",
	}
	return doc.GenMan(cmd.Root(), header, os.Stdout)
}
