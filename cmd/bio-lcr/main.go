// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

// See doc.go for documentation.

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioflat/encoding/fasta"
	"github.com/grailbio/bioflat/lcr"
)

var (
	kFlag     = flag.Int("k", lcr.DefaultOpts.K, "K-mer length")
	threshold = flag.Float64("threshold", lcr.DefaultOpts.Threshold, "Per-k-mer score threshold T")
	window    = flag.Int("window", lcr.DefaultOpts.Window, "Number of preceding k-mers over which repeats are counted")
	outPath   = flag.String("out", "", "Output TSV path.  If empty, write to stdout")
)

type args struct {
	path    string
	outPath string
	opts    lcr.Opts
}

// usageError is returned by parseArgs for malformed command lines.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func parseArgs(positional []string, outPath string, opts lcr.Opts) (args, error) {
	if len(positional) != 1 {
		return args{}, usageError{fmt.Sprintf("expect one FASTA file argument, but got %d", len(positional))}
	}
	if err := opts.Validate(); err != nil {
		return args{}, usageError{err.Error()}
	}
	return args{path: positional[0], outPath: outPath, opts: opts}, nil
}

// run writes the regions of a.path to a.outPath, or to stdout if a.outPath is
// empty.
func run(ctx context.Context, a args, stdout io.Writer) (err error) {
	s, err := fasta.NewFromPath(ctx, a.path)
	if err != nil {
		return err
	}
	regions, err := lcr.FindAll(s, a.opts)
	if err != nil {
		return err
	}
	log.Printf("%s: %d records, %d bp, %d low-complexity regions",
		a.path, len(s.Records()), s.Len(), len(regions))
	if a.outPath == "" {
		return lcr.WriteTSV(stdout, regions)
	}
	out, err := file.Create(ctx, a.outPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return lcr.WriteTSV(out.Writer(ctx), regions)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] file.fa\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	a, err := parseArgs(flag.Args(), *outPath, lcr.Opts{K: *kFlag, Threshold: *threshold, Window: *window})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		shutdown()
		os.Exit(1)
	}
	if err := run(vcontext.Background(), a, os.Stdout); err != nil {
		log.Fatalf("bio-lcr: %v", err)
	}
}
