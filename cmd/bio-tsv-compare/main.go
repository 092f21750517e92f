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

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioflat/coorddiff"
)

var (
	format     = flag.String("format", "text", "Report format; 'text' and 'tsv' supported")
	exitStatus = flag.Bool("exit-status", false, "Exit with status 1 if the files differ")
)

type args struct {
	pathA, pathB string
	format       string
	exitStatus   bool
}

// usageError is returned by parseArgs for malformed command lines.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func parseArgs(positional []string, format string, exitStatus bool) (args, error) {
	if len(positional) != 2 {
		return args{}, usageError{fmt.Sprintf("expect two file arguments, but got %d", len(positional))}
	}
	if format != "text" && format != "tsv" {
		return args{}, usageError{fmt.Sprintf("unknown -format %q", format)}
	}
	return args{pathA: positional[0], pathB: positional[1], format: format, exitStatus: exitStatus}, nil
}

// run writes the report to w.  It returns whether the files differ.
func run(ctx context.Context, a args, w io.Writer) (bool, error) {
	r, err := coorddiff.CompareFiles(ctx, a.pathA, a.pathB)
	if err != nil {
		return false, err
	}
	switch a.format {
	case "tsv":
		err = r.WriteTSV(w)
	default:
		err = r.WriteText(w, a.pathA, a.pathB)
	}
	return !r.Equal(), err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] file1.tsv file2.tsv\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	a, err := parseArgs(flag.Args(), *format, *exitStatus)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		shutdown()
		os.Exit(1)
	}
	differ, err := run(vcontext.Background(), a, os.Stdout)
	if err != nil {
		log.Fatalf("bio-tsv-compare: %v", err)
	}
	if differ && a.exitStatus {
		shutdown()
		os.Exit(1)
	}
}
