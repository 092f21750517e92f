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
	"strconv"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioflat/encoding/fasta"
)

type args struct {
	path       string
	start, end int
}

// usageError is returned by parseArgs for malformed command lines.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func parseArgs(positional []string) (args, error) {
	if len(positional) != 3 {
		return args{}, usageError{fmt.Sprintf("expect file, start and end arguments, but got %d arguments", len(positional))}
	}
	a := args{path: positional[0]}
	var err error
	if a.start, err = strconv.Atoi(positional[1]); err != nil {
		return args{}, usageError{fmt.Sprintf("start: %q is not an integer", positional[1])}
	}
	if a.end, err = strconv.Atoi(positional[2]); err != nil {
		return args{}, usageError{fmt.Sprintf("end: %q is not an integer", positional[2])}
	}
	return a, nil
}

func run(ctx context.Context, a args, w io.Writer) error {
	s, err := fasta.NewFromPath(ctx, a.path)
	if err != nil {
		return err
	}
	log.Debug.Printf("%s: %d sequence records, %d bp", a.path, len(s.SeqNames()), s.Len())
	_, err = fmt.Fprintf(w, "%d bp\n%s\n", s.Len(), s.Slice(a.start, a.end))
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] file.fa start end\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	a, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		shutdown()
		os.Exit(1)
	}
	if err := run(vcontext.Background(), a, os.Stdout); err != nil {
		log.Fatalf("bio-fasta-slice: %v", err)
	}
}
