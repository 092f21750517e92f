package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioflat/lcr"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
)

func TestParseArgs(t *testing.T) {
	a, err := parseArgs([]string{"x.fa"}, "out.tsv", lcr.DefaultOpts)
	expect.NoError(t, err)
	expect.EQ(t, a, args{path: "x.fa", outPath: "out.tsv", opts: lcr.DefaultOpts})

	bad := lcr.DefaultOpts
	bad.K = lcr.MaxK + 1
	for _, test := range []struct {
		positional []string
		opts       lcr.Opts
	}{
		{nil, lcr.DefaultOpts},
		{[]string{"x.fa", "y.fa"}, lcr.DefaultOpts},
		{[]string{"x.fa"}, bad},
		{[]string{"x.fa"}, lcr.Opts{K: 7, Threshold: 0.6, Window: 0}},
	} {
		_, err := parseArgs(test.positional, "", test.opts)
		_, ok := err.(usageError)
		expect.True(t, ok, "args=%v opts=%+v err=%v", test.positional, test.opts, err)
	}
}

func TestRun(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	in := filepath.Join(tempDir, "in.fa")
	expect.NoError(t, ioutil.WriteFile(in, []byte(
		">chr1 desc\nACGTTGCCAA\naaaaaaaa\n>chr2\nACGTTGCAAGCTTCGA\n>chr3\nAAAAAAAAAANAAAAAAAAAA\n"), 0644))
	want := "Name\tStart\tEnd\tString\n" +
		"chr1\t8\t17\tAAaaaaaaaa\n" +
		"chr3\t0\t9\tAAAAAAAAAA\n" +
		"chr3\t11\t20\tAAAAAAAAAA\n"

	ctx := vcontext.Background()
	var out bytes.Buffer
	expect.NoError(t, run(ctx, args{path: in, opts: lcr.DefaultOpts}, &out))
	expect.EQ(t, out.String(), want)

	outPath := filepath.Join(tempDir, "out.tsv")
	out.Reset()
	expect.NoError(t, run(ctx, args{path: in, outPath: outPath, opts: lcr.DefaultOpts}, &out))
	expect.EQ(t, out.Len(), 0)
	data, err := ioutil.ReadFile(outPath)
	expect.NoError(t, err)
	expect.EQ(t, string(data), want)

	err = run(ctx, args{path: filepath.Join(tempDir, "missing.fa"), opts: lcr.DefaultOpts}, &out)
	expect.NotNil(t, err)
}
