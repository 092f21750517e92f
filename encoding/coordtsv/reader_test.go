package coordtsv_test

import (
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioflat/encoding/coordtsv"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		data string
		want []coordtsv.Record
	}{
		{
			"Name\tStart\tEnd\ngeneA\t10\t20\ngeneA\t10\t20\ngeneB\t1\t5\n",
			[]coordtsv.Record{{"geneA", 10, 20}, {"geneA", 10, 20}, {"geneB", 1, 5}},
		},
		{
			// Columns in any order; extra columns ignored.
			"End\tChrom\tName\tStart\tScore\n20\tchr1\tgeneA\t10\t0.5\n",
			[]coordtsv.Record{{"geneA", 10, 20}},
		},
		{
			"Name\tStart\tEnd\ngeneA\t-3\t+7\n\ngeneB\t 4 \t8\n",
			[]coordtsv.Record{{"geneA", -3, 7}, {"geneB", 4, 8}},
		},
		{
			// The last of repeated columns wins.
			"Name\tStart\tEnd\tStart\ngeneA\t1\t2\t5\n",
			[]coordtsv.Record{{"geneA", 5, 2}},
		},
		{"Name\tStart\tEnd\n", nil},
	}
	for _, test := range tests {
		r, err := coordtsv.NewReader(strings.NewReader(test.data), "test.tsv")
		require.NoError(t, err)
		got, err := r.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "data=%q", test.data)
	}
}

func TestReadEOF(t *testing.T) {
	r, err := coordtsv.NewReader(strings.NewReader("Name\tStart\tEnd\ngeneA\t1\t2\n"), "test.tsv")
	require.NoError(t, err)
	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, coordtsv.Record{Name: "geneA", Start: 1, End: 2}, rec)
	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestHeaderErrors(t *testing.T) {
	tests := []struct {
		data    string
		wantMsg []string
	}{
		{"", []string{"test.tsv", "missing header row"}},
		{"name\tStart\tEnd\n", []string{"test.tsv", `no "Name" column`, `did you mean "name"`}},
		{"Name\tBegin\tEnd\n", []string{`no "Start" column`}},
		{"Name\tStart\tStop\n", []string{`no "End" column`}},
	}
	for _, test := range tests {
		_, err := coordtsv.NewReader(strings.NewReader(test.data), "test.tsv")
		require.Error(t, err, "data=%q", test.data)
		assert.True(t, errors.Is(errors.Invalid, err), "err=%v", err)
		for _, msg := range test.wantMsg {
			assert.Contains(t, err.Error(), msg)
		}
	}
}

func TestRowErrors(t *testing.T) {
	tests := []struct {
		data    string
		wantMsg []string
	}{
		{"Name\tStart\tEnd\ngeneA\t1\t2\ngeneB\tx\t2\n", []string{"test.tsv:3", "Start", `"x" is not an integer`}},
		{"Name\tStart\tEnd\ngeneA\t1\t2.5\n", []string{"test.tsv:2", "End", `"2.5"`}},
		{"Name\tStart\tEnd\ngeneA\t1\n", []string{"test.tsv:2", "expect at least 3 fields, found 2"}},
		{"Name\tStart\tEnd\ngeneA\t1\t99999999999999999999\n", []string{"test.tsv:2", "End", "out of range"}},
		{"Name\tStart\tEnd\tStart\ngeneA\t1\t2\n", []string{"test.tsv:2", "expect at least 4 fields, found 3"}},
	}
	for _, test := range tests {
		r, err := coordtsv.NewReader(strings.NewReader(test.data), "test.tsv")
		require.NoError(t, err)
		_, err = r.ReadAll()
		require.Error(t, err, "data=%q", test.data)
		for _, msg := range test.wantMsg {
			assert.Contains(t, err.Error(), msg)
		}
	}
}

func TestReadFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(tempDir, "a.tsv")
	require.NoError(t, ioutil.WriteFile(path, []byte("Name\tStart\tEnd\ngeneA\t10\t20\n"), 0644))
	recs, err := coordtsv.ReadFile(vcontext.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []coordtsv.Record{{"geneA", 10, 20}}, recs)

	_, err = coordtsv.ReadFile(vcontext.Background(), filepath.Join(tempDir, "missing.tsv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.tsv")
}
