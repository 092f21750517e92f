package util

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, path string) (string, error) {
	var got []byte
	err := ReadPath(vcontext.Background(), path, func(r io.Reader) (err error) {
		got, err = ioutil.ReadAll(r)
		return
	})
	return string(got), err
}

func TestReadPath(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	const data = "Name\tStart\tEnd\ngeneA\t10\t20\n"
	plain := filepath.Join(tempDir, "a.tsv")
	require.NoError(t, ioutil.WriteFile(plain, []byte(data), 0644))

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	compressed := filepath.Join(tempDir, "a.tsv.gz")
	require.NoError(t, ioutil.WriteFile(compressed, buf.Bytes(), 0644))

	got, err := readAll(t, plain)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	got, err = readAll(t, compressed)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadPathMissing(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(tempDir, "nonexistent.tsv")
	_, err := readAll(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSuggestColumn(t *testing.T) {
	tests := []struct {
		want string
		have []string
		got  string
	}{
		{"Name", []string{"name", "Start", "End"}, "name"},
		{"Start", []string{"Name", "start", "End"}, "start"},
		{"End", []string{"Chrom", "Position"}, ""},
		{"Name", nil, ""},
		{"End", []string{"Ends", "end"}, "Ends"},
	}
	for _, test := range tests {
		assert.Equal(t, test.got, SuggestColumn(test.want, test.have), "want=%s have=%v", test.want, test.have)
	}
}
