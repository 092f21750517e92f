// Package util contains helpers shared by the flat-file tools.
package util

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// ReadPath opens path and calls fn with its contents. Paths with a gzip
// suffix (e.g. "foo.tsv.gz") are decompressed transparently. Any path scheme
// registered with github.com/grailbio/base/file is accepted. The file is
// closed before ReadPath returns.
func ReadPath(ctx context.Context, path string, fn func(r io.Reader) error) (err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return errors.E(err, "open", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, "close", path)
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, gerr := gzip.NewReader(reader)
		if gerr != nil {
			return errors.E(gerr, "gunzip", path)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	return fn(reader)
}
