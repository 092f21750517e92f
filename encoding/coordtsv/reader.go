// Package coordtsv reads named coordinate records from tab-separated files.
// The file must start with a header row naming at least the columns "Name",
// "Start" and "End", in any order.  Other columns are ignored.  For example:
//
//   Name	Chrom	Start	End
//   geneA	chr1	10	20
//   geneB	chr2	5	9
package coordtsv

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bioflat/util"
)

// Names of the required header columns.
const (
	NameColumn  = "Name"
	StartColumn = "Start"
	EndColumn   = "End"
)

// Record is one data row.
type Record struct {
	Name  string
	Start int
	End   int
}

// Reader reads Records from a TSV stream.  Thread compatible.
type Reader struct {
	r    *tsv.Reader
	name string // file name used in error messages
	line int    // 1-based line number of the last row read, counting the header

	nameCol, startCol, endCol int
	minFields                 int
}

// NewReader reads the header row from in and returns a Reader positioned at the
// first data row.  name identifies the input in error messages.
func NewReader(in io.Reader, name string) (*Reader, error) {
	r := &Reader{r: tsv.NewReader(in), name: name}
	// Rows may be ragged; short rows are reported by Read.
	r.r.FieldsPerRecord = -1
	r.r.LazyQuotes = true
	header, err := r.r.Reader.Read()
	if err == io.EOF {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("%s: missing header row", name))
	}
	if err != nil {
		return nil, errors.E(err, fmt.Sprintf("%s: read header", name))
	}
	r.line = 1
	// A repeated column name refers to its last occurrence.
	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[col] = i
	}
	for _, c := range []struct {
		name string
		idx  *int
	}{
		{NameColumn, &r.nameCol},
		{StartColumn, &r.startCol},
		{EndColumn, &r.endCol},
	} {
		i, ok := cols[c.name]
		if !ok {
			msg := fmt.Sprintf("%s: header has no %q column", name, c.name)
			if s := util.SuggestColumn(c.name, header); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			return nil, errors.E(errors.Invalid, msg)
		}
		*c.idx = i
		if i+1 > r.minFields {
			r.minFields = i + 1
		}
	}
	return r, nil
}

// Read returns the next record.  It returns io.EOF after the last row.  Errors
// name the input and the line of the offending row.
func (r *Reader) Read() (Record, error) {
	row, err := r.r.Reader.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		// csv.ParseError carries its own line number.
		return Record{}, errors.E(err, r.name)
	}
	r.line, _ = r.r.Reader.FieldPos(0)
	if len(row) < r.minFields {
		return Record{}, errors.E(errors.Invalid,
			fmt.Sprintf("%s:%d: expect at least %d fields, found %d", r.name, r.line, r.minFields, len(row)))
	}
	rec := Record{Name: row[r.nameCol]}
	if rec.Start, err = r.parseInt(StartColumn, row[r.startCol]); err != nil {
		return Record{}, err
	}
	if rec.End, err = r.parseInt(EndColumn, row[r.endCol]); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *Reader) parseInt(col, val string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(val))
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return 0, errors.E(errors.Invalid,
			fmt.Sprintf("%s:%d: column %s: %q is out of range", r.name, r.line, col, val))
	}
	if err != nil {
		return 0, errors.E(errors.Invalid,
			fmt.Sprintf("%s:%d: column %s: %q is not an integer", r.name, r.line, col, val))
	}
	return v, nil
}

// ReadAll reads the remaining records.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// ReadFile reads all the records in path.  Gzipped files are decompressed.
func ReadFile(ctx context.Context, path string) (recs []Record, err error) {
	err = util.ReadPath(ctx, path, func(in io.Reader) error {
		r, e := NewReader(in, path)
		if e != nil {
			return e
		}
		recs, e = r.ReadAll()
		return e
	})
	if err != nil {
		return nil, err
	}
	log.Debug.Printf("%s: read %d records", path, len(recs))
	return recs, nil
}
