// Package fasta contains code for reading FASTA files as a single sequence.
// Briefly, FASTA files consist of a number of named sequences that may be
// interrupted by newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// This package treats every non-header line as part of one sequence, so the
// example above reads as "ACGTACGAGGACGCGACGT".  Callers that need the
// individual sequences can still get them, as views into the concatenation,
// from Sequence.Records.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/grailbio/bioflat/util"
	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// Sequence is the concatenation of all sequence lines of a FASTA file.
type Sequence struct {
	seq      string
	seqNames []string
	records  []recordSpan
}

// Record is one named sequence of a FASTA file.
type Record struct {
	// Name is the first word of the header line, or "" for sequence lines that
	// precede the first header.
	Name string
	// Start is the offset of the record within the concatenated sequence.
	Start int
	Seq   string
}

type recordSpan struct {
	name       string
	start, end int
}

// scanLines is like bufio.ScanLines, but also treats a lone '\r' as a line
// terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// New reads all the FASTA data from the given reader into memory.  Lines
// starting with '>' are headers and are skipped; every other line, with its
// line terminator ("\n", "\r\n" or "\r") removed, is appended to the
// sequence.  Empty input yields an empty sequence.  Sequence lines must be
// ASCII, so that lengths and offsets count bases.
func New(r io.Reader) (*Sequence, error) {
	s := &Sequence{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	scanner.Split(scanLines)
	var (
		seq    strings.Builder
		cur    = recordSpan{start: -1}
		lineNo int
	)
	endRecord := func() {
		cur.end = seq.Len()
		if cur.start >= 0 {
			s.records = append(s.records, cur)
		}
	}
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) > 0 && line[0] == '>' {
			endRecord()
			var name string
			if fields := strings.Fields(string(line[1:])); len(fields) > 0 {
				name = fields[0]
			}
			s.seqNames = append(s.seqNames, name)
			cur = recordSpan{name: name, start: seq.Len()}
			continue
		}
		for i, b := range line {
			if b >= 0x80 {
				return nil, errors.Errorf("line %d, column %d: non-ASCII byte 0x%x in sequence", lineNo, i+1, b)
			}
		}
		if cur.start < 0 && len(line) > 0 {
			// Sequence before the first header.
			cur.start = 0
		}
		seq.Write(line)
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	endRecord()
	s.seq = seq.String()
	return s, nil
}

// NewFromPath is a wrapper for New that takes a path instead of an io.Reader.
// Gzipped files are decompressed.
func NewFromPath(ctx context.Context, path string) (s *Sequence, err error) {
	err = util.ReadPath(ctx, path, func(r io.Reader) error {
		var e error
		s, e = New(r)
		return e
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read FASTA %s", path)
	}
	return s, nil
}

// Len returns the length of the sequence in bases.
func (s *Sequence) Len() int {
	return len(s.seq)
}

// String returns the whole sequence.
func (s *Sequence) String() string {
	return s.seq
}

// SeqNames returns the header names seen while reading, in the order of
// appearance in the FASTA file.
func (s *Sequence) SeqNames() []string {
	return s.seqNames
}

// Records returns the records of the file in order of appearance.  A header
// with no sequence lines yields a record with an empty Seq.
func (s *Sequence) Records() []Record {
	recs := make([]Record, len(s.records))
	for i, r := range s.records {
		recs[i] = Record{Name: r.name, Start: r.start, Seq: s.seq[r.start:r.end]}
	}
	return recs
}

// Slice returns the substring [start, end) of the sequence.  See the Slice
// function for how out-of-range coordinates are handled.
func (s *Sequence) Slice(start, end int) string {
	return Slice(s.seq, start, end)
}
