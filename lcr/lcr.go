package lcr

import (
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bioflat/encoding/fasta"
)

// Region is a reported interval together with its bases.
type Region struct {
	Interval
	Seq string
}

// FindAll runs Find on every record of s and merges the intervals of each
// record.  Regions are returned in record order, then by position.
func FindAll(s *fasta.Sequence, opts Opts) ([]Region, error) {
	var regions []Region
	for _, rec := range s.Records() {
		intervals, err := Find(rec.Name, rec.Seq, opts)
		if err != nil {
			return nil, err
		}
		for _, iv := range Merge(intervals) {
			regions = append(regions, Region{Interval: iv, Seq: rec.Seq[iv.Start : iv.End+1]})
		}
		log.Debug.Printf("%s: %d bp, %d low-complexity regions", rec.Name, len(rec.Seq), len(intervals))
	}
	return regions, nil
}

// WriteTSV writes regions as tab-separated rows with the header
//
//   Name	Start	End	String
func WriteTSV(w io.Writer, regions []Region) error {
	out := tsv.NewWriter(w)
	for _, col := range []string{"Name", "Start", "End", "String"} {
		out.WriteString(col)
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, r := range regions {
		out.WriteString(r.Name)
		out.WriteInt64(int64(r.Start))
		out.WriteInt64(int64(r.End))
		out.WriteString(r.Seq)
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
