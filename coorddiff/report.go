package coorddiff

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/tsv"
)

// WriteText writes a human-readable report.  nameA and nameB identify the two
// inputs, usually by path.
func (r Report) WriteText(w io.Writer, nameA, nameB string) error {
	out := bufio.NewWriter(w)
	for _, e := range r.Entries {
		switch e.Status {
		case OnlyInA:
			fmt.Fprintf(out, "%s present only in %s\n", e.Name, nameA)
		case OnlyInB:
			fmt.Fprintf(out, "%s present only in %s\n", e.Name, nameB)
		case Differs:
			fmt.Fprintf(out, "Differences for %s:\n", e.Name)
			for _, d := range e.Pairs {
				fmt.Fprintf(out, "  Coordinates (%d, %d): %s has %d, %s has %d\n",
					d.Start, d.End, nameA, d.CountA, nameB, d.CountB)
			}
		}
	}
	if r.Equal() {
		fmt.Fprintln(out, "The two TSV files match exactly (ignoring ordering).")
	}
	return out.Flush()
}

// WriteTSV writes the report as tab-separated rows with the header
//
//   Name	Status	Start	End	CountA	CountB
//
// Names present in only one input produce a single row with "." in the
// coordinate and count columns.  An exact match produces only the header.
func (r Report) WriteTSV(w io.Writer) error {
	out := tsv.NewWriter(w)
	for _, col := range []string{"Name", "Status", "Start", "End", "CountA", "CountB"} {
		out.WriteString(col)
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, e := range r.Entries {
		if e.Status != Differs {
			out.WriteString(e.Name)
			out.WriteString(e.Status.String())
			for i := 0; i < 4; i++ {
				out.WriteString(".")
			}
			if err := out.EndLine(); err != nil {
				return err
			}
			continue
		}
		for _, d := range e.Pairs {
			out.WriteString(e.Name)
			out.WriteString(e.Status.String())
			out.WriteInt64(int64(d.Start))
			out.WriteInt64(int64(d.End))
			out.WriteInt64(int64(d.CountA))
			out.WriteInt64(int64(d.CountB))
			if err := out.EndLine(); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}
