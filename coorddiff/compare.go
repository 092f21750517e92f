package coorddiff

import (
	"context"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bioflat/encoding/coordtsv"
)

// Status describes how a name differs between the two inputs.
type Status int

const (
	// OnlyInA means the name appears only in the first input.
	OnlyInA Status = iota
	// OnlyInB means the name appears only in the second input.
	OnlyInB
	// Differs means the name appears in both, with different multisets.
	Differs
)

// String returns the value used in the status column of TSV reports.
func (s Status) String() string {
	switch s {
	case OnlyInA:
		return "only_a"
	case OnlyInB:
		return "only_b"
	case Differs:
		return "differs"
	}
	return "unknown"
}

// PairDiff is a pair whose count differs between the two inputs.
type PairDiff struct {
	Pair
	CountA, CountB int
}

// Entry describes one name that does not match.  Pairs is set only when
// Status is Differs.
type Entry struct {
	Name   string
	Status Status
	Pairs  []PairDiff
}

// Report is the result of comparing two groups.  Entries are sorted by name.
type Report struct {
	Entries []Entry
}

// Equal is true if the two inputs matched exactly.
func (r Report) Equal() bool {
	return len(r.Entries) == 0
}

// Compare compares a against b.
func Compare(a, b Group) Report {
	union := Group{}
	for name, m := range a {
		union[name] = m
	}
	for name, m := range b {
		union[name] = m
	}

	var r Report
	for _, name := range union.Names() {
		ma, inA := a[name]
		mb, inB := b[name]
		switch {
		case !inB:
			r.Entries = append(r.Entries, Entry{Name: name, Status: OnlyInA})
		case !inA:
			r.Entries = append(r.Entries, Entry{Name: name, Status: OnlyInB})
		case !ma.Equal(mb):
			r.Entries = append(r.Entries, Entry{Name: name, Status: Differs, Pairs: diffPairs(ma, mb)})
		}
	}
	return r
}

// diffPairs lists, in sorted order, every pair whose counts in a and b differ.
func diffPairs(a, b Multiset) []PairDiff {
	union := Multiset{}
	for p := range a {
		union[p] = 1
	}
	for p := range b {
		union[p] = 1
	}
	var diffs []PairDiff
	for _, p := range union.Pairs() {
		if na, nb := a[p], b[p]; na != nb {
			diffs = append(diffs, PairDiff{p, na, nb})
		}
	}
	return diffs
}

// CompareFiles reads the records in pathA and pathB and compares them.  Both
// files are read completely before anything is compared.
func CompareFiles(ctx context.Context, pathA, pathB string) (Report, error) {
	recsA, err := coordtsv.ReadFile(ctx, pathA)
	if err != nil {
		return Report{}, err
	}
	recsB, err := coordtsv.ReadFile(ctx, pathB)
	if err != nil {
		return Report{}, err
	}
	r := Compare(NewGroup(recsA), NewGroup(recsB))
	log.Debug.Printf("compared %s (%d records) and %s (%d records): %d names differ",
		pathA, len(recsA), pathB, len(recsB), len(r.Entries))
	return r, nil
}
