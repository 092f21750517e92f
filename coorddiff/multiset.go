package coorddiff

import (
	"sort"

	"github.com/grailbio/bioflat/encoding/coordtsv"
)

// Pair is a (start, end) coordinate pair.
type Pair struct {
	Start, End int
}

// Less orders pairs by Start, then End.
func (p Pair) Less(o Pair) bool {
	if p.Start != o.Start {
		return p.Start < o.Start
	}
	return p.End < o.End
}

// Multiset counts occurrences of each pair.
type Multiset map[Pair]int

// Add increments the count of p.
func (m Multiset) Add(p Pair) {
	m[p]++
}

// Equal reports whether m and o hold the same pairs with the same counts.
func (m Multiset) Equal(o Multiset) bool {
	if len(m) != len(o) {
		return false
	}
	for p, n := range m {
		if o[p] != n {
			return false
		}
	}
	return true
}

// Pairs returns the distinct pairs in m, sorted.
func (m Multiset) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for p := range m {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Less(pairs[j]) })
	return pairs
}

// Group maps a name to the multiset of its coordinate pairs.
type Group map[string]Multiset

// NewGroup groups the given records by name.
func NewGroup(recs []coordtsv.Record) Group {
	g := Group{}
	for _, r := range recs {
		g.Add(r)
	}
	return g
}

// Add adds one record to the group.
func (g Group) Add(r coordtsv.Record) {
	m, ok := g[r.Name]
	if !ok {
		m = Multiset{}
		g[r.Name] = m
	}
	m.Add(Pair{r.Start, r.End})
}

// Names returns the names in g, sorted.
func (g Group) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
