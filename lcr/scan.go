package lcr

import (
	"fmt"
	"math"
	"strings"
)

// Opts controls Find.
type Opts struct {
	// K is the k-mer length.  It must be in [1, MaxK].
	K int
	// Threshold is the per-k-mer cost T.  A region must also score at least
	// Threshold to be reported.
	Threshold float64
	// Window is the number of preceding k-mers over which repeats are
	// counted.
	Window int
}

// MaxK is the largest supported k-mer length.  The count tables hold 4^K
// entries.
const MaxK = 12

// DefaultOpts are the default parameters.
var DefaultOpts = Opts{
	K:         7,
	Threshold: 0.6,
	Window:    5000,
}

// Validate checks that the options are usable.
func (o Opts) Validate() error {
	if o.K < 1 || o.K > MaxK {
		return fmt.Errorf("k must be in [1, %d], but got %d", MaxK, o.K)
	}
	if o.Window < 1 {
		return fmt.Errorf("window must be positive, but got %d", o.Window)
	}
	if math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) {
		return fmt.Errorf("threshold must be finite, but got %v", o.Threshold)
	}
	return nil
}

// Interval is a low-complexity region of a named sequence.  Start and End are
// 0-based and inclusive.
type Interval struct {
	Name       string
	Start, End int
}

// base2 maps A, C, G, T (either case) to 0..3.
func base2(b byte) (uint32, bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	}
	return 0, false
}

// scanner holds the state of one Find call.
type scanner struct {
	opts Opts
	name string
	seq  string
	out  []Interval

	counts []int32 // per k-mer code, over the k-mers in ring
	last   []int32 // per k-mer code, start of its latest occurrence; sequences must be < 2^31 bp
	ring   []uint32
	head   int // index of the oldest k-mer in ring once it is full

	// floor is the smallest base a new run may start at: the start of the
	// current ACGT stretch, or just past the last reported region.
	floor int

	inRun     bool
	runStart  int
	score     float64
	bestScore float64
	bestEnd   int
}

// Find returns the low-complexity regions of seq, in increasing order of
// position.  Regions never overlap.
func Find(name, seq string, opts Opts) ([]Interval, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	k := opts.K
	if len(seq) < k {
		return nil, nil
	}
	s := &scanner{
		opts:   opts,
		name:   name,
		seq:    seq,
		counts: make([]int32, 1<<uint(2*k)),
		last:   make([]int32, 1<<uint(2*k)),
		ring:   make([]uint32, 0, minInt(opts.Window, len(seq))),
	}
	mask := uint32(1)<<uint(2*k) - 1
	var (
		code  uint32
		valid int
	)
	for i := 0; i < len(seq); i++ {
		v, ok := base2(seq[i])
		if !ok {
			s.closeRun()
			s.resetStretch(i + 1)
			code, valid = 0, 0
			continue
		}
		code = (code<<2 | v) & mask
		valid++
		if valid >= k {
			s.addKmer(code, i+1-k, i)
		}
	}
	s.closeRun()
	return s.out, nil
}

// addKmer processes the k-mer with the given code spanning [start, end].
func (s *scanner) addKmer(code uint32, start, end int) {
	prev := s.counts[code]
	delta := math.Log(float64(prev)+1) - s.opts.Threshold
	if !s.inRun && delta > 0 {
		s.inRun = true
		s.runStart = start
		if prev > 0 {
			// Include the earlier copy that this k-mer repeats.
			s.runStart = int(s.last[code])
		}
		if s.runStart < s.floor {
			s.runStart = s.floor
		}
		s.score = 0
		s.bestScore = math.Inf(-1)
	}

	s.counts[code]++
	s.last[code] = int32(start)
	if len(s.ring) < s.opts.Window {
		s.ring = append(s.ring, code)
	} else {
		s.counts[s.ring[s.head]]--
		s.ring[s.head] = code
		s.head = (s.head + 1) % len(s.ring)
	}

	if !s.inRun {
		return
	}
	s.score += delta
	if s.score > s.bestScore {
		s.bestScore = s.score
		s.bestEnd = end
	}
	if s.score <= 0 {
		s.closeRun()
	}
}

// closeRun ends the current run, reporting it if it is good enough.
func (s *scanner) closeRun() {
	if !s.inRun {
		return
	}
	s.inRun = false
	if s.bestScore <= 0 {
		return
	}
	region := strings.ToUpper(s.seq[s.runStart : s.bestEnd+1])
	if Score(region, s.opts.K, s.opts.Threshold) < s.opts.Threshold {
		return
	}
	s.out = append(s.out, Interval{Name: s.name, Start: s.runStart, End: s.bestEnd})
	s.floor = s.bestEnd + 1
}

// resetStretch forgets all k-mers; the next stretch starts at base start.
func (s *scanner) resetStretch(start int) {
	for _, code := range s.ring {
		s.counts[code]--
	}
	s.ring = s.ring[:0]
	s.head = 0
	if start > s.floor {
		s.floor = start
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
