package differ

import "sort"

// OpTag identifies the kind of an alignment run.
type OpTag string

const (
	OpEqual   OpTag = "equal"
	OpReplace OpTag = "replace"
	OpDelete  OpTag = "delete"
	OpInsert  OpTag = "insert"
)

// OpCode is a maximal contiguous run of the edit script: a[I1:I2] relates to b[J1:J2].
type OpCode struct {
	Tag    OpTag
	I1, I2 int
	J1, J2 int
}

// Match is a block of Size equal elements starting at a[A] and b[B].
type Match struct {
	A, B, Size int
}

// SequenceMatcher aligns two sequences with the Ratcliff/Obershelp
// longest-matching-block algorithm. No element is ever treated as junk, so
// heavily repeated elements (empty strings included) take part in matching.
type SequenceMatcher[T comparable] struct {
	a, b           []T
	b2j            map[T][]int
	matchingBlocks []Match
	opCodes        []OpCode
}

// NewSequenceMatcher creates a matcher over a and b. The slices must not be
// modified while the matcher is in use.
func NewSequenceMatcher[T comparable](a, b []T) *SequenceMatcher[T] {
	m := &SequenceMatcher[T]{a: a, b: b}
	m.chainB()
	return m
}

// NewStringMatcher creates a matcher comparing two strings rune by rune.
func NewStringMatcher(a, b string) *SequenceMatcher[rune] {
	return NewSequenceMatcher([]rune(a), []rune(b))
}

func (m *SequenceMatcher[T]) chainB() {
	m.b2j = make(map[T][]int, len(m.b))
	for j, elt := range m.b {
		m.b2j[elt] = append(m.b2j[elt], j)
	}
}

// FindLongestMatch returns the longest block a[i:i+k] == b[j:j+k] with
// alo <= i, i+k <= ahi, blo <= j, j+k <= bhi. Among equally long blocks it
// returns the one starting earliest in a, then earliest in b. Size is 0 when
// nothing matches.
func (m *SequenceMatcher[T]) FindLongestMatch(alo, ahi, blo, bhi int) Match {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the match ending at a[i-1] and b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks returns the non-overlapping matching blocks in ascending
// order, adjacent blocks merged, terminated by the sentinel {len(a), len(b), 0}.
func (m *SequenceMatcher[T]) MatchingBlocks() []Match {
	if m.matchingBlocks != nil {
		return m.matchingBlocks
	}

	la, lb := len(m.a), len(m.b)

	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, la, 0, lb}}
	var blocks []Match

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		x := m.FindLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if x.Size == 0 {
			continue
		}
		blocks = append(blocks, x)
		if s.alo < x.A && s.blo < x.B {
			queue = append(queue, span{s.alo, x.A, s.blo, x.B})
		}
		if x.A+x.Size < s.ahi && x.B+x.Size < s.bhi {
			queue = append(queue, span{x.A + x.Size, s.ahi, x.B + x.Size, s.bhi})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].A != blocks[j].A {
			return blocks[i].A < blocks[j].A
		}
		return blocks[i].B < blocks[j].B
	})

	merged := make([]Match, 0, len(blocks)+1)
	var cur Match
	for _, blk := range blocks {
		if cur.A+cur.Size == blk.A && cur.B+cur.Size == blk.B {
			cur.Size += blk.Size
			continue
		}
		if cur.Size > 0 {
			merged = append(merged, cur)
		}
		cur = blk
	}
	if cur.Size > 0 {
		merged = append(merged, cur)
	}
	merged = append(merged, Match{A: la, B: lb, Size: 0})

	m.matchingBlocks = merged
	return merged
}

// OpCodes returns the edit script turning a into b. The runs cover both
// sequences exactly once, in order, without gaps or overlaps.
func (m *SequenceMatcher[T]) OpCodes() []OpCode {
	if m.opCodes != nil {
		return m.opCodes
	}

	i, j := 0, 0
	codes := make([]OpCode, 0)
	for _, blk := range m.MatchingBlocks() {
		var tag OpTag
		switch {
		case i < blk.A && j < blk.B:
			tag = OpReplace
		case i < blk.A:
			tag = OpDelete
		case j < blk.B:
			tag = OpInsert
		}
		if tag != "" {
			codes = append(codes, OpCode{Tag: tag, I1: i, I2: blk.A, J1: j, J2: blk.B})
		}
		i, j = blk.A+blk.Size, blk.B+blk.Size
		if blk.Size > 0 {
			codes = append(codes, OpCode{Tag: OpEqual, I1: blk.A, I2: i, J1: blk.B, J2: j})
		}
	}

	m.opCodes = codes
	return codes
}

// Ratio returns 2*M/T where M is the number of matched elements and T the
// total length of both sequences; 1.0 when both are empty.
func (m *SequenceMatcher[T]) Ratio() float64 {
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1.0
	}
	matches := 0
	for _, blk := range m.MatchingBlocks() {
		matches += blk.Size
	}
	return 2.0 * float64(matches) / float64(total)
}

// Similarity is the rune-level Ratio of two strings.
func Similarity(a, b string) float64 {
	return NewStringMatcher(a, b).Ratio()
}
