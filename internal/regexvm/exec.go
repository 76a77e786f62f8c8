package regexvm

// threadSet tracks which program counters have already been added during
// the current epsilon closure pass, so Split cycles (e.g. from `(a*)*`)
// terminate instead of recursing forever. pcs is kept in priority order
// (the order addThread first reaches each instruction), the same
// thread-priority scheme Pike's VM uses to make greedy/lazy Split
// ordering from compile.go's compileStar/compilePlus/compileOpt
// observable: the x branch is always tried, and therefore recorded,
// before the y branch.
type threadSet struct {
	pcs     []int
	added   []bool
	matched bool
}

func newThreadSet(n int) *threadSet {
	return &threadSet{added: make([]bool, n)}
}

// addThread performs the epsilon closure of pc at input position pos,
// appending every consuming instruction it reaches to the thread list and
// recording pos as a candidate match end whenever Match is reached. Once
// a thread has reached Match, ts.matched is set and every remaining
// lower-priority thread in this closure (and in the rest of the current
// step, since runFrom's step loop walks clist.pcs in priority order too)
// is discarded instead of being added: a lower-priority thread can never
// override a higher-priority thread's match, however much further it
// might otherwise run.
func addThread(ts *threadSet, p *Program, pc, pos int, input []rune, bestEnd *int) {
	if ts.matched || ts.added[pc] {
		return
	}
	ts.added[pc] = true
	in := p.insts[pc]
	switch in.op {
	case opJump:
		addThread(ts, p, in.x, pos, input, bestEnd)
	case opSplit:
		addThread(ts, p, in.x, pos, input, bestEnd)
		addThread(ts, p, in.y, pos, input, bestEnd)
	case opAnchorStart:
		if pos == 0 {
			addThread(ts, p, pc+1, pos, input, bestEnd)
		}
	case opAnchorEnd:
		if pos == len(input) {
			addThread(ts, p, pc+1, pos, input, bestEnd)
		}
	case opMatch:
		*bestEnd = pos
		ts.matched = true
	default:
		ts.pcs = append(ts.pcs, pc)
	}
}

// runFrom attempts a match starting exactly at start, returning its end
// offset or -1 if no match begins there (two thread lists, breadth-first).
// The highest-priority accepted thread wins: greedy quantifiers extend the
// match as far as they can, lazy ones stop as early as they can, and an
// alternation keeps its leftmost branch that matches, which is not
// necessarily the longest one (`a|ab` matches "a" in "ab").
func runFrom(p *Program, input []rune, start int) int {
	n := len(p.insts)
	bestEnd := -1
	clist := newThreadSet(n)
	addThread(clist, p, 0, start, input, &bestEnd)

	pos := start
	for len(clist.pcs) > 0 && pos < len(input) {
		c := input[pos]
		nlist := newThreadSet(n)
		for _, pc := range clist.pcs {
			in := p.insts[pc]
			switch in.op {
			case opLit:
				matched := c == in.c
				if p.ci {
					matched = foldRune(c) == foldRune(in.c)
				}
				if matched {
					addThread(nlist, p, pc+1, pos+1, input, &bestEnd)
				}
			case opLitCI:
				if c == in.lo || c == in.hi {
					addThread(nlist, p, pc+1, pos+1, input, &bestEnd)
				}
			case opDot:
				if c != '\n' {
					addThread(nlist, p, pc+1, pos+1, input, &bestEnd)
				}
			case opClass:
				test := c
				if p.ci {
					test = foldRune(c)
				}
				if classMatches(in, test) {
					addThread(nlist, p, pc+1, pos+1, input, &bestEnd)
				}
			}
		}
		clist = nlist
		pos++
	}
	return bestEnd
}

// longestMatchFrom scans every starting offset from start through
// len(input) inclusive and returns the first (leftmost) offset at which
// a match begins, along with its end. ok is false if no offset in range
// produces a match.
func longestMatchFrom(p *Program, input []rune, from int) (start, end int, ok bool) {
	for s := from; s <= len(input); s++ {
		if e := runFrom(p, input, s); e >= 0 {
			return s, e, true
		}
	}
	return 0, 0, false
}
