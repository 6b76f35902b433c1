package puzzle

import "fmt"

// Solution maps each color to its flow, start to start.
type Solution map[Color][]Coord

// SolveResult reports the outcome of a solver run.
type SolveResult struct {
	Solution  Solution
	Solved    bool
	Steps     int  // Search nodes visited
	Exhausted bool // Stopped by the step budget rather than a full search
}

// solver is a depth-first search that routes one color at a time from its
// first start to its second, backtracking on dead ends.
type solver struct {
	size     int
	owner    []int // pair index occupying each cell, -1 when empty
	pairs    []Pair
	flows    [][]Coord
	steps    int
	maxSteps int
	stopped  bool
}

// Solve searches for a placement of every flow that covers the whole cube.
// Drawn flows on p are ignored; only the starts matter. maxSteps bounds the
// number of search nodes, 0 meaning unbounded.
func Solve(p *Puzzle, maxSteps int) SolveResult {
	s := &solver{
		size:     p.Size(),
		owner:    make([]int, p.grid.CellCount()),
		pairs:    p.Pairs(),
		flows:    make([][]Coord, len(p.pairs)),
		maxSteps: maxSteps,
	}
	for i := range s.owner {
		s.owner[i] = -1
	}
	for i, pair := range s.pairs {
		s.owner[s.index(pair.A)] = i
		s.owner[s.index(pair.B)] = i
	}

	solved := s.route(0)
	res := SolveResult{
		Solved:    solved,
		Steps:     s.steps,
		Exhausted: s.stopped,
	}
	if solved {
		res.Solution = make(Solution, len(s.pairs))
		for i, pair := range s.pairs {
			res.Solution[pair.Color] = s.flows[i]
		}
	}
	return res
}

func (s *solver) index(c Coord) int {
	return c.X + s.size*(c.Y+s.size*c.Z)
}

func (s *solver) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.size && c.Y >= 0 && c.Y < s.size && c.Z >= 0 && c.Z < s.size
}

// route places pair i and everything after it.
func (s *solver) route(i int) bool {
	if i == len(s.pairs) {
		for _, o := range s.owner {
			if o < 0 {
				return false
			}
		}
		return true
	}
	start := s.pairs[i].A
	return s.extend(i, start, []Coord{start})
}

// extend grows the path of pair i from cur.
func (s *solver) extend(i int, cur Coord, path []Coord) bool {
	s.steps++
	if s.maxSteps > 0 && s.steps > s.maxSteps {
		s.stopped = true
		return false
	}

	target := s.pairs[i].B
	for _, d := range AllDirs() {
		if s.stopped {
			return false
		}
		n := cur.Step(d)
		if !s.inBounds(n) {
			continue
		}
		if n == target {
			flow := make([]Coord, len(path)+1)
			copy(flow, path)
			flow[len(path)] = n
			s.flows[i] = flow
			if s.route(i + 1) {
				return true
			}
			continue
		}
		idx := s.index(n)
		if s.owner[idx] != -1 {
			continue
		}

		s.owner[idx] = i
		if !s.strands(i, n) && s.extend(i, n, append(path, n)) {
			return true
		}
		s.owner[idx] = -1
	}
	return false
}

// strands reports whether moving pair i's head to n leaves an empty
// neighbor of n with no way in: every one of its neighbors is occupied by
// a finished or current flow, other than n itself and pair i's target.
func (s *solver) strands(i int, n Coord) bool {
	for _, d := range AllDirs() {
		e := n.Step(d)
		if !s.inBounds(e) || s.owner[s.index(e)] != -1 {
			continue
		}
		alive := false
		for _, d2 := range AllDirs() {
			m := e.Step(d2)
			if !s.inBounds(m) {
				continue
			}
			o := s.owner[s.index(m)]
			if o == -1 || o > i || m == n || m == s.pairs[i].B {
				alive = true
				break
			}
		}
		if !alive {
			return true
		}
	}
	return false
}

// Apply commits every flow of a solution onto p.
func Apply(p *Puzzle, sol Solution) error {
	for _, color := range p.Colors() {
		flow, ok := sol[color]
		if !ok {
			return fmt.Errorf("puzzle: solution has no flow for %s", color)
		}
		res, err := p.Commit(flow)
		if err != nil {
			return fmt.Errorf("puzzle: applying %s: %w", color, err)
		}
		if !res.Closed() {
			return fmt.Errorf("puzzle: %s flow stopped %s after %d steps", color, res.Reason, res.Steps)
		}
	}
	return nil
}
