package search

import (
	"context"
	"math"

	"github.com/sigurdsson/brandub/pkg/board"
	"github.com/seekerror/logw"
)

// ChooseMove is the top-level entry point, spec.md §4.4: evaluate the
// heuristic short-circuits first, falling back to a full MCTS search of
// c.cfg.IterationsPerMove iterations from root. root is borrowed read-only
// except for the scratch buffer cloning performed internally; the returned
// move has not been applied to root.
func (c *Context) ChooseMove(ctx context.Context, root *board.GameState) board.Move {
	var buf board.MoveList

	if m, ok := kingClearPathToCorner(root); ok {
		return m
	}
	if m, ok := kingClearPathToSafeEdge(root); ok {
		return m
	}
	if m, ok := singleMoveCapturesKing(c.zt, root, &buf); ok {
		return m
	}

	return c.startSearch(ctx, root)
}

// ComputerMove applies the result of ChooseMove to state in place.
func (c *Context) ComputerMove(ctx context.Context, state *board.GameState) board.Move {
	m := c.ChooseMove(ctx, state)
	board.ApplyMove(c.zt, state, m)
	return m
}

// startSearch performs IterationsPerMove-1 selection descents from root
// (spec.md §4.4 step 2), then picks the root's most-visited non-losing
// child.
func (c *Context) startSearch(ctx context.Context, root *board.GameState) board.Move {
	c.advanceGeneration()

	c.tt.Insert(root.Hash, c.generation, c.generationBound)
	_, baseVisits, _, _ := c.tt.Lookup(root.Hash)
	parentVisits := baseVisits

	var deltaVisits uint32
	var deltaWins int32

	iterations := c.cfg.IterationsPerMove
	if iterations == 0 {
		iterations = 1
	}
	for i := uint32(1); i < iterations; i++ {
		clone := root.Fork()
		r := c.selection(clone, parentVisits+deltaVisits)
		deltaVisits++
		deltaWins += int32(r)
	}
	// Root bookkeeping is kept in-memory across the iteration loop and
	// written back to its TT entry only once, at the end (spec.md §4.4
	// step 2), unlike every other node's per-iteration backpropagation in
	// selection.
	c.tt.Update(root.Hash, c.generation, deltaVisits, deltaWins)

	newWrites, good, bad := c.tt.Stats()
	logw.Debugf(ctx, "search: generation=%v bound=%v root visits=%v wins=%v tt=%v writes=%v good=%v bad=%v",
		c.generation, c.generationBound, baseVisits+deltaVisits, deltaWins, c.tt, newWrites, good, bad)

	return c.selectRootMove(root)
}

// selection implements spec.md §4.4's recursive selection/expansion/
// simulation step, returning the value of state to the player about to
// move in state.
func (c *Context) selection(state *board.GameState, parentVisits uint32) Value {
	if r := board.CheckGameOver(c.zt, state); r != board.None {
		return valueOf(r, state.Side)
	}

	var buf board.MoveList
	board.LegalMoves(c.zt, state, &buf)
	if buf.Len() == 0 {
		// Rule 9: no legal move for the side to move -- an immediate loss.
		// CheckGameOver above already generates moves via LegalMoves and
		// would have caught this; reaching here indicates the two move
		// generations disagree, which should never happen. Recover
		// conservatively per spec.md §7.
		logw.Errorf(context.Background(), "search: selection found no legal moves after CheckGameOver returned None")
		return Loss
	}

	type candidate struct {
		move Move
		hash board.ZobristHash
	}

	var unvisited []candidate
	bestUCB := math.Inf(-1)
	var bestMove Move
	var bestHash board.ZobristHash
	haveBest := false

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		hash := board.NextHash(c.zt, state, m)

		_, visits, wins, ok := c.tt.Lookup(hash)
		if !ok || visits == 0 {
			unvisited = append(unvisited, candidate{move: m, hash: hash})
			continue
		}

		q := -float64(wins) / float64(visits)
		qNorm := (q + 1) / 2
		ucb := qNorm + c.cfg.UCBConstant*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
		if ucb > bestUCB {
			bestUCB, bestMove, bestHash, haveBest = ucb, m, hash, true
		}
	}

	var chosen Move
	var childHash board.ZobristHash
	expanding := false

	if len(unvisited) > 0 {
		chosen = unvisited[c.treeRand.Intn(len(unvisited))].move
		childHash = board.NextHash(c.zt, state, chosen)
		expanding = true
	} else if haveBest {
		chosen = bestMove
		childHash = bestHash
	} else {
		// Every move has zero parentVisits-normalized score, e.g. all
		// already expanded with zero visits recorded (shouldn't happen
		// given the unvisited branch above, but stay defensive).
		chosen = buf.At(0)
		childHash = board.NextHash(c.zt, state, chosen)
		expanding = true
	}

	board.ApplyMove(c.zt, state, chosen)

	var r Value
	if expanding {
		c.tt.Insert(childHash, c.generation, c.generationBound)
		r = c.simulation(state)
	} else {
		_, childVisits, _, _ := c.tt.Lookup(childHash)
		r = c.selection(state, childVisits)
	}

	c.tt.Update(childHash, c.generation, 1, int32(r))

	return r.negate()
}

// simulation runs a uniform-random playout to termination from state
// (mutated in place; callers must pass a clone), returning the outcome
// from the perspective of the side to move in the ORIGINAL state passed
// in (spec.md §4.4).
func (c *Context) simulation(state *board.GameState) Value {
	perspective := state.Side

	var buf board.MoveList
	for {
		if r := board.CheckGameOver(c.zt, state); r != board.None {
			return valueOf(r, perspective)
		}

		board.LegalMoves(c.zt, state, &buf)
		if buf.Len() == 0 {
			return valueOf(terminalByNoMoves(state.Side), perspective)
		}

		m := buf.At(c.playRand.Intn(buf.Len()))
		board.ApplyMove(c.zt, state, m)
	}
}

func terminalByNoMoves(sideToMove board.Color) board.Result {
	if sideToMove == board.Black {
		return board.WhiteWin
	}
	return board.BlackWin
}

// selectRootMove implements spec.md §4.4 step 3: the root's legal move
// whose successor has the highest TT visit count, excluding successors
// that are terminal losses for the root's player, ties broken uniformly at
// random (the spec's preferred alternative to first-match, see spec.md §9).
// Falls back to a uniformly random legal move if none qualifies.
func (c *Context) selectRootMove(root *board.GameState) board.Move {
	var buf board.MoveList
	board.LegalMoves(c.zt, root, &buf)
	if buf.Len() == 0 {
		return board.Move{}
	}

	type scored struct {
		move   board.Move
		visits uint32
	}
	var best []scored
	bestVisits := int64(-1)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)

		clone := root.Fork()
		board.ApplyMove(c.zt, clone, m)
		if r := board.CheckGameOver(c.zt, clone); r != board.None {
			if winner, ok := r.Winner(); ok && winner != root.Side {
				continue // forced self-loss terminal: never pick
			}
		}

		_, visits, _, ok := c.tt.Lookup(board.NextHash(c.zt, root, m))
		if !ok {
			visits = 0
		}

		switch {
		case int64(visits) > bestVisits:
			bestVisits = int64(visits)
			best = []scored{{move: m, visits: visits}}
		case int64(visits) == bestVisits:
			best = append(best, scored{move: m, visits: visits})
		}
	}

	if len(best) == 0 {
		return buf.At(c.treeRand.Intn(buf.Len()))
	}
	return best[c.treeRand.Intn(len(best))].move
}

// Move is a local alias kept for readability inside selection's candidate
// bookkeeping; identical to board.Move.
type Move = board.Move
