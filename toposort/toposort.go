package toposort

import (
	"errors"
	"fmt"
)

// ErrCycleDetected indicates the DAG is not acyclic: solver.Simple and
// solver.Merger log a warning and skip the destination (spec.md §4.3,
// §7).
var ErrCycleDetected = errors.New("toposort: cycle detected")

const (
	white = 0
	gray  = 1
	black = 2
)

// Graph is the minimal shape Sort needs: every node, in a stable order,
// and its direct successors. reqdag.DAG satisfies this directly, which
// keeps toposort free of a dependency on reqdag (reqdag calls back into
// toposort to implement Solvable, so the dependency can only run one way).
type Graph interface {
	Nodes() []string
	Successors(id string) []string
}

type sorter struct {
	g     Graph
	state map[string]int
	order []string
}

// Sort returns a topological ordering of every node in g: for every
// required edge u -> v, u appears before v in the result. Returns
// ErrCycleDetected if g is not acyclic.
func Sort(g Graph) ([]string, error) {
	nodes := g.Nodes()
	s := &sorter{
		g:     g,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	for _, n := range nodes {
		if s.state[n] == white {
			if err := s.visit(n); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// ReverseSort returns the nodes of g in reverse topological order: every
// required edge u -> v has v appear before u. Both solvers process nodes
// this way so that, by the time a node is visited, all of its required
// successors have already been assigned fake LSAs.
func ReverseSort(g Graph) ([]string, error) {
	order, err := Sort(g)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

func (s *sorter) visit(id string) error {
	if s.state[id] == gray {
		return fmt.Errorf("%w: at node %q", ErrCycleDetected, id)
	}
	if s.state[id] == black {
		return nil
	}
	s.state[id] = gray

	for _, v := range s.g.Successors(id) {
		if err := s.visit(v); err != nil {
			return err
		}
	}

	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
