package graph

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"corrdash/internal/domain"
)

// Power iteration parameters. Tolerance is the L2 distance between
// successive normalized iterates; the cap bounds non-converging inputs.
const (
	convergenceTolerance = 1e-10
	maxIterations        = 1000
)

// WeightedGraph is a complete undirected graph on the matrix symbols with
// correlations as edge weights. No self-loops: the adjacency diagonal is 0
// even though the source matrix diagonal is 1.
type WeightedGraph struct {
	Symbols   []string
	adjacency *mat.SymDense
}

// BuildGraph constructs the weighted graph from a correlation matrix.
// The matrix is assumed symmetric; this is the caller's contract.
func BuildGraph(m domain.CorrelationMatrix) *WeightedGraph {
	n := m.Size()
	adjacency := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacency.SetSym(i, j, m.At(i, j))
		}
	}
	return &WeightedGraph{Symbols: m.Symbols, adjacency: adjacency}
}

// EigenvectorCentrality computes each node's score as the corresponding
// component of the dominant eigenvector of the weighted adjacency matrix,
// found by explicit power iteration. The vector is L2-normalized with the
// sign flipped so its component sum is non-negative.
//
// Errors for graphs with fewer than 2 nodes, all-zero weights, or inputs
// where the iteration does not converge (e.g. tied dominant eigenvalues).
func EigenvectorCentrality(g *WeightedGraph) ([]domain.CentralityScore, error) {
	n := len(g.Symbols)
	if n < 2 {
		return nil, fmt.Errorf("centrality needs at least 2 nodes, got %d", n)
	}

	hasWeight := false
	for i := 0; i < n && !hasWeight; i++ {
		for j := i + 1; j < n; j++ {
			if g.adjacency.At(i, j) != 0 {
				hasWeight = true
				break
			}
		}
	}
	if !hasWeight {
		return nil, fmt.Errorf("centrality is undefined on a graph with all-zero weights")
	}

	// Uniform start vector, already unit length.
	vec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		vec.SetVec(i, 1/math.Sqrt(float64(n)))
	}

	next := mat.NewVecDense(n, nil)
	converged := false
	for iter := 0; iter < maxIterations; iter++ {
		next.MulVec(g.adjacency, vec)

		norm := mat.Norm(next, 2)
		if norm == 0 || math.IsNaN(norm) {
			return nil, fmt.Errorf("power iteration degenerated at iteration %d", iter)
		}
		next.ScaleVec(1/norm, next)

		var diff mat.VecDense
		diff.SubVec(next, vec)
		vec.CopyVec(next)

		if mat.Norm(&diff, 2) < convergenceTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return nil, fmt.Errorf("power iteration did not converge within %d iterations", maxIterations)
	}

	// Sign convention: dominant eigenvector components should be
	// non-negative for a connected positive-weight graph.
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += vec.AtVec(i)
	}
	if sum < 0 {
		vec.ScaleVec(-1, vec)
	}

	scores := make([]domain.CentralityScore, n)
	for i := 0; i < n; i++ {
		scores[i] = domain.CentralityScore{Symbol: g.Symbols[i], Score: vec.AtVec(i)}
	}

	// Descending by score; SliceStable keeps exact ties in input order.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores, nil
}

// Rank is a convenience that builds the graph and ranks centrality in one call.
func (s *Service) Rank(m domain.CorrelationMatrix) ([]domain.CentralityScore, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	return EigenvectorCentrality(BuildGraph(m))
}
