package domain

// CorrelationMatrix is a square symmetric matrix of pairwise Pearson
// correlations over the named series. Values holds row-major entries in
// [-1, 1] with a 1.0 diagonal; Symbols fixes the row/column ordering.
type CorrelationMatrix struct {
	Symbols []string    `json:"symbols"`
	Values  [][]float64 `json:"values"`
}

// Size returns the matrix dimension.
func (m CorrelationMatrix) Size() int {
	return len(m.Symbols)
}

// At returns the correlation between the i-th and j-th symbols.
func (m CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// CentralityScore is a ranked eigenvector-centrality entry. Scores are
// defined only up to positive scaling: comparing them across different
// matrices is meaningless, the ranking is what matters.
type CentralityScore struct {
	Symbol string  `json:"symbol"`
	Score  float64 `json:"score"`
}

// PanelState holds the per-session visibility toggles for the optional
// dashboard panels. The controller is a pure function of (request, state);
// the HTTP layer owns storing it between interactions.
type PanelState struct {
	ShowForecast   bool `json:"show_forecast"`
	ShowCentrality bool `json:"show_centrality"`
}
