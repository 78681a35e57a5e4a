package graph

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corrdash/internal/domain"
)

func testLog() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func testSeries(symbol string, start time.Time, closes ...float64) domain.PriceSeries {
	series := domain.PriceSeries{Symbol: symbol}
	for i, close := range closes {
		series.Points = append(series.Points, domain.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: close,
		})
	}
	return series
}

func matrixFor(symbols []string, values [][]float64) domain.CorrelationMatrix {
	return domain.CorrelationMatrix{Symbols: symbols, Values: values}
}

func TestBuildMatrix_DiagonalAndSymmetry(t *testing.T) {
	svc := NewService(testLog())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	matrix, excluded := svc.BuildMatrix([]domain.PriceSeries{
		testSeries("A", start, 10, 11, 13, 12, 14),
		testSeries("B", start, 20, 22, 21, 25, 24),
		testSeries("C", start, 5, 4, 6, 3, 7),
	})

	assert.Empty(t, excluded)
	require.Equal(t, 3, matrix.Size())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, matrix.At(i, i))
		for j := 0; j < 3; j++ {
			assert.Equal(t, matrix.At(i, j), matrix.At(j, i))
			assert.LessOrEqual(t, matrix.At(i, j), 1.0)
			assert.GreaterOrEqual(t, matrix.At(i, j), -1.0)
		}
	}
}

func TestBuildMatrix_ExcludesEmptyAndDisjoint(t *testing.T) {
	svc := NewService(testLog())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	matrix, excluded := svc.BuildMatrix([]domain.PriceSeries{
		testSeries("A", start, 10, 11, 13, 12),
		{Symbol: "EMPTY"},
		testSeries("FAR", start.AddDate(2, 0, 0), 1, 2, 3),
		testSeries("B", start, 20, 22, 21, 25),
	})

	assert.Equal(t, []string{"EMPTY", "FAR"}, excluded)
	assert.Equal(t, []string{"A", "B"}, matrix.Symbols)
}

func TestCentrality_CorrelatedPairRanksAboveOutsider(t *testing.T) {
	svc := NewService(testLog())
	matrix := matrixFor(
		[]string{"A", "B", "C"},
		[][]float64{
			{1, 0.9, 0.1},
			{0.9, 1, 0.1},
			{0.1, 0.1, 1},
		},
	)

	ranking, err := svc.Rank(matrix)
	require.NoError(t, err)
	require.Len(t, ranking, 3)

	assert.Equal(t, "C", ranking[2].Symbol)
	assert.ElementsMatch(t, []string{"A", "B"}, []string{ranking[0].Symbol, ranking[1].Symbol})
	assert.Greater(t, ranking[1].Score, ranking[2].Score)
	// A and B are interchangeable in this matrix; stable tie-break keeps
	// input order.
	assert.Equal(t, "A", ranking[0].Symbol)
}

func TestCentrality_ScaleInvariantRanking(t *testing.T) {
	svc := NewService(testLog())
	base := [][]float64{
		{1, 0.8, 0.3, 0.2},
		{0.8, 1, 0.4, 0.1},
		{0.3, 0.4, 1, 0.6},
		{0.2, 0.1, 0.6, 1},
	}
	symbols := []string{"A", "B", "C", "D"}

	scaled := make([][]float64, len(base))
	for i, row := range base {
		scaled[i] = make([]float64, len(row))
		for j, v := range row {
			if i == j {
				scaled[i][j] = 1
				continue
			}
			scaled[i][j] = v * 0.5
		}
	}

	ranking1, err := svc.Rank(matrixFor(symbols, base))
	require.NoError(t, err)
	ranking2, err := svc.Rank(matrixFor(symbols, scaled))
	require.NoError(t, err)

	for i := range ranking1 {
		assert.Equal(t, ranking1[i].Symbol, ranking2[i].Symbol)
	}
}

func TestCentrality_ScoresNonNegative(t *testing.T) {
	svc := NewService(testLog())
	ranking, err := svc.Rank(matrixFor(
		[]string{"A", "B", "C"},
		[][]float64{
			{1, 0.5, 0.2},
			{0.5, 1, 0.7},
			{0.2, 0.7, 1},
		},
	))
	require.NoError(t, err)
	for _, score := range ranking {
		assert.GreaterOrEqual(t, score.Score, 0.0)
	}
}

func TestCentrality_TooFewNodes(t *testing.T) {
	g := BuildGraph(matrixFor([]string{"A"}, [][]float64{{1}}))
	_, err := EigenvectorCentrality(g)
	assert.Error(t, err)
}

func TestCentrality_AllZeroWeights(t *testing.T) {
	g := BuildGraph(matrixFor(
		[]string{"A", "B", "C"},
		[][]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	))
	_, err := EigenvectorCentrality(g)
	assert.Error(t, err)
}

func TestValidate_RaggedMatrix(t *testing.T) {
	err := Validate(matrixFor([]string{"A", "B"}, [][]float64{{1, 0.5}}))
	assert.Error(t, err)
}
