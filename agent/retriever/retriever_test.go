package retriever

import (
	"context"
	"errors"
	"math"
	"testing"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

func TestMergeScoresWeightsBothBranches(t *testing.T) {
	t.Parallel()

	vector := []scoredChunk{
		{ID: 1, Text: "a", Score: 0.8},
		{ID: 2, Text: "b", Score: 0.4},
	}
	keyword := []scoredChunk{
		{ID: 2, Text: "b", Score: 0.5},
		{ID: 3, Text: "c", Score: 0.25},
	}

	merged := mergeScores(vector, keyword, 0.6, 0.4)
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged rows, got %d", len(merged))
	}

	// Chunk 2 appears in both branches: 0.6*(0.4/0.8) + 0.4*(0.5/0.5).
	if merged[0].ID != 2 {
		t.Fatalf("expected chunk 2 first, got %d", merged[0].ID)
	}
	if math.Abs(merged[0].Score-0.7) > 1e-9 {
		t.Fatalf("unexpected combined score: %v", merged[0].Score)
	}
	// Chunk 1 only scores on the vector branch: 0.6*(0.8/0.8).
	if merged[1].ID != 1 || math.Abs(merged[1].Score-0.6) > 1e-9 {
		t.Fatalf("unexpected second row: %+v", merged[1])
	}
	if merged[2].ID != 3 {
		t.Fatalf("unexpected third row: %+v", merged[2])
	}
}

func TestMergeScoresTieBreaksByID(t *testing.T) {
	t.Parallel()

	vector := []scoredChunk{
		{ID: 9, Score: 0.5},
		{ID: 2, Score: 0.5},
	}

	merged := mergeScores(vector, nil, 1, 0)
	if merged[0].ID != 2 || merged[1].ID != 9 {
		t.Fatalf("expected ID ascending on ties, got %d, %d", merged[0].ID, merged[1].ID)
	}
}

func TestMergeScoresEmptyBranches(t *testing.T) {
	t.Parallel()

	if got := mergeScores(nil, nil, 0.6, 0.4); len(got) != 0 {
		t.Fatalf("expected empty merge, got %v", got)
	}

	keyword := []scoredChunk{{ID: 1, Score: 0.3}}
	merged := mergeScores(nil, keyword, 0.6, 0.4)
	if len(merged) != 1 || math.Abs(merged[0].Score-0.4) > 1e-9 {
		t.Fatalf("unexpected keyword-only merge: %+v", merged)
	}
}

func TestMaxScoreFloor(t *testing.T) {
	t.Parallel()

	if got := maxScore(nil); got != 1 {
		t.Fatalf("maxScore(nil) = %v, want 1", got)
	}
	if got := maxScore([]scoredChunk{{Score: -2}, {Score: 0}}); got != 1 {
		t.Fatalf("maxScore(non-positive) = %v, want 1", got)
	}
	if got := maxScore([]scoredChunk{{Score: 0.25}, {Score: 0.75}}); got != 0.75 {
		t.Fatalf("maxScore() = %v, want 0.75", got)
	}
}

type staticEmbedder struct{}

func (staticEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func TestNewHybridRetrieverValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewHybridRetriever(Config{DSN: " "}, staticEmbedder{}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty dsn, got %v", err)
	}
	if _, err := NewHybridRetriever(Config{DSN: "postgres://u:p@localhost/db"}, nil); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for nil embedder, got %v", err)
	}

	r, err := NewHybridRetriever(Config{DSN: "postgres://u:p@localhost/db"}, staticEmbedder{})
	if err != nil {
		t.Fatalf("NewHybridRetriever() error = %v", err)
	}
	defer r.Close()

	if r.topK != 5 {
		t.Fatalf("expected default topK 5, got %d", r.topK)
	}
	if r.vectorWeight != 0.6 || r.keywordWeight != 0.4 {
		t.Fatalf("unexpected default weights: %v, %v", r.vectorWeight, r.keywordWeight)
	}
}
