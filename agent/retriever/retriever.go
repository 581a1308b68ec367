package retriever

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/pgvector/pgvector-go"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

type Config struct {
	DSN           string  `envconfig:"DSN" split_words:"true" required:"true"`
	TopK          int     `envconfig:"TOP_K" split_words:"true" default:"5"`
	VectorWeight  float64 `envconfig:"VECTOR_WEIGHT" split_words:"true" default:"0.6"`
	KeywordWeight float64 `envconfig:"KEYWORD_WEIGHT" split_words:"true" default:"0.4"`
}

// DocumentChunk is one indexed excerpt of an uploaded document. The
// ingestion pipeline owns writes; this package only reads.
type DocumentChunk struct {
	bun.BaseModel `bun:"table:document_chunks,alias:dc"`

	ID          int64           `bun:"id,pk,autoincrement"`
	Text        string          `bun:"text,notnull"`
	SourceFile  string          `bun:"source_file,notnull"`
	PageNumber  int             `bun:"page_number,nullzero"`
	SlideNumber int             `bun:"slide_number,nullzero"`
	Embedding   pgvector.Vector `bun:"embedding,type:vector(1536)"`
}

// Embedder produces the query embedding for vector search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// HybridRetriever combines cosine similarity on the embedding column with
// Postgres full-text rank, merged by configurable weights. Safe for
// concurrent use: the bun DB handle pools connections and the retriever
// itself is stateless.
type HybridRetriever struct {
	db            *bun.DB
	embedder      Embedder
	topK          int
	vectorWeight  float64
	keywordWeight float64
}

var _ contractx.Retriever = (*HybridRetriever)(nil)

func NewHybridRetriever(cfg Config, embedder Embedder) (*HybridRetriever, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: retriever dsn is required", contractx.ErrValidation)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", contractx.ErrValidation)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	topK := cfg.TopK
	if topK <= 0 {
		topK = 5
	}
	vectorWeight := cfg.VectorWeight
	keywordWeight := cfg.KeywordWeight
	if vectorWeight <= 0 && keywordWeight <= 0 {
		vectorWeight, keywordWeight = 0.6, 0.4
	}

	return &HybridRetriever{
		db:            db,
		embedder:      embedder,
		topK:          topK,
		vectorWeight:  vectorWeight,
		keywordWeight: keywordWeight,
	}, nil
}

func (r *HybridRetriever) Close() error {
	return r.db.Close()
}

type scoredChunk struct {
	ID          int64   `bun:"id"`
	Text        string  `bun:"text"`
	SourceFile  string  `bun:"source_file"`
	PageNumber  int     `bun:"page_number"`
	SlideNumber int     `bun:"slide_number"`
	Score       float64 `bun:"score"`
}

func (r *HybridRetriever) Search(ctx context.Context, query string, topK int) ([]contractx.SourceRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is empty", contractx.ErrValidation)
	}
	if topK <= 0 {
		topK = r.topK
	}
	// Over-fetch each branch so the weighted merge has candidates to
	// reorder before the final cut.
	candidates := topK * 2

	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	qvec := pgvector.NewVector(vec)

	var vecRows []scoredChunk
	err = r.db.NewSelect().
		Model((*DocumentChunk)(nil)).
		Column("id", "text", "source_file", "page_number", "slide_number").
		ColumnExpr("1 - (dc.embedding <=> ?) AS score", qvec).
		OrderExpr("dc.embedding <=> ?", qvec).
		Limit(candidates).
		Scan(ctx, &vecRows)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	var kwRows []scoredChunk
	err = r.db.NewSelect().
		Model((*DocumentChunk)(nil)).
		Column("id", "text", "source_file", "page_number", "slide_number").
		ColumnExpr("ts_rank(to_tsvector('simple', dc.text), plainto_tsquery('simple', ?)) AS score", query).
		Where("to_tsvector('simple', dc.text) @@ plainto_tsquery('simple', ?)", query).
		OrderExpr("score DESC").
		Limit(candidates).
		Scan(ctx, &kwRows)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}

	merged := mergeScores(vecRows, kwRows, r.vectorWeight, r.keywordWeight)
	if len(merged) > topK {
		merged = merged[:topK]
	}

	records := make([]contractx.SourceRecord, 0, len(merged))
	for _, row := range merged {
		records = append(records, contractx.SourceRecord{
			Text:        row.Text,
			SourceFile:  row.SourceFile,
			PageNumber:  row.PageNumber,
			SlideNumber: row.SlideNumber,
			Score:       row.Score,
		})
	}
	return records, nil
}

// mergeScores normalizes each branch's scores by its maximum, combines them
// per chunk by weight, and orders the union by the combined score.
func mergeScores(vector, keyword []scoredChunk, vectorWeight, keywordWeight float64) []scoredChunk {
	byID := make(map[int64]scoredChunk, len(vector)+len(keyword))
	combined := make(map[int64]float64, len(vector)+len(keyword))

	vecMax := maxScore(vector)
	for _, row := range vector {
		byID[row.ID] = row
		combined[row.ID] += vectorWeight * (row.Score / vecMax)
	}

	kwMax := maxScore(keyword)
	for _, row := range keyword {
		if _, ok := byID[row.ID]; !ok {
			byID[row.ID] = row
		}
		combined[row.ID] += keywordWeight * (row.Score / kwMax)
	}

	merged := make([]scoredChunk, 0, len(byID))
	for id, row := range byID {
		row.Score = combined[id]
		merged = append(merged, row)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}

func maxScore(rows []scoredChunk) float64 {
	max := 0.0
	for _, row := range rows {
		if row.Score > max {
			max = row.Score
		}
	}
	if max <= 0 {
		return 1
	}
	return max
}
