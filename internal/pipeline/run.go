// Package pipeline provides the high-level orchestration for outfit recommendation queries.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/outfit-planner/internal/ranking"
	"github.com/jonathan/outfit-planner/internal/rules"
	"github.com/jonathan/outfit-planner/internal/selection"
	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/jonathan/outfit-planner/internal/validation"
)

// Progress steps
const (
	StepGenerate = "generate"
	StepRank     = "rank"
)

// ProgressEvent represents a progress update during a recommendation run
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	QueryID  string `json:"query_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration shared by every query an Engine runs
type Options struct {
	Tables   *rules.Tables
	Weights  *ranking.Weights
	Limits   *selection.Limits
	Parallel bool
	// Strict rejects queries with unrecognized weather or occasion tags
	// instead of treating them as permissive.
	Strict bool
	Logger *slog.Logger
}

// QueryError is returned when a query is rejected before generation
type QueryError struct {
	Message string
	Cause   error
}

func (e *QueryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Engine runs recommendation queries against wardrobe snapshots.
type Engine struct {
	generator *selection.Generator
	strict    bool
	logger    *slog.Logger
	now       func() time.Time
}

// NewEngine creates an Engine.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Weights != nil {
		if err := opts.Weights.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scoring weights: %w", err)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		generator: selection.NewGenerator(selection.Options{
			Tables:   opts.Tables,
			Weights:  opts.Weights,
			Limits:   opts.Limits,
			Parallel: opts.Parallel,
			Logger:   logger,
		}),
		strict: opts.Strict,
		logger: logger,
		now:    time.Now,
	}, nil
}

// emitProgress calls the progress callback if configured
func emitProgress(onProgress ProgressCallback, queryID uuid.UUID, step, category, message string, content any) {
	if onProgress != nil {
		onProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			QueryID:  queryID.String(),
			Content:  content,
		})
	}
}

// Recommend generates, scores, and ranks outfit combinations for query.
// MaxResults is clamped into [1, 20], with zero meaning the default of 5.
// An inventory that cannot form any outfit yields an empty set, not an error.
func (e *Engine) Recommend(ctx context.Context, snapshot selection.Snapshot, query types.Query, onProgress ProgressCallback) (*types.RecommendationSet, error) {
	query.MaxResults = types.ClampMaxResults(query.MaxResults)
	if e.strict {
		if err := query.Validate(); err != nil {
			return nil, &QueryError{Message: "invalid query", Cause: err}
		}
	}

	queryID := uuid.New()
	start := e.now()
	logger := e.logger.With("query_id", queryID.String())

	emitProgress(onProgress, queryID, StepGenerate, "start",
		fmt.Sprintf("Generating combinations for %s weather, %s occasion", query.Weather, query.Occasion), nil)

	generated, err := e.generator.Generate(ctx, snapshot, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate combinations: %w", err)
	}

	emitProgress(onProgress, queryID, StepGenerate, "complete",
		fmt.Sprintf("Checked %d combinations, %d valid", generated.Checked, generated.Valid),
		map[string]int{"checked": generated.Checked, "valid": generated.Valid})

	ranked := ranking.Rank(generated.Candidates, query.MaxResults)

	emitProgress(onProgress, queryID, StepRank, "complete",
		fmt.Sprintf("Selected top %d recommendations", len(ranked)), ranked)

	elapsed := e.now().Sub(start)
	logger.Info("recommendation complete",
		"weather", string(query.Weather),
		"occasion", string(query.Occasion),
		"checked", generated.Checked,
		"valid", generated.Valid,
		"returned", len(ranked),
		"elapsed", elapsed)

	return &types.RecommendationSet{
		QueryID:         queryID,
		Weather:         query.Weather,
		Occasion:        query.Occasion,
		Preferences:     query.Preferences,
		Checked:         generated.Checked,
		Valid:           generated.Valid,
		Recommendations: ranked,
		ProcessingMS:    elapsed.Milliseconds(),
		GeneratedAt:     start.UTC(),
	}, nil
}

// CheckResult is the verdict on a caller-supplied combination
type CheckResult struct {
	Items      []types.Item       `json:"items"`
	Validation validation.Result  `json:"validation"`
	Score      *ranking.Breakdown `json:"score,omitempty"`
}

// Check validates a specific combination and scores it when it passes.
func (e *Engine) Check(items []types.Item, weather types.Weather, occasion types.Occasion, prefs *types.Preferences) CheckResult {
	result := CheckResult{
		Items:      items,
		Validation: e.generator.Evaluator().Validate(items, weather, occasion),
	}
	if result.Validation.Passed {
		breakdown := e.generator.Scorer().Breakdown(items, prefs)
		result.Score = &breakdown
	}
	return result
}
