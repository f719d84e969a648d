package selection

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/outfit-planner/internal/ranking"
	"github.com/jonathan/outfit-planner/internal/rules"
	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/jonathan/outfit-planner/internal/validation"
)

// Snapshot is a read-only view of the wardrobe for the duration of a query.
// AvailableItems returns only available items of a category, in a stable order.
type Snapshot interface {
	AvailableItems(category types.Category) []types.Item
}

// Default pruning limits for the accessory stages
const (
	DefaultSingleAccessoryBases = 10
	DefaultDoubleAccessoryBases = 5
)

// Limits bounds how many top-scoring base combinations the accessory stages extend.
// A non-positive limit disables the corresponding stage.
type Limits struct {
	SingleAccessoryBases int `json:"single_accessory_bases"`
	DoubleAccessoryBases int `json:"double_accessory_bases"`
}

// DefaultLimits returns the top-10 / top-5 pruning policy.
func DefaultLimits() Limits {
	return Limits{
		SingleAccessoryBases: DefaultSingleAccessoryBases,
		DoubleAccessoryBases: DefaultDoubleAccessoryBases,
	}
}

// Options configures a Generator. Zero values select the defaults.
type Options struct {
	Tables  *rules.Tables
	Weights *ranking.Weights
	Limits  *Limits
	// Parallel runs the base and outerwear stages concurrently. Output is
	// identical to the sequential order.
	Parallel bool
	Logger   *slog.Logger
}

// Result is the flat, unranked output of a generation run.
type Result struct {
	Candidates []types.Recommendation
	Checked    int
	Valid      int
}

// Generator builds valid, scored combinations. It holds no per-query state
// and is safe for concurrent use.
type Generator struct {
	evaluator *validation.Evaluator
	scorer    *ranking.Scorer
	limits    Limits
	parallel  bool
	logger    *slog.Logger
}

// NewGenerator creates a Generator from opts.
func NewGenerator(opts Options) *Generator {
	tables := opts.Tables
	if tables == nil {
		tables = rules.Default()
	}
	weights := ranking.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	limits := DefaultLimits()
	if opts.Limits != nil {
		limits = *opts.Limits
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		evaluator: validation.NewEvaluator(tables),
		scorer:    ranking.NewScorer(tables, weights),
		limits:    limits,
		parallel:  opts.Parallel,
		logger:    logger,
	}
}

// Evaluator returns the hard-constraint evaluator used by the generator.
func (g *Generator) Evaluator() *validation.Evaluator {
	return g.evaluator
}

// Scorer returns the scorer used by the generator.
func (g *Generator) Scorer() *ranking.Scorer {
	return g.scorer
}

// stageOutput collects the valid candidates of one stage and how many combinations it checked
type stageOutput struct {
	candidates []types.Recommendation
	checked    int
}

// Generate enumerates candidates in four stages: base, base with outerwear,
// top bases with one accessory, and top bases with two accessories.
// A missing mandatory category yields an empty result, not an error.
// Errors are only returned for a nil snapshot or a cancelled context.
func (g *Generator) Generate(ctx context.Context, snapshot Snapshot, query types.Query) (*Result, error) {
	if snapshot == nil {
		return nil, &Error{Message: "inventory snapshot is nil"}
	}

	bases := snapshot.AvailableItems(types.CategoryBaseLayer)
	lowers := snapshot.AvailableItems(types.CategoryLowerLayer)
	outers := snapshot.AvailableItems(types.CategoryOuterLayer)
	shoes := snapshot.AvailableItems(types.CategoryFootwear)
	accessories := snapshot.AvailableItems(types.CategoryAccessory)

	result := &Result{Candidates: []types.Recommendation{}}

	if len(bases) == 0 || len(lowers) == 0 || len(shoes) == 0 {
		g.logger.Info("mandatory category empty, no combinations possible",
			"base_layer", len(bases), "lower_layer", len(lowers), "footwear", len(shoes))
		return result, nil
	}

	var base, outerwear stageOutput
	if g.parallel {
		group, gctx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			base, err = g.baseStage(gctx, bases, lowers, shoes, query)
			return err
		})
		group.Go(func() error {
			var err error
			outerwear, err = g.outerwearStage(gctx, bases, lowers, outers, shoes, query)
			return err
		})
		if err := group.Wait(); err != nil {
			return nil, &Error{Message: "generation cancelled", Cause: err}
		}
	} else {
		var err error
		if base, err = g.baseStage(ctx, bases, lowers, shoes, query); err != nil {
			return nil, &Error{Message: "generation cancelled", Cause: err}
		}
		if outerwear, err = g.outerwearStage(ctx, bases, lowers, outers, shoes, query); err != nil {
			return nil, &Error{Message: "generation cancelled", Cause: err}
		}
	}
	g.accumulate(result, types.StageBase, base)
	g.accumulate(result, types.StageWithOuterwear, outerwear)

	if len(accessories) == 0 || len(base.candidates) == 0 {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Message: "generation cancelled", Cause: err}
	}
	single := g.singleAccessoryStage(ranking.Rank(base.candidates, g.limits.SingleAccessoryBases), accessories, query)
	g.accumulate(result, types.StageWithAccessory, single)

	if len(accessories) < 2 {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Message: "generation cancelled", Cause: err}
	}
	double := g.doubleAccessoryStage(ranking.Rank(base.candidates, g.limits.DoubleAccessoryBases), accessories, query)
	g.accumulate(result, types.StageWithMultipleAccessories, double)

	return result, nil
}

func (g *Generator) accumulate(result *Result, stage types.Stage, out stageOutput) {
	result.Candidates = append(result.Candidates, out.candidates...)
	result.Checked += out.checked
	result.Valid += len(out.candidates)
	g.logger.Debug("stage complete", "stage", string(stage), "checked", out.checked, "valid", len(out.candidates))
}

// baseStage checks the full base x lower x footwear cross-product
func (g *Generator) baseStage(ctx context.Context, bases, lowers, shoes []types.Item, query types.Query) (stageOutput, error) {
	var out stageOutput
	for _, b := range bases {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		for _, l := range lowers {
			for _, f := range shoes {
				g.consider(&out, []types.Item{b, l, f}, types.StageBase, query)
			}
		}
	}
	return out, nil
}

// outerwearStage re-enumerates with the outer layer; it does not build on baseStage
func (g *Generator) outerwearStage(ctx context.Context, bases, lowers, outers, shoes []types.Item, query types.Query) (stageOutput, error) {
	var out stageOutput
	if len(outers) == 0 {
		return out, nil
	}
	for _, b := range bases {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		for _, l := range lowers {
			for _, o := range outers {
				for _, f := range shoes {
					g.consider(&out, []types.Item{b, l, o, f}, types.StageWithOuterwear, query)
				}
			}
		}
	}
	return out, nil
}

func (g *Generator) singleAccessoryStage(top []types.Recommendation, accessories []types.Item, query types.Query) stageOutput {
	var out stageOutput
	for _, base := range top {
		for _, a := range accessories {
			g.consider(&out, extend(base.Items, a), types.StageWithAccessory, query)
		}
	}
	return out
}

func (g *Generator) doubleAccessoryStage(top []types.Recommendation, accessories []types.Item, query types.Query) stageOutput {
	var out stageOutput
	for _, base := range top {
		for i := 0; i < len(accessories); i++ {
			for j := i + 1; j < len(accessories); j++ {
				g.consider(&out, extend(base.Items, accessories[i], accessories[j]), types.StageWithMultipleAccessories, query)
			}
		}
	}
	return out
}

// consider validates a combination and, if it passes, scores and records it
func (g *Generator) consider(out *stageOutput, items []types.Item, stage types.Stage, query types.Query) {
	out.checked++
	if !g.evaluator.Validate(items, query.Weather, query.Occasion).Passed {
		return
	}
	out.candidates = append(out.candidates, types.Recommendation{
		Items:       items,
		Score:       g.scorer.Score(items, query.Preferences),
		Description: Describe(items),
		Stage:       stage,
	})
}

// extend returns a new slice so extensions never alias the base combination
func extend(items []types.Item, extra ...types.Item) []types.Item {
	out := make([]types.Item, 0, len(items)+len(extra))
	out = append(out, items...)
	return append(out, extra...)
}
