package randgen

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/johndpope/tgen/alg/dist"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

// Generator wraps a trained model with a random source, a logger and
// metrics. The model is swapped atomically on Train and LoadModel, so a
// generator may be shared between goroutines.
type Generator struct {
	model atomic.Pointer[Model]
	opts  options
}

func NewGenerator(opts ...Option) *Generator {
	return &Generator{opts: buildOptions(opts)}
}

// Model returns the current model or ErrModelNotLoaded.
func (g *Generator) Model() (*Model, error) {
	m := g.model.Load()
	if m == nil {
		return nil, ErrModelNotLoaded
	}
	return m, nil
}

func (g *Generator) SetModel(m *Model) {
	g.model.Store(m)
}

// Train replaces the model with one trained on the given corpus.
func (g *Generator) Train(ctx context.Context, trees []types.DepTree, das []types.DA) error {
	m, err := Train(ctx, trees, das,
		WithWorkers(g.opts.workers),
		WithLogger(g.opts.logger),
		WithMetrics(g.opts.metrics))
	if err != nil {
		return err
	}
	g.SetModel(m)
	return nil
}

func (g *Generator) LoadModel(fname string) error {
	g.opts.logger.Info("loading model", zap.String("file", fname))
	if sum, err := util.MD5File(fname); err == nil {
		g.opts.logger.Debug("model checksum", zap.String("md5", sum))
	}
	m, header, err := Load(fname)
	if err != nil {
		return err
	}
	g.opts.logger.Info("model loaded",
		zap.String("id", header.ID),
		zap.Time("created", header.Created),
		zap.Int("items", m.Items()))
	g.SetModel(m)
	return nil
}

func (g *Generator) SaveModel(fname string) error {
	m, err := g.Model()
	if err != nil {
		return err
	}
	g.opts.logger.Info("saving model", zap.String("file", fname))
	return Save(fname, m)
}

// NumberOfChildren draws a number of children for a node of formeme f. A
// formeme never seen in training gets no children.
func (g *Generator) NumberOfChildren(f types.Formeme) (int, error) {
	m, err := g.Model()
	if err != nil {
		return 0, err
	}
	cdf, exists := m.ChildCDFs[f]
	if !exists {
		return 0, nil
	}
	g.opts.metrics.sampled()
	return dist.Sample(g.opts.sampler, cdf)
}

// MergedCDFs is Model.MergedCDFs on the current model.
func (g *Generator) MergedCDFs(da types.DA) (map[types.Formeme]dist.CDF[types.ChildEntry], error) {
	m, err := g.Model()
	if err != nil {
		return nil, err
	}
	return m.MergedCDFs(da)
}

// BestChild draws one child entry from cdf.
func (g *Generator) BestChild(cdf dist.CDF[types.ChildEntry]) (types.ChildEntry, error) {
	g.opts.metrics.sampled()
	return dist.Sample(g.opts.sampler, cdf)
}

// Successors expands cand against the model's child caps.
func (g *Generator) Successors(cand types.CandidateTree, cdfs map[types.Formeme]dist.CDF[types.ChildEntry]) ([]types.CandidateTree, error) {
	m, err := g.Model()
	if err != nil {
		return nil, err
	}
	succs, err := Expand(cand, cdfs, m.MaxChildren)
	if err != nil {
		return nil, err
	}
	g.opts.metrics.expanded(len(succs))
	g.opts.logger.Debug("expanded candidate",
		zap.Int("nodes", cand.NumberOfVertices()),
		zap.Int("successors", len(succs)))
	return succs, nil
}

// IsClosed is IsClosed on the model's child caps.
func (g *Generator) IsClosed(cand types.DepTree, cdfs map[types.Formeme]dist.CDF[types.ChildEntry]) (bool, error) {
	m, err := g.Model()
	if err != nil {
		return false, err
	}
	return IsClosed(cand, cdfs, m.MaxChildren), nil
}
