package randgen

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

func checkCorpus(trees []types.DepTree, das []types.DA) error {
	if len(trees) != len(das) {
		return fmt.Errorf("%w: %d trees, %d dialogue acts", ErrCorpusLengthMismatch, len(trees), len(das))
	}
	return nil
}

// collectTree adds the counts of one aligned (tree, dialogue act) pair.
// Every item of the dialogue act votes for every parent-child arc of the
// tree; the child-count histogram covers every node, root included.
func collectTree(t types.DepTree, da types.DA, formCounts AttachmentCounts, childCounts ChildCounts) {
	for _, dai := range da {
		for _, edgeID := range t.GetEdges() {
			edge := t.GetDirectedEdge(edgeID)
			formCounts.Add(dai, t.Formeme(edge.From()), types.Entry(t, edge.To()), 1)
		}
	}
	for _, node := range t.GetVertices() {
		childCounts.Add(t.Formeme(node), t.NumChildren(node), 1)
	}
}

// Collect counts an aligned corpus sequentially.
func Collect(trees []types.DepTree, das []types.DA) (AttachmentCounts, ChildCounts, error) {
	if err := checkCorpus(trees, das); err != nil {
		return nil, nil, err
	}
	formCounts, childCounts := make(AttachmentCounts), make(ChildCounts)
	for i := range trees {
		collectTree(trees[i], das[i], formCounts, childCounts)
	}
	return formCounts, childCounts, nil
}

type shardCounts struct {
	form  AttachmentCounts
	child ChildCounts
}

// Train builds a new model from an aligned corpus. With WithWorkers(n) the
// corpus is counted in n contiguous shards concurrently; partial tables are
// merged by addition, so the result equals sequential counting.
func Train(ctx context.Context, trees []types.DepTree, das []types.DA, opts ...Option) (*Model, error) {
	o := buildOptions(opts)
	if err := checkCorpus(trees, das); err != nil {
		return nil, err
	}
	shards := util.Shards(len(trees), o.workers)
	o.logger.Info("collecting counts",
		zap.Int("trees", len(trees)),
		zap.Int("shards", len(shards)))

	partial := make([]shardCounts, len(shards))
	g, gctx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		g.Go(func() error {
			counts := shardCounts{make(AttachmentCounts), make(ChildCounts)}
			for j := shard[0]; j < shard[1]; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				collectTree(trees[j], das[j], counts.form, counts.child)
			}
			partial[i] = counts
			o.metrics.trained(shard[1] - shard[0])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	formCounts, childCounts := make(AttachmentCounts), make(ChildCounts)
	for _, counts := range partial {
		formCounts.Merge(counts.form)
		childCounts.Merge(counts.child)
	}
	model, err := NewModel(formCounts, childCounts)
	if err != nil {
		return nil, err
	}
	o.logger.Info("model trained",
		zap.Int("items", len(model.FormCounts)),
		zap.Int("formemes", len(model.ChildCDFs)))
	return model, nil
}
