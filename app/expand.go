package app

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/johndpope/tgen/alg/dist"
	"github.com/johndpope/tgen/nlp/format/conll"
	"github.com/johndpope/tgen/nlp/tree"
	"github.com/johndpope/tgen/nlp/types"
)

// candidates returns one candidate per dialogue act: the trees of
// treesFile if given, otherwise bare technical roots.
func candidates(n int) ([]types.CandidateTree, error) {
	retval := make([]types.CandidateTree, n)
	if treesFile == "" {
		for i := range retval {
			retval[i] = tree.New(types.Formeme(cfg.RootFormeme), cfg.RootLemma)
		}
		return retval, nil
	}
	sents, err := conll.ReadFile(treesFile)
	if err != nil {
		return nil, fmt.Errorf("reading candidates: %w", err)
	}
	trees, err := conll.Sentences2Trees(limitTo(sents), rootNode())
	if err != nil {
		return nil, err
	}
	if len(trees) != n {
		return nil, fmt.Errorf("%d candidate trees for %d dialogue acts", len(trees), n)
	}
	for i, t := range trees {
		retval[i] = t
	}
	return retval, nil
}

func Expand(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"model", "das", "out"}); err != nil {
		return err
	}
	if err := setup(cmd); err != nil {
		return err
	}
	defer logger.Sync()
	if err := VerifyExists(modelFile, dasFile, treesFile); err != nil {
		return err
	}

	gen, err := loadGenerator()
	if err != nil {
		return err
	}
	das, err := readDAs(dasFile)
	if err != nil {
		return err
	}
	cands, err := candidates(len(das))
	if err != nil {
		return err
	}
	var succs []types.DepTree
	// merging ignores item order, so acts are cached by their sorted form
	merged := make(map[string]map[types.Formeme]dist.CDF[types.ChildEntry])
	for i, act := range das {
		key := act.Sorted().String()
		cdfs, exists := merged[key]
		if !exists {
			if cdfs, err = gen.MergedCDFs(act); err != nil {
				return fmt.Errorf("dialogue act %d: %w", i, err)
			}
			merged[key] = cdfs
		}
		expanded, err := gen.Successors(cands[i], cdfs)
		if err != nil {
			return fmt.Errorf("expanding candidate %d: %w", i, err)
		}
		logger.Debug("expanded",
			zap.Int("candidate", i),
			zap.Stringer("da", act),
			zap.Int("successors", len(expanded)))
		for _, succ := range expanded {
			succs = append(succs, succ)
		}
	}
	logger.Info("writing successors", zap.String("file", outFile), zap.Int("trees", len(succs)))
	if err := conll.WriteFile(outFile, conll.Trees2Sentences(succs)); err != nil {
		return err
	}
	logMetrics()
	return nil
}

func ExpandCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Expand,
		UsageLine: "expand <file options> [arguments]",
		Short:     "list every one-node expansion of candidate trees",
		Long: `
list every one-node expansion of candidate trees under the distributions of
their dialogue acts; without -trees each candidate is a bare root

	$ ./tgen expand -model <model file> -das <dialogue act file> -out <conll file> [-trees <conll file>] [options]

`,
		Flag: *flag.NewFlagSet("expand", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "model", "", "Model file")
	cmd.Flag.StringVar(&dasFile, "das", "", "Dialogue acts, one per line")
	cmd.Flag.StringVar(&treesFile, "trees", "", "Candidate trees aligned with the dialogue acts (optional)")
	cmd.Flag.StringVar(&outFile, "out", "", "Output successor trees (CoNLL)")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit input set")
	addCommonFlags(cmd)
	return cmd
}
