package app

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/johndpope/tgen/eval"
	"github.com/johndpope/tgen/nlp/format/conll"
	"github.com/johndpope/tgen/nlp/format/da"
	"github.com/johndpope/tgen/nlp/generator/randgen"
	"github.com/johndpope/tgen/nlp/tree"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

const TOP_ERRORS = 10

func loadGenerator() (*randgen.Generator, error) {
	gen, err := newGenerator()
	if err != nil {
		return nil, err
	}
	if err := gen.LoadModel(modelFile); err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	return gen, nil
}

func readDAs(filename string) ([]types.DA, error) {
	logger.Info("reading dialogue acts", zap.String("file", filename))
	das, err := da.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading dialogue acts: %w", err)
	}
	return limitTo(das), nil
}

func readTrees(filename string) ([]types.DepTree, error) {
	logger.Info("reading trees", zap.String("file", filename))
	sents, err := conll.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading trees: %w", err)
	}
	trees, err := conll.Sentences2Trees(limitTo(sents), rootNode())
	if err != nil {
		return nil, err
	}
	retval := make([]types.DepTree, len(trees))
	for i, t := range trees {
		retval[i] = t
	}
	return retval, nil
}

func logEval(total *eval.Total) {
	logger.Info("evaluation",
		zap.Int("trees", total.Population),
		zap.Float64("precision", total.Precision()),
		zap.Float64("recall", total.Recall()),
		zap.Float64("f1", total.F1()),
		zap.Float64("exact", total.ExactMatch()))
	errs := total.Errors()
	for class, n := range errs.ByType() {
		logger.Debug("errors", zap.String("class", class), zap.Int("count", n))
	}
	byAttachment := make(map[string]int)
	for _, e := range errs {
		byAttachment[e.String()]++
	}
	for _, top := range util.GetTopNStrInt(byAttachment, TOP_ERRORS) {
		logger.Debug("frequent error", zap.String("error", top.S), zap.Int("count", top.N))
	}
}

func Gen(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"model", "das", "out"}); err != nil {
		return err
	}
	if err := setup(cmd); err != nil {
		return err
	}
	defer logger.Sync()
	if err := VerifyExists(modelFile, dasFile, goldFile); err != nil {
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
	ctx := context.Background()
	generated := make([]types.DepTree, len(das))
	for i, act := range das {
		t, err := gen.Generate(ctx, act, tree.New(types.Formeme(cfg.RootFormeme), cfg.RootLemma))
		if err != nil {
			return fmt.Errorf("generating tree %d for %v: %w", i, act, err)
		}
		generated[i] = t
	}
	logger.Info("writing trees", zap.String("file", outFile), zap.Int("trees", len(generated)))
	if err := conll.WriteFile(outFile, conll.Trees2Sentences(generated)); err != nil {
		return err
	}

	if goldFile != "" {
		gold, err := readTrees(goldFile)
		if err != nil {
			return err
		}
		total, err := eval.Corpus(generated, gold, eval.Trees, true)
		if err != nil {
			return err
		}
		logEval(total)
	}
	logMetrics()
	return nil
}

func GenCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Gen,
		UsageLine: "gen <file options> [arguments]",
		Short:     "generate random trees for dialogue acts",
		Long: `
generate one random tree per dialogue act, following the training distributions

	$ ./tgen gen -model <model file> -das <dialogue act file> -out <conll file> [-gold <conll file>] [options]

`,
		Flag: *flag.NewFlagSet("gen", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "model", "", "Model file")
	cmd.Flag.StringVar(&dasFile, "das", "", "Dialogue acts, one per line")
	cmd.Flag.StringVar(&outFile, "out", "", "Output trees (CoNLL)")
	cmd.Flag.StringVar(&goldFile, "gold", "", "Gold trees to evaluate against (optional)")
	cmd.Flag.Int64Var(&seed, "seed", 0, "Random seed; 0 seeds from the clock")
	cmd.Flag.IntVar(&maxNodes, "maxnodes", 50, "Maximum nodes per generated tree")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit input set")
	addCommonFlags(cmd)
	return cmd
}
