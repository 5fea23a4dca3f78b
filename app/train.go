package app

import (
	"context"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

// readCorpus reads aligned trees and dialogue acts.
func readCorpus(treesFile, dasFile string) ([]types.DepTree, []types.DA, error) {
	trees, err := readTrees(treesFile)
	if err != nil {
		return nil, nil, err
	}
	das, err := readDAs(dasFile)
	if err != nil {
		return nil, nil, err
	}
	return trees, das, nil
}

func Train(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"trees", "das", "model"}); err != nil {
		return err
	}
	if err := setup(cmd); err != nil {
		return err
	}
	defer logger.Sync()
	if err := VerifyExists(treesFile, dasFile); err != nil {
		return err
	}

	trees, das, err := readCorpus(treesFile, dasFile)
	if err != nil {
		return err
	}
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	if err := gen.Train(context.Background(), trees, das); err != nil {
		return err
	}
	util.LogMemory(logger)
	if err := gen.SaveModel(modelFile); err != nil {
		return err
	}
	logMetrics()
	return nil
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Train,
		UsageLine: "train <file options> [arguments]",
		Short:     "train a random tree generator",
		Long: `
train a random tree generator from aligned trees and dialogue acts

	$ ./tgen train -trees <conll file> -das <dialogue act file> -model <model file> [options]

Model files ending in .gz are compressed.
`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&treesFile, "trees", "", "Training trees (CoNLL, formeme in FEATS)")
	cmd.Flag.StringVar(&dasFile, "das", "", "Training dialogue acts, one per line")
	cmd.Flag.StringVar(&modelFile, "model", "", "Output model file")
	cmd.Flag.IntVar(&workers, "workers", 1, "Number of corpus shards counted concurrently")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit training set")
	addCommonFlags(cmd)
	return cmd
}
