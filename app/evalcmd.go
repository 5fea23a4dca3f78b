package app

import (
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/johndpope/tgen/eval"
)

func Eval(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"test", "gold"}); err != nil {
		return err
	}
	if err := setup(cmd); err != nil {
		return err
	}
	defer logger.Sync()
	if err := VerifyExists(treesFile, goldFile); err != nil {
		return err
	}
	test, err := readTrees(treesFile)
	if err != nil {
		return err
	}
	gold, err := readTrees(goldFile)
	if err != nil {
		return err
	}
	total, err := eval.Corpus(test, gold, eval.Trees, true)
	if err != nil {
		return err
	}
	logEval(total)
	return nil
}

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Eval,
		UsageLine: "eval <file options> [arguments]",
		Short:     "compare generated trees with gold trees",
		Long: `
compare generated trees with gold trees by node attachments (parent formeme,
formeme, lemma, direction) and report precision, recall and F1

	$ ./tgen eval -test <conll file> -gold <conll file> [options]

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&treesFile, "test", "", "Generated trees (CoNLL)")
	cmd.Flag.StringVar(&goldFile, "gold", "", "Gold trees (CoNLL)")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit input set")
	addCommonFlags(cmd)
	return cmd
}
