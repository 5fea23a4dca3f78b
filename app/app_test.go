package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johndpope/tgen/nlp/format/conll"
	"github.com/johndpope/tgen/util/conf"
)

const trainTrees = "1	it	it	PRP	PRP	formeme=n:subj	2	nsubj	_	_\n" +
	"2	is	be	VBZ	VBZ	formeme=v:fin	0	root	_	_\n" +
	"3	dog	dog	NN	NN	formeme=n:obj	2	dobj	_	_\n" +
	"\n" +
	"1	cat	cat	NN	NN	formeme=n:subj	2	nsubj	_	_\n" +
	"2	is	be	VBZ	VBZ	formeme=v:fin	0	root	_	_\n"

const trainDAs = "# one act per tree\n" +
	"inform(type=dog)\n" +
	"inform(type=cat)&confirm()\n"

func writeFiles(t *testing.T) (dir, trees, das string) {
	dir = t.TempDir()
	trees, das = filepath.Join(dir, "train.conll"), filepath.Join(dir, "train.da")
	require.NoError(t, os.WriteFile(trees, []byte(trainTrees), 0o644))
	require.NoError(t, os.WriteFile(das, []byte(trainDAs), 0o644))
	return dir, trees, das
}

func run(args ...string) error {
	return AllCommands("tgen").Dispatch(args)
}

func TestTrainGenExpandEval(t *testing.T) {
	dir, trees, das := writeFiles(t)
	model := filepath.Join(dir, "model.gob.gz")
	require.NoError(t, run("train", "-trees", trees, "-das", das, "-model", model, "-workers", "2"))
	assert.FileExists(t, model)

	generated := filepath.Join(dir, "gen.conll")
	require.NoError(t, run("gen", "-model", model, "-das", das, "-out", generated, "-gold", trees, "-seed", "3"))
	sents, err := conll.ReadFile(generated)
	require.NoError(t, err)
	require.Len(t, sents, 2)
	for _, sent := range sents {
		var heads []string
		for _, row := range sent {
			if row.Head == 0 {
				heads = append(heads, row.Lemma)
			}
		}
		assert.Equal(t, []string{"be"}, heads, "the root takes a single verb")
	}

	succs := filepath.Join(dir, "succ.conll")
	require.NoError(t, run("expand", "-model", model, "-das", das, "-out", succs))
	sents, err = conll.ReadFile(succs)
	require.NoError(t, err)
	assert.Len(t, sents, 2)

	require.NoError(t, run("eval", "-test", generated, "-gold", trees))
}

func TestTrainWithConfig(t *testing.T) {
	dir, trees, das := writeFiles(t)
	c := conf.DefaultConfig()
	c.Workers = 2
	c.Metrics.Enabled = true
	c.Logging.Level = "debug"
	configPath := filepath.Join(dir, "tgen.yaml")
	require.NoError(t, c.Save(configPath))

	model := filepath.Join(dir, "model.gob")
	require.NoError(t, run("train", "-trees", trees, "-das", das, "-model", model, "-config", configPath))
	assert.Equal(t, 2, cfg.Workers)
	require.NotNil(t, registry)
	assert.FileExists(t, model)
}

func TestCommandErrors(t *testing.T) {
	dir, trees, das := writeFiles(t)
	assert.Error(t, run("train", "-trees", trees, "-das", das))
	assert.Error(t, run("train", "-trees", filepath.Join(dir, "missing"), "-das", das, "-model", filepath.Join(dir, "m")))
	assert.Error(t, run("gen", "-model", filepath.Join(dir, "missing"), "-das", das, "-out", filepath.Join(dir, "out")))

	bad := filepath.Join(dir, "bad.da")
	require.NoError(t, os.WriteFile(bad, []byte("inform(type=dog)\n"), 0o644))
	assert.Error(t, run("train", "-trees", trees, "-das", bad, "-model", filepath.Join(dir, "m")),
		"corpus length mismatch")
}

func TestCPUsCappedIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	buildLogger = func(conf.LoggingConfig, bool) (*zap.Logger, error) {
		return zap.New(core), nil
	}
	defer func() { buildLogger = NewLogger }()

	dir, trees, das := writeFiles(t)
	cpus := runtime.NumCPU() + 1
	require.NoError(t, run("train", "-trees", trees, "-das", das, "-model", filepath.Join(dir, "m"),
		"-cpus", strconv.Itoa(cpus)))

	capped := logs.FilterMessage("number of CPUs capped to all available").All()
	require.Len(t, capped, 1)
	assert.Equal(t, int64(runtime.NumCPU()), capped[0].ContextMap()["cpus"])
	assert.Equal(t, runtime.NumCPU(), CPUs)
}
