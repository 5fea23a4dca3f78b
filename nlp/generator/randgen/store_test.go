package randgen

import (
	"bytes"
	"context"
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := trainedModel(t)
	dir := t.TempDir()
	for _, name := range []string{"model.gob", "model.gob.gz"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, Save(fname, m))
		loaded, _, err := Load(fname)
		require.NoError(t, err)
		if diff := cmp.Diff(m, loaded); diff != "" {
			t.Errorf("%s: round trip mismatch (-saved +loaded):\n%s", name, diff)
		}
	}
}

func TestSaveCompresses(t *testing.T) {
	m := trainedModel(t)
	dir := t.TempDir()
	plain, gz := filepath.Join(dir, "model.gob"), filepath.Join(dir, "model.gob.gz")
	require.NoError(t, Save(plain, m))
	require.NoError(t, Save(gz, m))
	raw, err := os.ReadFile(gz)
	require.NoError(t, err)
	// gzip magic
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	_, _, err = Load(plain + ".missing")
	assert.Error(t, err)
}

func TestReadModelHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, trainedModel(t)))
	_, header, err := ReadModel(&buf)
	require.NoError(t, err)
	assert.Equal(t, MODEL_MAGIC, header.Magic)
	assert.Equal(t, MODEL_VERSION, header.Version)
	assert.Len(t, header.ID, 36)
	assert.False(t, header.Created.IsZero())
}

func TestReadModelBadFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(Header{Magic: "yap-model", Version: 1}))
	_, _, err := ReadModel(&buf)
	assert.ErrorIs(t, err, ErrBadModelFormat)

	buf.Reset()
	require.NoError(t, gob.NewEncoder(&buf).Encode(Header{Magic: MODEL_MAGIC, Version: MODEL_VERSION + 1}))
	_, _, err = ReadModel(&buf)
	assert.ErrorIs(t, err, ErrBadModelFormat)

	_, _, err = ReadModel(bytes.NewBufferString("not a model"))
	assert.ErrorIs(t, err, ErrBadModelFormat)
}

func TestGeneratorSaveLoad(t *testing.T) {
	trees, das := corpus(t)
	g := NewGenerator()
	require.NoError(t, g.Train(context.Background(), trees, das))
	fname := filepath.Join(t.TempDir(), "model.gz")
	require.NoError(t, g.SaveModel(fname))

	other := NewGenerator()
	require.NoError(t, other.LoadModel(fname))
	want, err := g.Model()
	require.NoError(t, err)
	got, err := other.Model()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoadModelLogsHeader(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, Save(fname, trainedModel(t)))
	_, header, err := Load(fname)
	require.NoError(t, err)
	require.Len(t, header.ID, 36)

	core, logs := observer.New(zap.InfoLevel)
	g := NewGenerator(WithLogger(zap.New(core)))
	require.NoError(t, g.LoadModel(fname))

	loaded := logs.FilterMessage("model loaded").All()
	require.Len(t, loaded, 1)
	fields := loaded[0].ContextMap()
	assert.Equal(t, header.ID, fields["id"])
	assert.True(t, header.Created.Equal(fields["created"].(time.Time)))
	assert.Equal(t, int64(3), fields["items"])

	// every save is tagged with a fresh id
	require.NoError(t, Save(fname, trainedModel(t)))
	_, again, err := Load(fname)
	require.NoError(t, err)
	assert.NotEqual(t, header.ID, again.ID)
}
