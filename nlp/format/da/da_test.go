package da

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/tgen/nlp/types"
)

func TestParse(t *testing.T) {
	parsed, err := Parse(`inform(name="Golden Dragon, Ltd",food=Chinese)&request(area)&hello()`)
	require.NoError(t, err)
	assert.Equal(t, types.DA{
		{DAType: "inform", Slot: "name", Value: "Golden Dragon, Ltd"},
		{DAType: "inform", Slot: "food", Value: "Chinese"},
		{DAType: "request", Slot: "area"},
		{DAType: "hello"},
	}, parsed)
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{
		"inform",
		"inform(food=Chinese",
		"(food=Chinese)",
		`inform(name="unbalanced)`,
		"inform(=x)",
		"inform(a=b=c)",
	} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	input := "# training DAs\ninform(food=Chinese)&inform(price=cheap)\n\nhello()\n"
	das, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, das, 2)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, das))
	assert.Equal(t, "inform(food=Chinese)&inform(price=cheap)\nhello()\n", buf.String())

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, das, again)
}

func TestFileRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "das.txt.gz")
	das := []types.DA{{{DAType: "inform", Slot: "name", Value: "Golden Dragon"}}}
	require.NoError(t, WriteFile(name, das))
	again, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, das, again)
}

func TestQuotedValuesRoundTrip(t *testing.T) {
	das := []types.DA{{
		{DAType: "inform", Slot: "name", Value: `The "Golden" Dragon`},
		{DAType: "inform", Slot: "path", Value: `C:\dir, "x"`},
		{DAType: "inform", Slot: "tail", Value: `ends in \`},
	}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, das))
	assert.Equal(t, `inform(name="The \"Golden\" Dragon")&inform(path="C:\\dir, \"x\"")&inform(tail="ends in \\")`+"\n",
		buf.String())

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, das, again)
}
