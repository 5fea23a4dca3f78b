// Package da reads dialogue acts, one per line, in the notation
//
//	inform(name="Golden Dragon",food=Chinese)&request(area)&hello()
//
// Each slot=value pair becomes one item; an act without slots becomes a
// single item with empty slot and value.
package da

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
	"github.com/johndpope/tgen/util/conf"
)

const (
	ACT_SEPARATOR   = '&'
	SLOT_SEPARATOR  = ','
	VALUE_SEPARATOR = '='
	QUOTE           = '"'
	ESCAPE          = '\\'
)

var quoteUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`)

var ErrSyntax = errors.New("da: syntax error")

// split cuts s at every sep outside double quotes
func split(s string, sep byte) ([]string, error) {
	var (
		parts  []string
		quoted bool
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ESCAPE:
			if quoted {
				i++
			}
		case QUOTE:
			quoted = !quoted
		case sep:
			if !quoted {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unbalanced quotes in %q", ErrSyntax, s)
	}
	return append(parts, s[start:]), nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == QUOTE && s[len(s)-1] == QUOTE {
		return quoteUnescaper.Replace(s[1 : len(s)-1])
	}
	return s
}

func parseAct(act string) (types.DA, error) {
	act = strings.TrimSpace(act)
	open := strings.IndexByte(act, '(')
	if open <= 0 || act[len(act)-1] != ')' {
		return nil, fmt.Errorf("%w: malformed act %q", ErrSyntax, act)
	}
	daType := strings.TrimSpace(act[:open])
	inner := strings.TrimSpace(act[open+1 : len(act)-1])
	if inner == "" {
		return types.DA{{DAType: daType}}, nil
	}
	slots, err := split(inner, SLOT_SEPARATOR)
	if err != nil {
		return nil, err
	}
	retval := make(types.DA, 0, len(slots))
	for _, slot := range slots {
		kv, err := split(slot, VALUE_SEPARATOR)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(kv[0])
		if name == "" || len(kv) > 2 {
			return nil, fmt.Errorf("%w: malformed slot %q in %q", ErrSyntax, slot, act)
		}
		dai := types.DAI{DAType: daType, Slot: name}
		if len(kv) == 2 {
			dai.Value = unquote(kv[1])
		}
		retval = append(retval, dai)
	}
	return retval, nil
}

// Parse reads a single dialogue act
func Parse(s string) (types.DA, error) {
	acts, err := split(strings.TrimSpace(s), ACT_SEPARATOR)
	if err != nil {
		return nil, err
	}
	var retval types.DA
	for _, act := range acts {
		dais, err := parseAct(act)
		if err != nil {
			return nil, err
		}
		retval = append(retval, dais...)
	}
	return retval, nil
}

func fromConf(c *conf.Conf) ([]types.DA, error) {
	das := make([]types.DA, len(c.Values))
	for i, line := range c.Values {
		parsed, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("dialogue act %d: %w", i, err)
		}
		das[i] = parsed
	}
	return das, nil
}

func Read(reader io.Reader) ([]types.DA, error) {
	c, err := conf.Read(reader)
	if err != nil {
		return nil, err
	}
	return fromConf(c)
}

func ReadFile(filename string) ([]types.DA, error) {
	c, err := conf.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return fromConf(c)
}

func Write(writer io.Writer, das []types.DA) error {
	for _, d := range das {
		if _, err := io.WriteString(writer, d.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, das []types.DA) error {
	file, err := util.CreateFile(filename)
	if err != nil {
		return err
	}
	if err := Write(file, das); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
