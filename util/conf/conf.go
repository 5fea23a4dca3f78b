package conf

import (
	"io"
	"strings"

	"github.com/johndpope/tgen/util"
)

const COMMENT_PREFIX = '#'

// Conf holds the non-empty, non-comment lines of a list file
type Conf struct {
	Values []string
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	retval := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(strings.TrimSpace(line)) > 0 && line[0] != COMMENT_PREFIX {
			retval = append(retval, line)
		}
	}
	return &Conf{retval}, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := util.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
