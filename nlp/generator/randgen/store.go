package randgen

import (
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/johndpope/tgen/alg/dist"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

const (
	MODEL_MAGIC   = "tgen-randgen"
	MODEL_VERSION = 1
)

// Header tags a model stream; it is written before the three tables.
type Header struct {
	Magic   string
	Version int
	ID      string
	Created time.Time
}

// WriteModel encodes the header followed by the attachment counts, the
// child-count distributions and the child caps, in that order.
func WriteModel(writer io.Writer, m *Model) error {
	enc := gob.NewEncoder(writer)
	header := Header{
		Magic:   MODEL_MAGIC,
		Version: MODEL_VERSION,
		ID:      uuid.NewString(),
		Created: time.Now().UTC(),
	}
	for _, record := range []interface{}{header, m.FormCounts, m.ChildCDFs, m.MaxChildren} {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encoding model: %w", err)
		}
	}
	return nil
}

// ReadModel decodes a stream written by WriteModel.
func ReadModel(reader io.Reader) (*Model, Header, error) {
	var (
		header Header
		m      = &Model{}
	)
	dec := gob.NewDecoder(reader)
	if err := dec.Decode(&header); err != nil {
		return nil, header, fmt.Errorf("%w: decoding header: %v", ErrBadModelFormat, err)
	}
	if header.Magic != MODEL_MAGIC || header.Version != MODEL_VERSION {
		return nil, header, fmt.Errorf("%w: got %q version %d", ErrBadModelFormat, header.Magic, header.Version)
	}
	if err := dec.Decode(&m.FormCounts); err != nil {
		return nil, header, fmt.Errorf("decoding attachment counts: %w", err)
	}
	if err := dec.Decode(&m.ChildCDFs); err != nil {
		return nil, header, fmt.Errorf("decoding child distributions: %w", err)
	}
	if err := dec.Decode(&m.MaxChildren); err != nil {
		return nil, header, fmt.Errorf("decoding child caps: %w", err)
	}
	if m.FormCounts == nil {
		m.FormCounts = make(AttachmentCounts)
	}
	if m.ChildCDFs == nil {
		m.ChildCDFs = make(map[types.Formeme]dist.CDF[int])
	}
	if m.MaxChildren == nil {
		m.MaxChildren = make(MaxChildren)
	}
	return m, header, nil
}

// Save writes m to fname; names ending in .gz are gzip-compressed.
func Save(fname string, m *Model) error {
	file, err := util.CreateFile(fname)
	if err != nil {
		return err
	}
	if err := WriteModel(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Load reads a model file written by Save, returning its header with it.
func Load(fname string) (*Model, Header, error) {
	file, err := util.OpenFile(fname)
	if err != nil {
		return nil, Header{}, err
	}
	defer file.Close()
	return ReadModel(file)
}
