// Package conll reads and writes dependency trees in a CoNLL-style tab
// separated format. The LEMMA column carries the t-lemma and the FEATS
// column carries the formeme as formeme=<label>.
// For a description of the base format see http://ilk.uvt.nl/conll/#dataformat
package conll

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/johndpope/tgen/nlp/tree"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

const (
	FIELD_SEPARATOR      = '\t'
	NUM_FIELDS           = 10
	FEATURES_SEPARATOR   = "|"
	FEATURE_SEPARATOR    = "="
	FEATURE_CONCAT_DELIM = ","
	FORMEME_FEATURE      = "formeme"
	EMPTY_FIELD          = "_"
)

var ErrNoFormeme = errors.New("conll: row has no formeme feature")

type Features map[string]string

func (f Features) String() string {
	return FormatFeatures(f)
}

func FormatFeatures(feat map[string]string) string {
	if len(feat) == 0 {
		return EMPTY_FIELD
	}
	strs := make([]string, 0, len(feat))
	for k, v := range feat {
		strs = append(strs, fmt.Sprintf("%v%v%v", k, FEATURE_SEPARATOR, v))
	}
	sort.Strings(strs)
	return strings.Join(strs, FEATURES_SEPARATOR)
}

// A Row is a single parsed row of a conll data set
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   Features
	Head    int
	DepRel  string
}

func (r Row) Formeme() types.Formeme {
	return types.Formeme(r.Feats[FORMEME_FEATURE])
}

func orEmpty(value string) string {
	if value == "" {
		return EMPTY_FIELD
	}
	return value
}

func (r Row) String() string {
	fields := []string{
		fmt.Sprintf("%d", r.ID),
		orEmpty(r.Form),
		orEmpty(r.Lemma),
		orEmpty(r.CPosTag),
		orEmpty(r.PosTag),
		FormatFeatures(r.Feats),
		fmt.Sprintf("%d", r.Head),
		orEmpty(r.DepRel),
		EMPTY_FIELD,
		EMPTY_FIELD}
	return strings.Join(fields, "\t")
}

// A Sentence is a map of Rows using their ids
type Sentence map[int]Row

type Sentences []Sentence

func ParseInt(value string) (int, error) {
	if value == EMPTY_FIELD {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == EMPTY_FIELD {
		return ""
	}
	return value
}

func ParseFeatures(featuresStr string) (Features, error) {
	var featureMap Features
	if featuresStr == EMPTY_FIELD || featuresStr == "" {
		return featureMap, nil
	}

	featureList := strings.Split(featuresStr, FEATURES_SEPARATOR)
	featureMap = make(Features, len(featureList))
	for _, featureStr := range featureList {
		featureKV := strings.SplitN(featureStr, FEATURE_SEPARATOR, 2)
		if len(featureKV) != 2 {
			return nil, fmt.Errorf("wrong number of fields for split of feature %s", featureStr)
		}
		featName := featureKV[0]
		featValue := featureKV[1]
		existingFeatValue, featExist := featureMap[featName]
		if featExist {
			featureMap[featName] = existingFeatValue + FEATURE_CONCAT_DELIM + featValue
		} else {
			featureMap[featName] = featValue
		}
	}
	return featureMap, nil
}

func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) < 8 {
		return row, fmt.Errorf("expected at least 8 fields, got %d", len(record))
	}
	id, err := ParseInt(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %w", record[0], err)
	}
	row.ID = id

	form := ParseString(record[1])
	if form == "" {
		return row, errors.New("empty FORM field")
	}
	row.Form = form

	row.Lemma = ParseString(record[2])
	if row.Lemma == "" {
		row.Lemma = form
	}
	row.CPosTag = ParseString(record[3])
	row.PosTag = ParseString(record[4])

	features, err := ParseFeatures(record[5])
	if err != nil {
		return row, fmt.Errorf("error parsing FEATS field (%s): %w", record[5], err)
	}
	row.Feats = features
	if row.Formeme() == "" {
		return row, ErrNoFormeme
	}

	head, err := ParseInt(record[6])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %w", record[6], err)
	}
	row.Head = head
	row.DepRel = ParseString(record[7])
	return row, nil
}

func Read(reader io.Reader) (Sentences, error) {
	var sentences Sentences
	csvReader := csv.NewReader(reader)
	csvReader.Comma = FIELD_SEPARATOR
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.Comment = '#'

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failure reading delimited file: %w", err)
	}

	var currentSent Sentence
	for i, record := range records {
		// a record with id '1' indicates a new sentence
		// since csv reader ignores empty lines
		if record[0] == "1" {
			if currentSent != nil {
				sentences = append(sentences, currentSent)
			}
			currentSent = make(Sentence)
		}
		if currentSent == nil {
			return nil, fmt.Errorf("record %d: sentence does not start at ID 1", i)
		}

		row, err := ParseRow(record)
		if err != nil {
			return nil, fmt.Errorf("error processing record %d at statement %d: %w", i, len(sentences), err)
		}
		currentSent[row.ID] = row
	}
	if currentSent != nil {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string) (Sentences, error) {
	file, err := util.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

func Write(writer io.Writer, sents Sentences) error {
	for _, sent := range sents {
		for i := 1; i <= len(sent); i++ {
			row := sent[i]
			if _, err := io.WriteString(writer, row.String()+"\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(writer, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sents Sentences) error {
	file, err := util.CreateFile(filename)
	if err != nil {
		return err
	}
	if err := Write(file, sents); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Sentence2Tree converts a sentence to a tree under a technical root
func Sentence2Tree(sent Sentence, root tree.Node) (*tree.Tree, error) {
	var (
		formemes = make([]types.Formeme, len(sent))
		lemmas   = make([]string, len(sent))
		heads    = make([]int, len(sent))
	)
	for i := 1; i <= len(sent); i++ {
		row, exists := sent[i]
		if !exists {
			return nil, fmt.Errorf("sentence is missing row %d of %d", i, len(sent))
		}
		formemes[i-1] = row.Formeme()
		lemmas[i-1] = row.Lemma
		heads[i-1] = row.Head
	}
	return tree.FromHeads(root, formemes, lemmas, heads)
}

func Sentences2Trees(sents Sentences, root tree.Node) ([]*tree.Tree, error) {
	trees := make([]*tree.Tree, len(sents))
	for i, sent := range sents {
		t, err := Sentence2Tree(sent, root)
		if err != nil {
			return nil, fmt.Errorf("converting sentence %d: %w", i, err)
		}
		trees[i] = t
	}
	return trees, nil
}

// Tree2Sentence writes out the non-root nodes of t in surface order
func Tree2Sentence(t types.DepTree) Sentence {
	ordered := t.Ordered()
	ids := make(map[int]int, len(ordered))
	for _, node := range ordered {
		if node != t.Root() {
			ids[node] = len(ids) + 1
		}
	}
	sent := make(Sentence, len(ids))
	for node, id := range ids {
		row := Row{
			ID:    id,
			Form:  t.Lemma(node),
			Lemma: t.Lemma(node),
			Feats: Features{FORMEME_FEATURE: string(t.Formeme(node))},
			Head:  ids[t.Parent(node)], // root maps to 0
		}
		sent[id] = row
	}
	return sent
}

func Trees2Sentences(trees []types.DepTree) Sentences {
	sents := make(Sentences, len(trees))
	for i, t := range trees {
		sents[i] = Tree2Sentence(t)
	}
	return sents
}
