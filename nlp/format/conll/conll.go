package conll

// Package conll reads CoNLL-X format files as a stream of dependency graphs.
// For a description see http://ilk.uvt.nl/conll/#dataformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/irinya/cmsc723-group9-p2/alg/perceptron"
	nlp "github.com/irinya/cmsc723-group9-p2/nlp/types"
)

const (
	FIELD_SEPARATOR = '\t'
	NUM_FIELDS      = 10
	BUFFER_SIZE     = 16384
	MAX_LINE        = 1 << 20
)

var (
	ErrFieldCount = errors.New("wrong number of fields")
	ErrSequence   = errors.New("token ids out of sequence")
)

// A Row is a single parsed row of a conll data set
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	FeatStr string
	Head    int
	DepRel  string
	PHead   string
	PDepRel string
}

func (r Row) String() string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.Form,
		r.Lemma,
		r.CPosTag,
		r.PosTag,
		r.FeatStr,
		strconv.Itoa(r.Head),
		r.DepRel,
		r.PHead,
		r.PDepRel}
	return strings.Join(fields, string(FIELD_SEPARATOR))
}

// A Sentence is the rows of one sentence in file order
type Sentence []Row

func ParseInt(value string) (int, error) {
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) != NUM_FIELDS {
		return row, fmt.Errorf("%w: expected %d got %d", ErrFieldCount, NUM_FIELDS, len(record))
	}
	id, err := ParseInt(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %w", record[0], err)
	}
	row.ID = id

	head, err := ParseInt(record[6])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %w", record[6], err)
	}
	row.Head = head

	row.Form = record[1]
	row.Lemma = record[2]
	row.CPosTag = record[3]
	row.PosTag = record[4]
	row.FeatStr = record[5]
	row.DepRel = record[7]
	row.PHead = record[8]
	row.PDepRel = record[9]
	return row, nil
}

// Reader splits a conll stream into sentences. Blank lines separate
// sentences; runs of blank lines are ignored and the last sentence need not
// be followed by one.
type Reader struct {
	// Limit stops reading after this many sentences if positive
	Limit int

	scanner *bufio.Scanner
	line    int
	count   int
	sent    Sentence
	err     error
}

func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, BUFFER_SIZE), MAX_LINE)
	return &Reader{scanner: scanner}
}

// Next advances to the next sentence, returning false at the end of input
// or on the first error
func (r *Reader) Next() bool {
	if r.err != nil || (r.Limit > 0 && r.count >= r.Limit) {
		return false
	}
	var sent Sentence
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if len(text) == 0 {
			if len(sent) > 0 {
				break
			}
			continue
		}
		row, err := ParseRow(strings.Split(text, string(FIELD_SEPARATOR)))
		if err != nil {
			r.err = fmt.Errorf("error processing line %d at sentence %d: %w", r.line, r.count, err)
			return false
		}
		sent = append(sent, row)
	}
	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("failure reading line %d: %w", r.line+1, err)
		return false
	}
	if len(sent) == 0 {
		return false
	}
	r.sent = sent
	r.count++
	return true
}

func (r *Reader) Sentence() Sentence {
	return r.sent
}

// Line is the number of the last line read
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) Err() error {
	return r.err
}

func Read(reader io.Reader, limit int) ([]Sentence, error) {
	var sentences []Sentence
	r := NewReader(reader)
	r.Limit = limit
	for r.Next() {
		sentences = append(sentences, r.Sentence())
	}
	return sentences, r.Err()
}

func ReadFile(filename string, limit int) ([]Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, limit)
}

// Conll2Graph converts a sentence to a dependency graph, injecting the root
// node at index 0. Token ids must run 1..n and every head must name a node.
func Conll2Graph(sent Sentence, normalize bool) (*nlp.DependencyGraph, error) {
	nodes := make([]nlp.Node, len(sent))
	for i, row := range sent {
		if row.ID != i+1 {
			return nil, fmt.Errorf("%w: expected id %d got %d", ErrSequence, i+1, row.ID)
		}
		form, lemma := row.Form, row.Lemma
		if normalize {
			form, lemma = norm.NFC.String(form), norm.NFC.String(lemma)
		}
		nodes[i] = nlp.Node{
			Word:  form,
			POS:   row.PosTag,
			Lemma: lemma,
			CPOS:  row.CPosTag,
			Feats: row.FeatStr,
		}
	}
	graph := nlp.NewDependencyGraph(nodes)
	for _, row := range sent {
		if err := graph.AddArc(row.Head, row.ID); err != nil {
			return nil, fmt.Errorf("token %d: %w", row.ID, err)
		}
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	return graph, nil
}

// Corpus is a conll file that is read anew on every Open
type Corpus struct {
	Filename  string
	Limit     int
	Normalize bool
}

var _ perceptron.Corpus = &Corpus{}

func (c *Corpus) Open() (perceptron.Stream, error) {
	file, err := os.Open(c.Filename)
	if err != nil {
		return nil, err
	}
	stream := NewStream(file, c.Limit, c.Normalize)
	stream.closer = file
	return stream, nil
}

// Stream yields one dependency graph at a time
type Stream struct {
	reader    *Reader
	normalize bool
	closer    io.Closer
	graph     *nlp.DependencyGraph
	err       error
}

var _ perceptron.Stream = &Stream{}

func NewStream(reader io.Reader, limit int, normalize bool) *Stream {
	r := NewReader(reader)
	r.Limit = limit
	return &Stream{reader: r, normalize: normalize}
}

func (s *Stream) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.reader.Next() {
		s.err = s.reader.Err()
		return false
	}
	graph, err := Conll2Graph(s.reader.Sentence(), s.normalize)
	if err != nil {
		s.err = fmt.Errorf("error processing sentence ending at line %d: %w", s.reader.Line(), err)
		return false
	}
	s.graph = graph
	return true
}

func (s *Stream) Graph() *nlp.DependencyGraph {
	return s.graph
}

func (s *Stream) Instance() perceptron.Instance {
	return s.graph
}

func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
