// Package lexical implements the heuristics -> tokenize -> stop filter ->
// stem pipeline shared by the indexing and query paths. A Pipeline is a
// value, built once per engine, over an ordered list of Stage functions.
package lexical

// Stage turns an ordered sequence of strings into another ordered
// sequence of strings. Heuristics collapses its input to one string;
// Tokenize expands each string into its words; the stop filter
// preserves or shrinks the sequence and the stemmer keeps its length.
// Favoring a plain
// function type over an interface hierarchy keeps user-supplied stages
// (a fifth kind of Stage alongside the four built-ins) trivial to write.
type Stage func(in []string) []string

// Pipeline is an ordered, immutable composition of Stages, shared
// between indexing and querying so recall stays symmetric.
type Pipeline struct {
	stages []Stage
}

// New builds a Pipeline from stages in application order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// Run applies every stage in order to text and returns the resulting
// term sequence. Run is deterministic, order-preserving, and idempotent
// when re-applied to its own output (Run(strings.Join(Run(x), " "))).
func (p *Pipeline) Run(text string) []string {
	seq := []string{text}
	for _, stage := range p.stages {
		seq = stage(seq)
	}
	if seq == nil {
		return []string{}
	}
	return seq
}

// Default stage names recognized by engine configuration's "filters" list.
const (
	NameHeuristics = "heuristics"
	NameTokenize   = "tokenize"
	NameStop       = "stop"
	NameStem       = "stem"
)
