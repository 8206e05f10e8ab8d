package search

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitpan/Search-FreeText/lexical"
	"github.com/gitpan/Search-FreeText/metrics"
	"github.com/gitpan/Search-FreeText/notify"
	"github.com/gitpan/Search-FreeText/scorer"
	"github.com/gitpan/Search-FreeText/store"
)

// BM25Values are the engine's B/K1/K3 overrides, matching the "values"
// configuration option in SPEC_FULL.md §6.
type BM25Values struct {
	B  *float64 `yaml:"b"`
	K1 *float64 `yaml:"k1"`
	K3 *float64 `yaml:"k3"`
}

// Config is captured once at construction and never mutated afterward,
// per the "immutable configuration value" design note in spec.md §9. It
// is consumed both by the constructor (to build the lexical Pipeline)
// and at query time (BM25 parameters, stop list already baked into the
// Pipeline).
type Config struct {
	// Store is the backing Store the engine reads and writes through.
	// There is no default: a caller must supply one (e.g. store.NewKVStore).
	Store store.Store

	// Filters names the lexical pipeline stages in order. The zero
	// value (nil) selects the default order: heuristics, tokenize,
	// stop, stem.
	Filters []string

	// StopList, when non-empty, replaces the built-in stop set. It
	// uses the same newline/whitespace-separated, '#'-comment syntax
	// as the built-in list (lexical.ParseStopList).
	StopList string

	// Stem overrides the default Porter stemmer (lexical.PorterStem).
	Stem lexical.StemFunc

	// Values overrides BM25's B/K1/K3 defaults.
	Values BM25Values

	// Metrics records engine operations; defaults to metrics.NoOp.
	Metrics metrics.Recorder

	// Notifier publishes "document indexed" events; defaults to
	// notify.NoOp.
	Notifier notify.Notifier
}

// yamlConfig is the on-disk shape LoadConfig parses; it mirrors Config
// but with plain data instead of interfaces the YAML decoder cannot
// construct (Store, Stem, Metrics, Notifier are still set by the caller
// after loading, the same way the teacher leaves its Segmenter field
// for the caller to fill in).
type yamlConfig struct {
	Filters  []string   `yaml:"filters"`
	StopList string     `yaml:"stoplist"`
	Values   BM25Values `yaml:"values"`
}

// LoadConfig reads a YAML document shaped like yamlConfig from path.
// Callers must still set Store (and optionally Stem/Metrics/Notifier) on
// the returned Config before constructing an engine, since those are
// live objects a config file cannot describe.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Config{}, err
	}
	return Config{
		Filters:  y.Filters,
		StopList: y.StopList,
		Values:   y.Values,
	}, nil
}

// withDefaults fills in every field a caller left unset, mirroring the
// teacher's EngineInitOptions.Init() backfilling pattern: each zero
// value is replaced in place, nothing already set is touched.
func (c Config) withDefaults() Config {
	if len(c.Filters) == 0 {
		c.Filters = []string{
			lexical.NameHeuristics,
			lexical.NameTokenize,
			lexical.NameStop,
			lexical.NameStem,
		}
	}
	if c.Stem == nil {
		c.Stem = lexical.PorterStem
	}
	if c.Metrics == nil {
		c.Metrics = metrics.NoOp
	}
	if c.Notifier == nil {
		c.Notifier = notify.NoOp
	}
	return c
}

// bm25Params resolves Config.Values against scorer.DefaultParams(),
// leaving any field the caller did not override at its default.
func (c Config) bm25Params() scorer.Params {
	p := scorer.DefaultParams()
	if c.Values.B != nil {
		p.B = *c.Values.B
	}
	if c.Values.K1 != nil {
		p.K1 = *c.Values.K1
	}
	if c.Values.K3 != nil {
		p.K3 = *c.Values.K3
	}
	return p
}

// buildPipeline assembles the lexical.Pipeline named by Filters, using
// the built-in stop list unless StopList overrides it.
func (c Config) buildPipeline() *lexical.Pipeline {
	stopSet := lexical.ParseStopList(lexical.DefaultStopList())
	if c.StopList != "" {
		stopSet = lexical.ParseStopList(c.StopList)
	}

	stages := make([]lexical.Stage, 0, len(c.Filters))
	for _, name := range c.Filters {
		switch name {
		case lexical.NameHeuristics:
			stages = append(stages, lexical.Heuristics)
		case lexical.NameTokenize:
			stages = append(stages, lexical.Tokenize)
		case lexical.NameStop:
			stages = append(stages, lexical.NewStopFilter(stopSet))
		case lexical.NameStem:
			stages = append(stages, lexical.NewStemmer(c.Stem))
		}
	}
	return lexical.New(stages...)
}
