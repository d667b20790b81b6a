package symbols

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glyphtrain/xform"
)

// Load reads the relation model from fsys and validates it. On any
// ErrCriticalParse-tier violation no model is returned; lesser issues go to
// the warning handler and loading continues.
func Load(fsys fs.FS, opts ...Option) (*Model, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		byTarget:      make(map[string][]SymmetryEdge),
		bySource:      make(map[string][]SymmetryEdge),
		slashGroupKey: o.slashGroupKey,
	}

	if err := loadSimilarity(fsys, &o, m); err != nil {
		return nil, err
	}
	m.index()

	if err := loadSymmetry(fsys, &o, m); err != nil {
		return nil, err
	}
	if err := loadNegations(fsys, &o, m); err != nil {
		return nil, err
	}
	// Re-index: symmetry and negation loading appended adjacency that the
	// final sorted ordering must cover.
	m.index()

	if err := validateEdges(m); err != nil {
		return nil, err
	}
	if err := validateNegations(m); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadDir is shorthand for Load over an on-disk directory.
func LoadDir(dir string, opts ...Option) (*Model, error) {
	return Load(os.DirFS(dir), opts...)
}

// loadSimilarity reads every file matching the similarity glob, one group
// per line, and runs the disjointness suite across all of them.
func loadSimilarity(fsys fs.FS, o *loadOptions, m *Model) error {
	names, err := fs.Glob(fsys, o.similarityGlob)
	if err != nil {
		return fmt.Errorf("%w: bad similarity glob %q: %v", ErrCriticalParse, o.similarityGlob, err)
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: no similarity files match %q", ErrCriticalParse, o.similarityGlob)
	}
	sort.Strings(names)

	perFile := make(map[string][]SimilarityGroup, len(names))
	for _, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return fmt.Errorf("%w: open %s: %v", ErrCriticalParse, name, err)
		}
		groups, err := parseSimilarity(f, name)
		f.Close()
		if err != nil {
			return err
		}
		perFile[name] = groups
		m.groups = append(m.groups, groups...)
	}

	return validateSimilarity(names, perFile)
}

// parseSimilarity reads one group per line, leader first,
// whitespace-separated; '#' starts a comment.
func parseSimilarity(r fs.File, name string) ([]SimilarityGroup, error) {
	var groups []SimilarityGroup
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		groups = append(groups, SimilarityGroup{Members: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCriticalParse, name, err)
	}
	return groups, nil
}

// symmetryFile is the YAML shape of the symmetry definition file.
type symmetryFile struct {
	Edges []edgeRecord `yaml:"edges"`
}

// edgeRecord is one declared symmetry edge: applying chain to source
// renderings yields target.
type edgeRecord struct {
	Target string   `yaml:"target"`
	Source string   `yaml:"source"`
	Chain  []string `yaml:"chain"`
}

// loadSymmetry parses the symmetry YAML file into adjacency. A missing file
// means a model without symmetries. Malformed records are skipped with an
// ErrParse warning; an unreadable file is critical.
func loadSymmetry(fsys fs.FS, o *loadOptions, m *Model) error {
	data, err := fs.ReadFile(fsys, o.symmetryFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrCriticalParse, o.symmetryFile, err)
	}

	var file symmetryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrCriticalParse, o.symmetryFile, err)
	}

	for i, rec := range file.Edges {
		if rec.Target == "" || rec.Source == "" {
			o.warn(fmt.Errorf("%w: %s: edge %d missing target/source, skipped", ErrParse, o.symmetryFile, i))
			continue
		}
		chain, err := parseChainTokens(rec.Chain)
		if err != nil {
			o.warn(fmt.Errorf("%w: %s: edge %d (%s from %s): %v, skipped",
				ErrParse, o.symmetryFile, i, rec.Target, rec.Source, err))
			continue
		}
		edge := SymmetryEdge{Target: rec.Target, Source: rec.Source, Chain: chain}
		m.byTarget[edge.Target] = append(m.byTarget[edge.Target], edge)
		m.bySource[edge.Source] = append(m.bySource[edge.Source], edge)
	}
	return nil
}

// parseChainTokens parses the per-edge token list into a chain.
func parseChainTokens(tokens []string) (xform.Chain, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make(xform.Chain, 0, len(tokens))
	for _, tok := range tokens {
		t, err := xform.ParseToken(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// negationFile is the YAML shape of the negation definition file. Records
// stay as raw nodes so that individual numeric fields can fail softly.
type negationFile struct {
	Negations []yaml.Node `yaml:"negations"`
}

// negationRecord carries the required keys strictly and the numeric recipe
// fields as raw nodes for tolerant coercion.
type negationRecord struct {
	Target string    `yaml:"target"`
	Source string    `yaml:"source"`
	Scale  yaml.Node `yaml:"scale"`
	Angle  yaml.Node `yaml:"angle"`
	X      yaml.Node `yaml:"x"`
	Y      yaml.Node `yaml:"y"`
}

// loadNegations parses the negation YAML file. Missing numeric fields keep
// their defaults; uncoercible ones warn at the recoverable tier and keep
// their defaults.
func loadNegations(fsys fs.FS, o *loadOptions, m *Model) error {
	data, err := fs.ReadFile(fsys, o.negationFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrCriticalParse, o.negationFile, err)
	}

	var file negationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrCriticalParse, o.negationFile, err)
	}

	for i, node := range file.Negations {
		var rec negationRecord
		if err := node.Decode(&rec); err != nil {
			o.warn(fmt.Errorf("%w: %s: negation %d malformed, skipped: %v", ErrParse, o.negationFile, i, err))
			continue
		}
		if rec.Target == "" || rec.Source == "" {
			o.warn(fmt.Errorf("%w: %s: negation %d missing target/source, skipped", ErrParse, o.negationFile, i))
			continue
		}
		neg := Negation{
			Target:  rec.Target,
			Source:  rec.Source,
			Scale:   floatOrDefault(rec.Scale, 1.0, o, o.negationFile, rec.Target, "scale"),
			Angle:   floatOrDefault(rec.Angle, 0, o, o.negationFile, rec.Target, "angle"),
			XOffset: floatOrDefault(rec.X, 0, o, o.negationFile, rec.Target, "x"),
			YOffset: floatOrDefault(rec.Y, 0, o, o.negationFile, rec.Target, "y"),
		}
		m.negations = append(m.negations, neg)
	}
	return nil
}

// floatOrDefault coerces a scalar node to float64, falling back to def with
// a recoverable warning when the value cannot be coerced.
func floatOrDefault(node yaml.Node, def float64, o *loadOptions, file, target, field string) float64 {
	if node.IsZero() {
		return def
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		o.warn(fmt.Errorf("%w: %s: negation %q field %s: %v, using %v",
			ErrRecoverableParse, file, target, field, err, def))
		return def
	}
	return v
}
