package buffer

// Syntax profiles: which files they apply to and the rules the highlighter
// follows for them.

import (
	"cmp"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Syntax is the declarative description of a highlighting profile. It can be
// decoded from the configuration file.
type Syntax struct {
	Name              string   `yaml:"name"`                // Shown in the status bar.
	FileMatch         []string `yaml:"filematch"`           // ".ext", glob or filename substring.
	LineComment       string   `yaml:"comment"`             // Single-line comment marker.
	BlockCommentStart string   `yaml:"block_comment_start"` // e.g. "/*".
	BlockCommentEnd   string   `yaml:"block_comment_end"`   // e.g. "*/".
	Keywords          []string `yaml:"keywords"`            // Tagged HLKeyword.
	Types             []string `yaml:"types"`               // Tagged HLType.
	Numbers           bool     `yaml:"numbers"`             // Highlight numeric literals.
	Strings           bool     `yaml:"strings"`             // Highlight quoted strings.
}

type keyword struct {
	word []byte
	tag  Tag
}

// Profile is the compiled, immutable form of a Syntax.
type Profile struct {
	syntax      Syntax
	lineComment []byte
	blockStart  []byte
	blockEnd    []byte
	keywords    []keyword // Longest first.
}

// Compile prepares s for highlighting. The returned profile does not share
// memory with s.
func Compile(s Syntax) *Profile {
	s.FileMatch = slices.Clone(s.FileMatch)
	s.Keywords = slices.Clone(s.Keywords)
	s.Types = slices.Clone(s.Types)

	p := &Profile{
		syntax:      s,
		lineComment: []byte(s.LineComment),
		blockStart:  []byte(s.BlockCommentStart),
		blockEnd:    []byte(s.BlockCommentEnd),
	}

	for _, w := range s.Keywords {
		if w != "" {
			p.keywords = append(p.keywords, keyword{word: []byte(w), tag: HLKeyword})
		}
	}
	for _, w := range s.Types {
		if w != "" {
			p.keywords = append(p.keywords, keyword{word: []byte(w), tag: HLType})
		}
	}
	slices.SortStableFunc(p.keywords, func(a, b keyword) int {
		return cmp.Compare(len(b.word), len(a.word))
	})

	return p
}

// Name returns the profile's display name.
func (p *Profile) Name() string { return p.syntax.Name }

// Syntax returns a copy of the description the profile was compiled from.
func (p *Profile) Syntax() Syntax {
	s := p.syntax
	s.FileMatch = slices.Clone(s.FileMatch)
	s.Keywords = slices.Clone(s.Keywords)
	s.Types = slices.Clone(s.Types)
	return s
}

// matchKeyword returns the length and tag of the longest keyword that b starts
// with and that is followed by a separator or the end of the row.
func (p *Profile) matchKeyword(b []byte) (int, Tag) {
	for _, kw := range p.keywords {
		n := len(kw.word)
		if n > len(b) || string(b[:n]) != string(kw.word) {
			continue
		}
		if n < len(b) && !isSeparator(b[n]) {
			continue
		}
		return n, kw.tag
	}
	return 0, HLNormal
}

// Matches reports whether any of the profile's patterns applies to filename.
func (p *Profile) Matches(filename string) bool {
	for _, pattern := range p.syntax.FileMatch {
		if matchPattern(pattern, filename) {
			return true
		}
	}
	return false
}

// IsGlob reports whether pattern is matched as a glob rather than as an
// extension or substring.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func matchPattern(pattern, filename string) bool {
	switch {
	case pattern == "" || filename == "":
		return false
	case IsGlob(pattern):
		name := filepath.ToSlash(filename)
		if !strings.Contains(pattern, "/") {
			name = path.Base(name)
		}
		ok, err := doublestar.Match(pattern, name)
		return err == nil && ok
	case pattern[0] == '.':
		return filepath.Ext(filename) == pattern
	default:
		return strings.Contains(filename, pattern)
	}
}

// Registry is an ordered list of profiles; the first match wins.
type Registry struct {
	profiles []*Profile
}

// NewRegistry compiles and registers the given syntaxes in order.
func NewRegistry(syntaxes ...Syntax) *Registry {
	r := &Registry{}
	for _, s := range syntaxes {
		r.Register(s)
	}
	return r
}

// Register compiles s and appends it to the registry.
func (r *Registry) Register(s Syntax) *Profile {
	p := Compile(s)
	r.profiles = append(r.profiles, p)
	return p
}

// Profiles returns the registered profiles in match order.
func (r *Registry) Profiles() []*Profile {
	return slices.Clone(r.profiles)
}

// Match returns the first profile that applies to filename, or nil.
func (r *Registry) Match(filename string) *Profile {
	if r == nil {
		return nil
	}
	for _, p := range r.profiles {
		if p.Matches(filename) {
			return p
		}
	}
	return nil
}

// Profile returns the active syntax profile, or nil.
func (d *Document) Profile() *Profile { return d.profile }

// SetProfile activates p (nil disables highlighting) and re-highlights every
// row.
func (d *Document) SetProfile(p *Profile) {
	d.profile = p
	d.rehighlightAll()
}

// SelectSyntax activates the first profile in reg matching filename and
// re-highlights the document. It returns the selected profile, or nil.
func (d *Document) SelectSyntax(filename string, reg *Registry) *Profile {
	p := reg.Match(filename)

	name := "none"
	if p != nil {
		name = p.Name()
	}
	d.log.Debug().Str("file", filename).Str("profile", name).Msg("syntax selected")

	d.SetProfile(p)
	return p
}
