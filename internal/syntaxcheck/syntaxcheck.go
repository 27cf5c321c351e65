// Package syntaxcheck parses a saved file with tree-sitter and reports where
// the first syntax error is. It complements the byte scanner in buffer, which
// only colors and never validates.
package syntaxcheck

import (
	"context"
	"fmt"

	sitter "github.com/mitjafelicijan/go-tree-sitter"
	"github.com/mitjafelicijan/go-tree-sitter/bash"
	"github.com/mitjafelicijan/go-tree-sitter/c"
	"github.com/mitjafelicijan/go-tree-sitter/golang"
	"github.com/mitjafelicijan/go-tree-sitter/javascript"
	"github.com/mitjafelicijan/go-tree-sitter/lua"
	"github.com/mitjafelicijan/go-tree-sitter/python"
	"github.com/mitjafelicijan/go-tree-sitter/sql"
)

// errorQuery captures every node the parser could not fit into the grammar.
const errorQuery = "(ERROR) @error"

// language maps a syntax profile name to its tree-sitter grammar.
func language(profile string) *sitter.Language {
	switch profile {
	case "c":
		return c.GetLanguage()
	case "go":
		return golang.GetLanguage()
	case "python":
		return python.GetLanguage()
	case "javascript":
		return javascript.GetLanguage()
	case "shell":
		return bash.GetLanguage()
	case "lua":
		return lua.GetLanguage()
	case "sql":
		return sql.GetLanguage()
	}
	return nil
}

// Supported reports whether profile has a grammar.
func Supported(profile string) bool {
	return language(profile) != nil
}

// Result is the outcome of one check.
type Result struct {
	Errors   int // ERROR and MISSING nodes found.
	FirstRow int // 0-based row of the first one; -1 when clean.
}

// OK reports whether the parse was clean.
func (r Result) OK() bool { return r.Errors == 0 }

// Checker parses sources of one language. It is not safe for concurrent use.
type Checker struct {
	profile string
	parser  *sitter.Parser
	query   *sitter.Query
}

// New returns a checker for the named syntax profile, or nil when no grammar
// is available for it.
func New(profile string) (*Checker, error) {
	lang := language(profile)
	if lang == nil {
		return nil, nil
	}

	q, err := sitter.NewQuery([]byte(errorQuery), lang)
	if err != nil {
		return nil, fmt.Errorf("compile error query for %s: %w", profile, err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	return &Checker{profile: profile, parser: parser, query: q}, nil
}

// Profile returns the profile the checker was built for.
func (c *Checker) Profile() string { return c.profile }

// Check parses src and locates syntax errors.
func (c *Checker) Check(ctx context.Context, src []byte) (Result, error) {
	tree, err := c.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", c.profile, err)
	}

	root := tree.RootNode()
	res := Result{FirstRow: -1}
	if !root.HasError() {
		return res, nil
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(c.query, root)
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range m.Captures {
			res.add(int(capture.Node.StartPoint().Row))
		}
	}

	// Nodes the parser inserted to recover are not matched by the query.
	walkMissing(root, res.add)

	if res.Errors == 0 {
		// HasError without any located node: blame the top.
		res.add(0)
	}
	return res, nil
}

func (r *Result) add(row int) {
	if r.Errors == 0 || row < r.FirstRow {
		r.FirstRow = row
	}
	r.Errors++
}

func walkMissing(n *sitter.Node, visit func(row int)) {
	if n == nil {
		return
	}
	if n.IsMissing() {
		visit(int(n.StartPoint().Row))
	}
	if !n.HasError() {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		walkMissing(n.Child(i), visit)
	}
}
