package buffer

// Built-in syntax profiles. User profiles from the configuration file are
// registered ahead of these and take precedence.

import "strings"

// bothCases returns words followed by their lower-case forms.
func bothCases(words ...string) []string {
	out := make([]string, 0, len(words)*2)
	out = append(out, words...)
	for _, w := range words {
		out = append(out, strings.ToLower(w))
	}
	return out
}

// Builtin returns the built-in syntax descriptions in match order.
func Builtin() []Syntax {
	return []Syntax{
		{
			Name:              "c",
			FileMatch:         []string{".c", ".h", ".cpp"},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: []string{
				"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case",
			},
			Types: []string{
				"int", "long", "double", "float", "char", "unsigned", "signed",
				"void", "NULL",
			},
			Numbers: true,
			Strings: true,
		},
		{
			Name:              "go",
			FileMatch:         []string{".go"},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: []string{
				"break", "case", "chan", "const", "continue", "default", "defer",
				"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
				"interface", "map", "package", "range", "return", "select", "struct",
				"switch", "type", "var",
			},
			Types: []string{
				"any", "bool", "byte", "complex64", "complex128", "error", "float32",
				"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
				"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
				"nil", "true", "false", "iota",
			},
			Numbers: true,
			Strings: true,
		},
		{
			Name:        "python",
			FileMatch:   []string{".py", ".pyw"},
			LineComment: "#",
			Keywords: []string{
				"and", "as", "assert", "async", "await", "break", "class", "continue",
				"def", "del", "elif", "else", "except", "finally", "for", "from",
				"global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
				"or", "pass", "raise", "return", "try", "while", "with", "yield",
			},
			Types: []string{
				"None", "True", "False", "int", "float", "str", "bytes", "list",
				"dict", "set", "tuple", "bool", "object", "self",
			},
			Numbers: true,
			Strings: true,
		},
		{
			Name:              "javascript",
			FileMatch:         []string{".js", ".mjs", ".cjs"},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: []string{
				"async", "await", "break", "case", "catch", "class", "const",
				"continue", "debugger", "default", "delete", "do", "else", "export",
				"extends", "finally", "for", "function", "if", "import", "in",
				"instanceof", "let", "new", "of", "return", "super", "switch", "this",
				"throw", "try", "typeof", "var", "void", "while", "with", "yield",
			},
			Types: []string{
				"true", "false", "null", "undefined", "NaN", "Infinity",
			},
			Numbers: true,
			Strings: true,
		},
		{
			Name:        "shell",
			FileMatch:   []string{".sh", ".bash", ".zsh", ".bashrc", ".zshrc", ".profile"},
			LineComment: "#",
			Keywords: []string{
				"if", "then", "else", "elif", "fi", "case", "esac", "for", "while",
				"until", "do", "done", "in", "function", "select", "return", "exit",
				"local", "export", "readonly",
			},
			Types: []string{
				"echo", "printf", "read", "cd", "test", "shift", "set", "unset",
				"source", "trap", "eval", "exec",
			},
			Numbers: true,
			Strings: true,
		},
		{
			Name:        "lua",
			FileMatch:   []string{".lua"},
			LineComment: "--",
			Keywords: []string{
				"and", "break", "do", "else", "elseif", "end", "for", "function",
				"goto", "if", "in", "local", "not", "or", "repeat", "return", "then",
				"until", "while",
			},
			Types:   []string{"nil", "true", "false", "self"},
			Numbers: true,
			Strings: true,
		},
		{
			Name:              "sql",
			FileMatch:         []string{".sql"},
			LineComment:       "--",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: bothCases(
				"SELECT", "FROM", "WHERE", "INSERT", "INTO", "VALUES", "UPDATE",
				"SET", "DELETE", "CREATE", "TABLE", "DROP", "ALTER", "INDEX", "JOIN",
				"LEFT", "RIGHT", "INNER", "OUTER", "ON", "AND", "OR", "NOT", "AS",
				"ORDER", "GROUP", "BY", "HAVING", "LIMIT", "UNION", "DISTINCT",
			),
			Types: bothCases(
				"NULL", "INTEGER", "INT", "TEXT", "VARCHAR", "BOOLEAN", "DATE",
				"TIMESTAMP", "REAL", "BLOB", "PRIMARY", "KEY",
			),
			Numbers: true,
			Strings: true,
		},
	}
}

// DefaultRegistry returns a registry holding the given user syntaxes followed
// by the built-in ones.
func DefaultRegistry(user ...Syntax) *Registry {
	r := NewRegistry(user...)
	for _, s := range Builtin() {
		r.Register(s)
	}
	return r
}
