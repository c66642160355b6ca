package sql

import (
	"strings"
)

// Statement is one unit of SQL text plus its positional parameters. Placeholders
// are written as ? and rebound to the driver's style before execution.
type Statement struct {
	Text string
	Args []any
	// ReturningColumn names the column holding the generated id when Text is an
	// INSERT ... RETURNING statement.
	ReturningColumn string
}

func NewStatement(text string, args ...any) Statement {
	return Statement{Text: text, Args: args}
}

type FetchMode int

const (
	FetchAll FetchMode = iota
	FetchOne
	FetchNone
)

var _readVerbs = map[string]bool{
	"SELECT":   true,
	"SHOW":     true,
	"WITH":     true,
	"PRAGMA":   true,
	"EXPLAIN":  true,
	"DESCRIBE": true,
}

// Verb is the leading keyword of the statement, upper-cased.
func (s Statement) Verb() string {
	return leadingVerb(s.Text)
}

// IsRead reports whether the statement returns rows instead of changing data.
func (s Statement) IsRead() bool {
	return _readVerbs[s.Verb()]
}

func leadingVerb(text string) string {
	fields := strings.Fields(strings.TrimLeft(text, " \t\r\n("))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.TrimRight(fields[0], "(;"))
}
