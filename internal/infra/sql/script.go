package sql

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
)

const _commentMarker = "--"

type ParseOptions struct {
	StripComments bool
}

// NamedScript is a script plus the name used for it in logs and reports.
type NamedScript struct {
	Name string
	Text string
}

// ParseScript splits text into statements on ';'. With StripComments every line is
// cut at its first "--" before splitting. Fragments that are empty after trimming
// are dropped.
func ParseScript(text string, opts ParseOptions) []string {
	if opts.StripComments {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if idx := strings.Index(line, _commentMarker); idx >= 0 {
				lines[i] = line[:idx]
			}
		}
		text = strings.Join(lines, "\n")
	}

	var statements []string
	for _, fragment := range strings.Split(text, ";") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		statements = append(statements, fragment)
	}

	return statements
}

func LoadScript(fsys fs.FS, name string) (NamedScript, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return NamedScript{}, fmt.Errorf("reading script %s: %w", name, err)
	}
	return NamedScript{Name: name, Text: string(data)}, nil
}

var (
	_createTablePattern = regexp.MustCompile(`(?i)^CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?([A-Za-z0-9_."]+)`)
	_insertIntoPattern  = regexp.MustCompile(`(?i)^INSERT\s+INTO\s+([A-Za-z0-9_."]+)`)
	_createIndexPattern = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+)?INDEX`)
)

// describeStatement renders a short human description of a successful statement.
func describeStatement(statement string) string {
	if m := _createTablePattern.FindStringSubmatch(statement); m != nil {
		return "created table " + m[1]
	}
	if m := _insertIntoPattern.FindStringSubmatch(statement); m != nil {
		return "inserted data into " + m[1]
	}
	if _createIndexPattern.MatchString(statement) {
		return "created index"
	}
	return "applied " + strings.ToLower(leadingVerb(statement))
}

// isProvisioningOnly reports statements the two-phase provisioning handles itself
// (database creation and selection) or that only print information.
func isProvisioningOnly(statement string) bool {
	upper := strings.ToUpper(statement)
	switch {
	case strings.HasPrefix(upper, "CREATE DATABASE"),
		strings.HasPrefix(upper, "USE "),
		strings.HasPrefix(upper, "SELECT"),
		strings.HasPrefix(upper, "SHOW"):
		return true
	default:
		return false
	}
}

func snippet(statement string, n int) string {
	statement = strings.Join(strings.Fields(statement), " ")
	if len(statement) <= n {
		return statement
	}
	return statement[:n] + "..."
}
