// Package scripts holds the sample schema scripts for every supported store.
package scripts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"edudb-server/internal/infra/sql"
)

const (
	InitScript      = "init_db.sql"
	AppSchemaScript = "app_schema.sql"
	ResetScript     = "reset_db.sql"
)

//go:embed postgres mysql sqlite
var embedded embed.FS

// Source reads the scripts of one dialect, from dir when set or from the
// embedded copies otherwise. dir uses the same layout: <dir>/<dialect>/<script>.
type Source struct {
	fsys    fs.FS
	dialect string
}

func NewSource(dialect, dir string) (*Source, error) {
	var fsys fs.FS = embedded
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	if _, err := fs.Stat(fsys, path.Join(dialect, InitScript)); err != nil {
		return nil, fmt.Errorf("no scripts for dialect %q: %w", dialect, err)
	}

	return &Source{fsys: fsys, dialect: dialect}, nil
}

func (s *Source) Load(name string) (sql.NamedScript, error) {
	return sql.LoadScript(s.fsys, path.Join(s.dialect, name))
}

// Provisioning returns the scripts applied when a database is created, in order.
func (s *Source) Provisioning() ([]sql.NamedScript, error) {
	var out []sql.NamedScript
	for _, name := range []string{InitScript, AppSchemaScript} {
		script, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, script)
	}
	return out, nil
}

func (s *Source) Reset() (sql.NamedScript, error) {
	return s.Load(ResetScript)
}
