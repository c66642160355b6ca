package sql

import "github.com/jmoiron/sqlx"

// Handle is an open database handle plus whatever the dialect must tear down
// alongside it.
type Handle struct {
	*sqlx.DB
	release func()
}

func newHandle(db *sqlx.DB, release func()) *Handle {
	return &Handle{DB: db, release: release}
}

func (h *Handle) Close() error {
	err := h.DB.Close()
	if h.release != nil {
		h.release()
	}
	return err
}
