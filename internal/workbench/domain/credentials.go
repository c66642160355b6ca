package domain

import "edudb-server/internal/infra/sql"

// Credentials are what the setup page submits to reach the store server.
type Credentials struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Target points the credentials at database.
func (c Credentials) Target(database string) sql.Target {
	return sql.Target{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: database,
	}
}
