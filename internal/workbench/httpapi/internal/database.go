package internal

import (
	"edudb-server/internal/infra/sql"
	"edudb-server/internal/workbench/domain"
)

const (
	_defaultHost = "localhost"
	_defaultUser = "root"
)

type CredentialsRequest struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// ToDomain fills the setup page defaults. A zero port means the driver default.
func (r CredentialsRequest) ToDomain() domain.Credentials {
	credentials := domain.Credentials{
		Host:     r.Host,
		Port:     r.Port,
		User:     r.User,
		Password: r.Password,
	}
	if credentials.Host == "" {
		credentials.Host = _defaultHost
	}
	if credentials.User == "" {
		credentials.User = _defaultUser
	}
	return credentials
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Success    bool   `json:"success"`
	Connected  bool   `json:"connected"`
	Message    string `json:"message"`
	TableCount int    `json:"table_count,omitempty"`
}

func ToStatusResponse(status domain.Status) StatusResponse {
	return StatusResponse{
		Success:    status.Connected,
		Connected:  status.Connected,
		Message:    status.Message,
		TableCount: status.TableCount,
	}
}

type CreateDatabaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Applied int    `json:"applied"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
}

func ToCreateDatabaseResponse(summary domain.ProvisionSummary, message string, success bool) CreateDatabaseResponse {
	return CreateDatabaseResponse{
		Success: success,
		Message: message,
		Applied: summary.Applied,
		Failed:  summary.Failed,
		Skipped: summary.Skipped,
	}
}

type TablesResponse struct {
	Success bool     `json:"success"`
	Tables  []string `json:"tables"`
}

type TableDataResponse struct {
	Success bool         `json:"success"`
	Data    []sql.Record `json:"data"`
	Total   int64        `json:"total"`
}

func ToTableDataResponse(page sql.TablePage) TableDataResponse {
	return TableDataResponse{
		Success: true,
		Data:    nonNilRows(page.Rows),
		Total:   page.Total,
	}
}

type InsertResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type UpdateResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affected_rows"`
}

type QueryRequest struct {
	Query  string `json:"query"`
	Params []any  `json:"params"`
}

type QueryResponse struct {
	Success bool         `json:"success"`
	Data    []sql.Record `json:"data"`
}

func ToQueryResponse(rows []sql.Record) QueryResponse {
	return QueryResponse{Success: true, Data: nonNilRows(rows)}
}

func nonNilRows(rows []sql.Record) []sql.Record {
	if rows == nil {
		return []sql.Record{}
	}
	return rows
}
