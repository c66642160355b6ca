package domain

import "edudb-server/internal/infra/sql"

const (
	StatusReadyMessage         = "Database is connected and ready"
	StatusNotSetUpMessage      = "Database not found or not set up"
	StatusNotAccessibleMessage = "Database not accessible"
)

// Status is the answer to "can the studio be used right now".
type Status struct {
	Connected  bool
	Message    string
	TableCount int
}

// ProvisionSummary is the per statement outcome of creating the database.
type ProvisionSummary struct {
	Applied  int
	Failed   int
	Skipped  int
	Outcomes []sql.StatementOutcome
}

func NewProvisionSummary(report sql.RunReport) ProvisionSummary {
	return ProvisionSummary{
		Applied:  report.Applied,
		Failed:   report.Failed,
		Skipped:  report.Skipped,
		Outcomes: report.Outcomes,
	}
}
