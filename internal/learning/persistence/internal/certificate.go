package internal

import (
	"time"

	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"
)

type Certificate struct {
	ID                int64  `gorm:"primaryKey"`
	CertificateID     string `gorm:"uniqueIndex;not null"`
	StudentName       string `gorm:"not null"`
	IssueDate         time.Time
	BeginnerScore     int
	IntermediateScore int
	AdvancedScore     int
	OverallScore      float64
	TotalTime         int
	CreatedAt         time.Time
}

func (Certificate) TableName() string {
	return "certificates"
}

func FromCertificate(certificate domain.Certificate) Certificate {
	return Certificate{
		CertificateID:     certificate.ID.String(),
		StudentName:       certificate.StudentName,
		IssueDate:         certificate.IssueDate.Time,
		BeginnerScore:     certificate.BeginnerScore,
		IntermediateScore: certificate.IntermediateScore,
		AdvancedScore:     certificate.AdvancedScore,
		OverallScore:      certificate.OverallScore,
		TotalTime:         certificate.TotalTime,
		CreatedAt:         certificate.CreatedAt,
	}
}

func (c Certificate) ToDomain() domain.Certificate {
	issued := c.IssueDate
	return domain.Certificate{
		ID:                domain.CertificateID(c.CertificateID),
		StudentName:       c.StudentName,
		IssueDate:         utils.Date{Time: time.Date(issued.Year(), issued.Month(), issued.Day(), 0, 0, 0, 0, time.UTC)},
		BeginnerScore:     c.BeginnerScore,
		IntermediateScore: c.IntermediateScore,
		AdvancedScore:     c.AdvancedScore,
		OverallScore:      c.OverallScore,
		TotalTime:         c.TotalTime,
		CreatedAt:         c.CreatedAt,
	}
}
