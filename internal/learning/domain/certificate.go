package domain

import (
	"fmt"
	"time"

	"edudb-server/internal/infra/utils"
)

const DefaultCertificatePrefix = "EDB"

type CertificateID string

func (id CertificateID) String() string {
	return string(id)
}

// NewCertificateID renders <prefix>-<year>-<6 upper case hex digits>.
func NewCertificateID(prefix string, at time.Time) CertificateID {
	return CertificateID(fmt.Sprintf("%s-%d-%s", prefix, at.Year(), utils.GenerateHEX(3)))
}

type Certificate struct {
	ID                CertificateID
	StudentName       string
	IssueDate         utils.Date
	BeginnerScore     int
	IntermediateScore int
	AdvancedScore     int
	OverallScore      float64
	TotalTime         int
	CreatedAt         time.Time
}

func NewCertificateBuilder(prefix string, scoring Scoring) *certificateBuilder {
	return &certificateBuilder{prefix: prefix, scoring: scoring}
}

type certificateBuilder struct {
	prefix  string
	scoring Scoring
	actions []certificateHandler
}

type certificateHandler func(v *Certificate) error

func (b *certificateBuilder) WithStudentName(value string) *certificateBuilder {
	b.actions = append(b.actions, func(d *Certificate) error {
		d.StudentName = value
		return nil
	})
	return b
}

func (b *certificateBuilder) WithIssueDate(value utils.Date) *certificateBuilder {
	b.actions = append(b.actions, func(d *Certificate) error {
		d.IssueDate = value
		return nil
	})
	return b
}

func (b *certificateBuilder) WithScores(beginner, intermediate, advanced int) *certificateBuilder {
	b.actions = append(b.actions, func(d *Certificate) error {
		if beginner < 0 || intermediate < 0 || advanced < 0 {
			return ErrNegativeScore
		}
		d.BeginnerScore = beginner
		d.IntermediateScore = intermediate
		d.AdvancedScore = advanced
		return nil
	})
	return b
}

func (b *certificateBuilder) WithTotalTime(value int) *certificateBuilder {
	b.actions = append(b.actions, func(d *Certificate) error {
		d.TotalTime = value
		return nil
	})
	return b
}

// Build issues the certificate: it gets a fresh id, today's date unless one was
// given, and its overall score.
func (b *certificateBuilder) Build() (Certificate, error) {
	now := time.Now()
	prefix := b.prefix
	if prefix == "" {
		prefix = DefaultCertificatePrefix
	}

	result := Certificate{
		ID:        NewCertificateID(prefix, now),
		CreatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Certificate{}, err
		}
	}

	if result.StudentName == "" {
		return Certificate{}, ErrStudentNameRequired
	}

	if result.IssueDate.IsZero() {
		result.IssueDate = utils.Today()
	}

	result.OverallScore = b.scoring.OverallScore(result.BeginnerScore, result.IntermediateScore, result.AdvancedScore)

	return result, nil
}
