package internal

import (
	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"
	"edudb-server/internal/learning/usecases"
)

type CertificateRequest struct {
	StudentName       string      `json:"student_name"`
	IssueDate         *utils.Date `json:"issue_date"`
	BeginnerScore     int         `json:"beginner_score"`
	IntermediateScore int         `json:"intermediate_score"`
	AdvancedScore     int         `json:"advanced_score"`
	TotalTime         int         `json:"total_time"`
}

func (r CertificateRequest) ToUsecase() usecases.CertificateRequest {
	return usecases.CertificateRequest{
		StudentName:       r.StudentName,
		IssueDate:         r.IssueDate,
		BeginnerScore:     r.BeginnerScore,
		IntermediateScore: r.IntermediateScore,
		AdvancedScore:     r.AdvancedScore,
		TotalTime:         r.TotalTime,
	}
}

type GenerateCertificateResponse struct {
	Success       bool   `json:"success"`
	CertificateID string `json:"certificate_id"`
	Message       string `json:"message"`
}

type Certificate struct {
	CertificateID     string     `json:"certificate_id"`
	StudentName       string     `json:"student_name"`
	IssueDate         utils.Date `json:"issue_date"`
	BeginnerScore     int        `json:"beginner_score"`
	IntermediateScore int        `json:"intermediate_score"`
	AdvancedScore     int        `json:"advanced_score"`
	OverallScore      float64    `json:"overall_score"`
	TotalTime         int        `json:"total_time"`
	CreatedAt         utils.Time `json:"created_at"`
}

func FromCertificate(certificate domain.Certificate) Certificate {
	return Certificate{
		CertificateID:     certificate.ID.String(),
		StudentName:       certificate.StudentName,
		IssueDate:         certificate.IssueDate,
		BeginnerScore:     certificate.BeginnerScore,
		IntermediateScore: certificate.IntermediateScore,
		AdvancedScore:     certificate.AdvancedScore,
		OverallScore:      certificate.OverallScore,
		TotalTime:         certificate.TotalTime,
		CreatedAt:         utils.Time{Time: certificate.CreatedAt},
	}
}

type CertificateResponse struct {
	Success     bool        `json:"success"`
	Certificate Certificate `json:"certificate"`
}

type CertificatesResponse struct {
	Success      bool          `json:"success"`
	Certificates []Certificate `json:"certificates"`
}

func ToCertificatesResponse(certificates []domain.Certificate) CertificatesResponse {
	result := make([]Certificate, len(certificates))
	for i, certificate := range certificates {
		result[i] = FromCertificate(certificate)
	}
	return CertificatesResponse{Success: true, Certificates: result}
}
