package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"edudb-server/internal/infra/httpserver"
	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"
	learning_httpapi "edudb-server/internal/learning/httpapi"
	learning_httpapi_internal "edudb-server/internal/learning/httpapi/internal"
	"edudb-server/internal/learning/usecases"
	mockusecases "edudb-server/test/unit/doubles/learning/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CertificateController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockCertificateService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		certificate domain.Certificate
	)

	serve := func(method, target, body string) {
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockCertificateService(ctrl)
		router = http.NewServeMux()
		learning_httpapi.NewCertificateController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()

		issued, err := utils.ParseDate("2026-10-19")
		Expect(err).NotTo(HaveOccurred())
		certificate = domain.Certificate{
			ID:                "EDB-2026-ABC123",
			StudentName:       "Ada Lovelace",
			IssueDate:         issued,
			BeginnerScore:     15,
			IntermediateScore: 15,
			AdvancedScore:     10,
			OverallScore:      88.89,
			TotalTime:         2400,
			CreatedAt:         time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("generate", func() {
		It("should return the new certificate id", func() {
			issued, _ := utils.ParseDate("2026-10-01")
			mockService.EXPECT().Generate(gomock.Any(), usecases.CertificateRequest{
				StudentName:       "Ada Lovelace",
				IssueDate:         &issued,
				BeginnerScore:     15,
				IntermediateScore: 15,
				AdvancedScore:     10,
				TotalTime:         2400,
			}).Return(certificate, nil)

			serve("POST", "/api/certificate/generate",
				`{"student_name":"Ada Lovelace","issue_date":"2026-10-01","beginner_score":15,"intermediate_score":15,"advanced_score":10,"total_time":2400}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response learning_httpapi_internal.GenerateCertificateResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Success).To(BeTrue())
			Expect(response.CertificateID).To(Equal("EDB-2026-ABC123"))
			Expect(response.Message).To(Equal("Certificate generated successfully"))
		})

		It("should require a student name", func() {
			mockService.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Certificate{}, domain.ErrStudentNameRequired)

			serve("POST", "/api/certificate/generate", `{"beginner_score":15}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Error).To(Equal("Student name is required"))
		})

		It("should answer 400 when the store fails", func() {
			mockService.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Certificate{}, errors.New("creating certificate: disk full"))

			serve("POST", "/api/certificate/generate", `{"student_name":"Ada"}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring("disk full"))
		})

		It("should reject malformed issue dates", func() {
			serve("POST", "/api/certificate/generate", `{"student_name":"Ada","issue_date":"19/10/2026"}`)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("getCertificate", func() {
		It("should render the certificate", func() {
			mockService.EXPECT().GetCertificate(gomock.Any(), domain.CertificateID("EDB-2026-ABC123")).Return(certificate, nil)

			serve("GET", "/api/certificate/EDB-2026-ABC123", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response struct {
				Success     bool           `json:"success"`
				Certificate map[string]any `json:"certificate"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Success).To(BeTrue())
			Expect(response.Certificate).To(HaveKeyWithValue("issue_date", "2026-10-19"))
			Expect(response.Certificate).To(HaveKeyWithValue("overall_score", 88.89))
			Expect(response.Certificate).To(HaveKeyWithValue("created_at", "2026-10-19T12:00:00.000Z"))
		})

		It("should answer 404 for unknown ids", func() {
			mockService.EXPECT().GetCertificate(gomock.Any(), gomock.Any()).Return(domain.Certificate{}, usecases.ErrCertificateNotFound)

			serve("GET", "/api/certificate/EDB-2026-FFFFFF", "")

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
			Expect(recorder.Body.String()).To(ContainSubstring("Certificate not found"))
		})
	})

	Context("listCertificates", func() {
		It("should list every certificate", func() {
			mockService.EXPECT().ListCertificates(gomock.Any()).Return([]domain.Certificate{certificate}, nil)

			serve("GET", "/api/certificates", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response learning_httpapi_internal.CertificatesResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Certificates).To(HaveLen(1))
			Expect(response.Certificates[0].StudentName).To(Equal("Ada Lovelace"))
		})

		It("should render an empty list as []", func() {
			mockService.EXPECT().ListCertificates(gomock.Any()).Return(nil, nil)

			serve("GET", "/api/certificates", "")

			Expect(recorder.Body.String()).To(ContainSubstring(`"certificates":[]`))
		})

		It("should answer 500 when listing fails", func() {
			mockService.EXPECT().ListCertificates(gomock.Any()).Return(nil, errors.New("listing certificates: boom"))

			serve("GET", "/api/certificates", "")

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
