package httpapi

import (
	"errors"
	"net/http"

	"edudb-server/internal/infra/httpserver"
	"edudb-server/internal/learning/domain"
	"edudb-server/internal/learning/httpapi/internal"
	"edudb-server/internal/learning/usecases"
)

const (
	certificateGeneratedMessage = "Certificate generated successfully"

	studentNameRequiredErrMessage = "Student name is required"
	certificateNotFoundErrMessage = "Certificate not found"
	invalidCertificateErrMessage  = "invalid certificate request"
)

func NewCertificateController(service usecases.CertificateService) *CertificateController {
	return &CertificateController{
		service: service,
	}
}

var _ httpserver.Controller = &CertificateController{}

type CertificateController struct {
	service usecases.CertificateService
}

func (c *CertificateController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/certificate/generate", c.generate())
	router.Handle("GET /api/certificate/{id}", c.getCertificate())
	router.Handle("GET /api/certificates", c.listCertificates())
}

func (c *CertificateController) generate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CertificateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidCertificateErrMessage)
			return
		}

		certificate, err := c.service.Generate(r.Context(), body.ToUsecase())
		if errors.Is(err, domain.ErrStudentNameRequired) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, studentNameRequiredErrMessage)
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.GenerateCertificateResponse{
			Success:       true,
			CertificateID: certificate.ID.String(),
			Message:       certificateGeneratedMessage,
		})
	}
}

func (c *CertificateController) getCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificate, err := c.service.GetCertificate(r.Context(), domain.CertificateID(r.PathValue("id")))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, certificateNotFoundErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.CertificateResponse{
			Success:     true,
			Certificate: internal.FromCertificate(certificate),
		})
	}
}

func (c *CertificateController) listCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := c.service.ListCertificates(r.Context())
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCertificatesResponse(certificates))
	}
}
