package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type pingController struct{}

func (pingController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]bool{"success": true})
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.When("using tracing middleware", func() {
			ginkgo.It("should add span to request context", func() {
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					span := GetSpanFromContext(r)
					gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
					w.WriteHeader(http.StatusTeapot)
				})

				handler := createTracingMiddleware()(testHandler)
				req := httptest.NewRequest("GET", "/test", nil)
				rec := httptest.NewRecorder()

				handler.ServeHTTP(rec, req)

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusTeapot))
				gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
				gomega.Expect(recorder.Ended()[0].Name()).To(gomega.Equal("http.request"))
			})
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a span even when no span is in context", func() {
			req := httptest.NewRequest("GET", "/test", nil)
			span := GetSpanFromContext(req)

			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("NewServer", func() {
		ginkgo.It("should serve healthz and controller routes", func() {
			server := NewServer(Options{}, pingController{})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"status":"success"`))

			rec = httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/ping", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Header().Get("Content-Type")).To(gomega.Equal("application/json"))
		})

		ginkgo.It("should expose prometheus metrics", func() {
			server := NewServer(Options{})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should answer CORS preflight for allowed origins", func() {
			server := NewServer(Options{AllowedOrigins: []string{"http://localhost:5173"}}, pingController{})

			req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("http://localhost:5173"))
		})

		ginkgo.It("should serve pages and assets from the static directory", func() {
			dir := ginkgo.GinkgoT().TempDir()
			gomega.Expect(os.MkdirAll(filepath.Join(dir, "pages"), 0o755)).To(gomega.Succeed())
			gomega.Expect(os.MkdirAll(filepath.Join(dir, "static", "js"), 0o755)).To(gomega.Succeed())
			gomega.Expect(os.WriteFile(filepath.Join(dir, "pages", "setup.html"), []byte("<h1>setup</h1>"), 0o644)).To(gomega.Succeed())
			gomega.Expect(os.WriteFile(filepath.Join(dir, "static", "js", "setup.js"), []byte("setup()"), 0o644)).To(gomega.Succeed())

			server := NewServer(Options{StaticDir: dir})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/setup", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.Equal("<h1>setup</h1>"))

			rec = httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/static/js/setup.js", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.Equal("setup()"))

			rec = httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})
})
