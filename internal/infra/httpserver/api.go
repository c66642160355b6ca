package httpserver

import "net/http"

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// Options configures the HTTP server. An empty StaticDir disables page serving.
type Options struct {
	Address        string
	AllowedOrigins []string
	StaticDir      string
}
