package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/postmcp/auth"
	"github.com/postmcp/functions"
	"github.com/postmcp/handlers"
	"github.com/postmcp/logger"
	"github.com/postmcp/mcp"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Dispatcher *functions.Dispatcher
	Protocol   *mcp.Protocol
	Secret     auth.Secret
	Log        *logger.Logger
}

func SetupRoutes(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("postmcp"))
	})

	fns := handlers.NewFunctions(deps.Dispatcher, deps.Log.Named("functions"))
	rpc := handlers.NewMCP(deps.Protocol, deps.Log.Named("mcp"))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(deps.Secret, deps.Log.Named("auth")))

		r.Route("/functions", func(r chi.Router) {
			r.Get("/", fns.List)
			r.Post("/call", fns.Call)
		})
		r.Method(http.MethodPost, "/mcp", rpc)
	})

	return r
}
