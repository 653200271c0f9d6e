package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getAppVersion)
	})

	// routes behind the JWT guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getMe)
		r.Patch("/api/users", h.editUser)

		r.Route("/api/bookmarks", func(r chi.Router) {
			r.Get("/", h.listBookmarks)
			r.Post("/", h.createBookmark)
			r.Get("/{id}", h.getBookmark)
			r.Patch("/{id}", h.editBookmark)
			r.Delete("/{id}", h.deleteBookmark)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
