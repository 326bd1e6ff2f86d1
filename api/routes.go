package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the visitor-facing routes
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.homeHandler.getHome())
		r.Get("/health", handlers.homeHandler.health())
		r.Get("/about", handlers.homeHandler.getAbout())

		r.Get("/contact", handlers.contactHandler.getContact())
		r.Post("/contact", handlers.contactHandler.submitContact())

		r.Get("/categories", handlers.categoryHandler.listCategories())
		r.Get("/technologies", handlers.technologyHandler.listTechnologies())

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())

		r.Get("/certifications", handlers.certificationHandler.listCertifications())
		r.Get("/certifications/{slug}", handlers.certificationHandler.getCertification())

		r.Post("/auth/login", handlers.authHandler.login())
	})
}

// setupAdminRoutes sets up the owner-only routes behind the staff token check
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.requireStaff)

		r.Route("/admin", func(r chi.Router) {
			// Profile endpoints
			r.Get("/profile", handlers.profileHandler.getProfile())
			r.Put("/profile", handlers.profileHandler.upsertProfile())
			r.Post("/profile/image", handlers.profileHandler.uploadProfileImage())
			r.Post("/profile/resume", handlers.profileHandler.uploadResume())

			// Contact inbox endpoints
			r.Get("/messages", handlers.contactHandler.listMessages())
			r.Put("/messages/{messageID}/read", handlers.contactHandler.setMessageRead())
			r.Delete("/messages/{messageID}", handlers.contactHandler.deleteMessage())

			// Category endpoints
			r.Get("/categories", handlers.categoryHandler.adminListCategories())
			r.Post("/categories", handlers.categoryHandler.createCategory())
			r.Put("/categories/{categoryID}", handlers.categoryHandler.updateCategory())
			r.Delete("/categories/{categoryID}", handlers.categoryHandler.deleteCategory())

			// Technology endpoints
			r.Post("/technologies", handlers.technologyHandler.createTechnology())
			r.Put("/technologies/{technologyID}", handlers.technologyHandler.updateTechnology())
			r.Delete("/technologies/{technologyID}", handlers.technologyHandler.deleteTechnology())

			// Project endpoints
			r.Get("/projects", handlers.projectHandler.adminListProjects())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
			r.Post("/projects/{projectID}/image", handlers.projectHandler.uploadProjectImage())

			// Gallery endpoints
			r.Get("/projects/{projectID}/gallery", handlers.projectHandler.listGalleryImages())
			r.Post("/projects/{projectID}/gallery", handlers.projectHandler.addGalleryImage())
			r.Put("/gallery/{imageID}", handlers.projectHandler.updateGalleryImage())
			r.Delete("/gallery/{imageID}", handlers.projectHandler.deleteGalleryImage())

			// Certification endpoints
			r.Get("/certifications", handlers.certificationHandler.adminListCertifications())
			r.Post("/certifications", handlers.certificationHandler.createCertification())
			r.Put("/certifications/{certificationID}", handlers.certificationHandler.updateCertification())
			r.Delete("/certifications/{certificationID}", handlers.certificationHandler.deleteCertification())
			r.Post("/certifications/{certificationID}/image", handlers.certificationHandler.uploadCertificationImage())
		})
	})
}
