package api

import (
	"time"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/media"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, storage media.Storage, secret []byte, c map[string]string, startupTime time.Time) *routeHandlers {
	resizer := media.NewResizer(storage)

	return &routeHandlers{
		authHandler:          newAuthHandler(secret, c),
		homeHandler:          newHomeHandler(database.ProfileRepo(), database.ProjectRepo(), database.CertificationRepo(), storage, startupTime),
		profileHandler:       newProfileHandler(database.ProfileRepo(), storage, resizer),
		contactHandler:       newContactHandler(database.ContactMessageRepo(), database.ProfileRepo()),
		categoryHandler:      newCategoryHandler(database.ProjectCategoryRepo()),
		technologyHandler:    newTechnologyHandler(database.TechnologyRepo()),
		projectHandler:       newProjectHandler(database.ProjectRepo(), database.ProjectCategoryRepo(), database.TechnologyRepo(), database.ProjectImageRepo(), storage, resizer),
		certificationHandler: newCertificationHandler(database.CertificationRepo(), storage, resizer),
	}
}
