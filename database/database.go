package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type Database struct {
	profileRepo         *ProfileRepo
	contactMessageRepo  *ContactMessageRepo
	projectCategoryRepo *ProjectCategoryRepo
	technologyRepo      *TechnologyRepo
	projectRepo         *ProjectRepo
	projectImageRepo    *ProjectImageRepo
	certificationRepo   *CertificationRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:         NewProfileRepo(db),
		contactMessageRepo:  NewContactMessageRepo(db),
		projectCategoryRepo: NewProjectCategoryRepo(db),
		technologyRepo:      NewTechnologyRepo(db),
		projectRepo:         NewProjectRepo(db),
		projectImageRepo:    NewProjectImageRepo(db),
		certificationRepo:   NewCertificationRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) ProjectCategoryRepo() *ProjectCategoryRepo {
	return d.projectCategoryRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

// Migrate applies the schema for every model. Tables are migrated one at a
// time so a failure on one does not block the others.
func Migrate(db *gorm.DB) {
	for _, model := range []any{
		&models.Profile{},
		&models.ContactMessage{},
		&models.ProjectCategory{},
		&models.Technology{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Certification{},
	} {
		if err := db.AutoMigrate(model); err != nil {
			log.Warn().Err(err).Msgf("migration warning (%T)", model)
		}
	}
}
