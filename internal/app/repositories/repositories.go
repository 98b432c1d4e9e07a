package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository CourseRepository
}

// NewRepositories initializes the pgx-backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository: NewPostgresCourseRepository(db),
	}
}

// NewGormRepositories initializes the gorm-backed repositories
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		CourseRepository: NewGormCourseRepository(db),
	}
}
