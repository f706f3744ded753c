package repositories

import (
	"avihire_backend/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository covers job applications. Applications are written
// once and never updated or deleted.
type ApplicationRepository interface {
	Create(application *models.JobApplication) error
	FindByUserID(userID string) ([]models.JobApplication, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.JobApplication) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByUserID(userID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}
