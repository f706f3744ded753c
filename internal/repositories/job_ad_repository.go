package repositories

import (
	"errors"
	"time"

	"avihire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdNotFound = errors.New("job ad not found")

// JobSearchFilter narrows a public job search. Zero-value fields are
// ignored; PostedAfter bounds created_at from below when set.
type JobSearchFilter struct {
	Query       string
	Location    string
	JobType     string
	PostedAfter time.Time
}

type JobAdRepository interface {
	Create(ad *models.JobAd) error
	FindByID(id string) (*models.JobAd, error)
	FindByBusinessID(businessID string) ([]models.JobAd, error)
	Search(filter JobSearchFilter) ([]models.JobAd, error)
	MarkPaid(adID string) error
}

type JobAdRepositoryImpl struct {
	db *gorm.DB
}

func NewJobAdRepository(db *gorm.DB) JobAdRepository {
	return &JobAdRepositoryImpl{db: db}
}

func (r *JobAdRepositoryImpl) Create(ad *models.JobAd) error {
	return r.db.Create(ad).Error
}

func (r *JobAdRepositoryImpl) FindByID(id string) (*models.JobAd, error) {
	var ad models.JobAd
	err := r.db.First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *JobAdRepositoryImpl) FindByBusinessID(businessID string) ([]models.JobAd, error) {
	var ads []models.JobAd
	err := r.db.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&ads).Error
	return ads, err
}

// Search lists ads matching the filter, most recent first. The search
// term matches case-insensitively across title, location, and company.
func (r *JobAdRepositoryImpl) Search(filter JobSearchFilter) ([]models.JobAd, error) {
	query := r.db.Model(&models.JobAd{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"title ILIKE ? OR location ILIKE ? OR company ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if !filter.PostedAfter.IsZero() {
		query = query.Where("created_at >= ?", filter.PostedAfter)
	}

	var ads []models.JobAd
	err := query.Order("created_at DESC").Find(&ads).Error
	return ads, err
}

// MarkPaid flips the payment flags after checkout completes.
func (r *JobAdRepositoryImpl) MarkPaid(adID string) error {
	result := r.db.Model(&models.JobAd{}).
		Where("id = ?", adID).
		Updates(map[string]interface{}{
			"is_paid":     true,
			"is_approved": true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}
