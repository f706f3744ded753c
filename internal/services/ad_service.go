package services

import (
	"encoding/json"
	"strings"
	"time"

	"avihire_backend/internal/algorithms"
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services/dto"
	"avihire_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AdService interface {
	CreateAd(businessID string, req *dto.CreateAdRequest) (*dto.CreateAdResponse, error)
	ListOwnerAds(businessID string) ([]models.JobAd, error)
	Dashboard(user *models.User) (*dto.DashboardResponse, error)
	SearchJobs(req *dto.JobSearchRequest) ([]models.JobAd, error)
	GetJob(id string) (*models.JobAd, error)
	Apply(userID, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error)
	ListApplications(userID string) ([]models.JobApplication, error)
}

type AdServiceImpl struct {
	adRepo          repositories.JobAdRepository
	applicationRepo repositories.ApplicationRepository

	// injectable clock, tests pin it
	now func() time.Time
}

func NewAdService(
	adRepo repositories.JobAdRepository,
	applicationRepo repositories.ApplicationRepository,
) *AdServiceImpl {
	return &AdServiceImpl{
		adRepo:          adRepo,
		applicationRepo: applicationRepo,
		now:             time.Now,
	}
}

// CreateAd persists a new ad in a single write. Premium ads start unpaid;
// the caller is expected to initiate checkout next, and the webhook flips
// the flags once payment completes. Regular ads need no payment.
func (s *AdServiceImpl) CreateAd(businessID string, req *dto.CreateAdRequest) (*dto.CreateAdResponse, error) {
	ad := &models.JobAd{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Title:      req.Title,
		Location:   req.Location,
		Company:    req.Company,
		URL:        req.URL,
		JobType:    req.JobType,
		Tier:       req.Tier,
		IsPaid:     req.Tier != models.AdTierPremium,
		IsApproved: false,
	}

	if len(req.Tags) > 0 {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		ad.Tags = tags
	}

	if err := s.adRepo.Create(ad); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateAdResponse{
		Ad:               ad,
		CheckoutRequired: ad.Tier == models.AdTierPremium,
	}, nil
}

func (s *AdServiceImpl) ListOwnerAds(businessID string) ([]models.JobAd, error) {
	ads, err := s.adRepo.FindByBusinessID(businessID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ads, nil
}

// Dashboard classifies the verified account's ads for display. Role
// verification has already happened upstream; this only runs once the
// guard has passed.
func (s *AdServiceImpl) Dashboard(user *models.User) (*dto.DashboardResponse, error) {
	ads, err := s.adRepo.FindByBusinessID(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		User: buildUserResponse(user),
		Ads:  algorithms.ClassifyAds(ads, s.now()),
	}, nil
}

// postedWithinWindows maps the public search's date filter values to
// lookback durations.
var postedWithinWindows = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// SearchJobs runs the public job search, most recent first. The window
// boundary is inclusive: an ad created exactly postedWithin ago still
// matches.
func (s *AdServiceImpl) SearchJobs(req *dto.JobSearchRequest) ([]models.JobAd, error) {
	filter := repositories.JobSearchFilter{
		Query:    strings.TrimSpace(req.Query),
		Location: strings.TrimSpace(req.Location),
		JobType:  req.JobType,
	}

	if req.PostedWithin != "" {
		window, ok := postedWithinWindows[req.PostedWithin]
		if !ok {
			return nil, apperrors.NewBadRequestError("postedWithin must be one of: 24h, 7d, 30d")
		}
		filter.PostedAfter = s.now().Add(-window)
	}

	ads, err := s.adRepo.Search(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if ads == nil {
		ads = []models.JobAd{}
	}
	return ads, nil
}

func (s *AdServiceImpl) GetJob(id string) (*models.JobAd, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return ad, nil
}

// Apply records one application for a job. The record is immutable once
// written.
func (s *AdServiceImpl) Apply(userID, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error) {
	ad, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}

	application := &models.JobApplication{
		JobID:       ad.ID,
		JobTitle:    ad.Title,
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		UserID:      userID,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

// ListApplications returns the caller's submitted applications.
func (s *AdServiceImpl) ListApplications(userID string) ([]models.JobApplication, error) {
	applications, err := s.applicationRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applications == nil {
		applications = []models.JobApplication{}
	}
	return applications, nil
}
