package dto

import (
	"avihire_backend/internal/algorithms"
	"avihire_backend/internal/models"
)

type CreateAdRequest struct {
	Title    string        `json:"title" binding:"required"`
	Location string        `json:"location"`
	Company  string        `json:"company"`
	URL      string        `json:"url"`
	JobType  string        `json:"jobType"`
	Tier     models.AdTier `json:"tier" binding:"required,oneof=regular premium"`
	Tags     []string      `json:"tags"`
}

type CreateAdResponse struct {
	Ad *models.JobAd `json:"ad"`

	// Set for premium ads: the client must go through checkout next.
	CheckoutRequired bool `json:"checkoutRequired"`
}

// JobSearchRequest binds the public search query string. The search term
// matches across title, location, and company; postedWithin narrows to
// ads created in the last day, week, or month.
type JobSearchRequest struct {
	Query        string `form:"query"`
	Location     string `form:"location"`
	JobType      string `form:"jobType"`
	PostedWithin string `form:"postedWithin" binding:"omitempty,oneof=24h 7d 30d"`
}

type ApplyRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CoverLetter string `json:"coverLetter"`
}

// DashboardResponse is the classified ad view plus the verified account.
type DashboardResponse struct {
	User *UserResponse          `json:"user"`
	Ads  algorithms.AdPartition `json:"ads"`
}
