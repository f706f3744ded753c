package services

import (
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
)

// In-memory fakes for the repository interfaces. Error fields let a test
// force a specific failure without a database.

type fakeUserRepo struct {
	users map[string]*models.User // keyed by ID

	createErrs  []error // popped per Create call; nil entry = success
	createCalls int
	lastCreated *models.User
	updateErr   error
	lastUpdate  map[string]interface{}
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	copied := *user
	f.users[user.ID] = &copied
	f.lastCreated = &copied
	return nil
}

func (f *fakeUserRepo) UpdateFields(userID string, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	f.lastUpdate = fields
	return nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken

	createErr error
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeRefreshTokenRepo) FindByToken(tokenString string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[tokenString]; ok {
		return t, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (f *fakeRefreshTokenRepo) DeleteByToken(tokenString string) error {
	if _, ok := f.tokens[tokenString]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(f.tokens, tokenString)
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteByUserID(userID string) error {
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) CleanExpired() (int64, error) {
	return 0, nil
}

type fakeJobAdRepo struct {
	ads map[string]*models.JobAd

	createErr error
	listErr   error

	searchResults []models.JobAd
	searchErr     error
	lastSearch    *repositories.JobSearchFilter
}

func newFakeJobAdRepo() *fakeJobAdRepo {
	return &fakeJobAdRepo{ads: map[string]*models.JobAd{}}
}

func (f *fakeJobAdRepo) Create(ad *models.JobAd) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *ad
	f.ads[ad.ID] = &copied
	return nil
}

func (f *fakeJobAdRepo) FindByID(id string) (*models.JobAd, error) {
	if ad, ok := f.ads[id]; ok {
		return ad, nil
	}
	return nil, repositories.ErrAdNotFound
}

func (f *fakeJobAdRepo) FindByBusinessID(businessID string) ([]models.JobAd, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.JobAd
	for _, ad := range f.ads {
		if ad.BusinessID == businessID {
			out = append(out, *ad)
		}
	}
	return out, nil
}

func (f *fakeJobAdRepo) Search(filter repositories.JobSearchFilter) ([]models.JobAd, error) {
	f.lastSearch = &filter
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeJobAdRepo) MarkPaid(id string) error {
	ad, ok := f.ads[id]
	if !ok {
		return repositories.ErrAdNotFound
	}
	ad.IsPaid = true
	ad.IsApproved = true
	return nil
}

type fakeApplicationRepo struct {
	applications []*models.JobApplication

	createErr error
}

func (f *fakeApplicationRepo) Create(application *models.JobApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.applications = append(f.applications, application)
	return nil
}

func (f *fakeApplicationRepo) FindByUserID(userID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range f.applications {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}
