package algorithms

import (
	"time"

	"avihire_backend/internal/models"
)

// PremiumAdLifetimeSeconds is how long a premium ad stays visible. The
// comparison uses whole-second Unix deltas, not calendar days, so DST and
// timezone shifts cannot move the boundary.
const PremiumAdLifetimeSeconds int64 = 7 * 24 * 60 * 60

// AdPartition is the classified view of one owner's ads.
type AdPartition struct {
	Active  []models.JobAd `json:"active"`
	Premium []models.JobAd `json:"premium"`
	Expired []models.JobAd `json:"expired"`
}

// ClassifyAds partitions ads by visibility at the given instant.
//
// Regular ads are always active and never expire. Premium ads are active
// while now-createdAt < 7 days and expired at exactly 7 days and beyond.
// Premium is the subset of Active with the premium tier. The function is
// pure: same ads and same now always produce the same partition.
func ClassifyAds(ads []models.JobAd, now time.Time) AdPartition {
	p := AdPartition{
		Active:  []models.JobAd{},
		Premium: []models.JobAd{},
		Expired: []models.JobAd{},
	}

	nowSec := now.Unix()
	for _, ad := range ads {
		if ad.Tier != models.AdTierPremium {
			p.Active = append(p.Active, ad)
			continue
		}

		if nowSec-ad.CreatedAt.Unix() >= PremiumAdLifetimeSeconds {
			p.Expired = append(p.Expired, ad)
		} else {
			p.Active = append(p.Active, ad)
			p.Premium = append(p.Premium, ad)
		}
	}

	return p
}
