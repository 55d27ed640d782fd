package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/utils"
)

// ProfileRepository stores saved interview profiles. Entries are evicted
// after a TTL so abandoned profiles don't accumulate for the life of the
// process.
type ProfileRepository interface {
	Put(p *models.InterviewProfile) error
	Get(profileID string) (*models.InterviewProfile, error)
}

type profileRepo struct {
	c *gocache.Cache
}

func NewProfileRepository(ttl time.Duration) ProfileRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &profileRepo{c: gocache.New(ttl, time.Hour)}
}

func (r *profileRepo) Put(p *models.InterviewProfile) error {
	// store a copy so later caller mutations can't leak in
	r.c.SetDefault(p.ID, p.Clone())
	return nil
}

func (r *profileRepo) Get(profileID string) (*models.InterviewProfile, error) {
	v, ok := r.c.Get(profileID)
	if !ok {
		return nil, utils.ErrNotFound
	}
	return v.(*models.InterviewProfile).Clone(), nil
}
