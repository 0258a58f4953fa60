package dashboard

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
)

const statsCacheKey = "dashboard_stats"

type DashboardService interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
}

// Service serves the dashboard aggregates with a short-lived in-process
// cache in front of the store. Mutating services invalidate the cache on
// every committed write; the TTL is only a backstop.
type Service struct {
	repo  repository.StatsRepository
	cache *gocache.Cache
}

func NewService(repo repository.StatsRepository, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *Service) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(*model.DashboardStats), nil
	}

	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	s.cache.Set(statsCacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}

// InvalidateStats drops the cached aggregates so the next read hits the
// store. Called by the patient, appointment and billing services after a
// committed mutation.
func (s *Service) InvalidateStats() {
	s.cache.Delete(statsCacheKey)
}
