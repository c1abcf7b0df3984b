package services

import (
	"context"
	"encoding/json"
	"time"

	"counter-service/internal/domain"
	"counter-service/internal/infra"
	"counter-service/internal/logger"
	"counter-service/internal/repository"

	"go.uber.org/zap"
)

const promoCacheKey = "promos:all"

type PromoService struct {
	repo  repository.PromoRepository
	cache infra.Cache
	ttl   time.Duration
}

// NewPromoService returns a service reading through cache. A nil cache
// sends every call to the repository.
func NewPromoService(r repository.PromoRepository, cache infra.Cache, ttl time.Duration) *PromoService {
	return &PromoService{repo: r, cache: cache, ttl: ttl}
}

func (s *PromoService) ListPromos(ctx context.Context) ([]domain.Promo, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, promoCacheKey).Result()
		if err == nil {
			var promos []domain.Promo
			if err := json.Unmarshal([]byte(cached), &promos); err == nil {
				return promos, nil
			}
		}
	}

	promos, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.ttl > 0 {
		if data, err := json.Marshal(promos); err == nil {
			if err := s.cache.Set(ctx, promoCacheKey, data, s.ttl).Err(); err != nil {
				logger.Log.Warn("failed to cache promos", zap.Error(err))
			}
		}
	}
	return promos, nil
}
