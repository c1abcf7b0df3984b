package mysql

import (
	"fmt"

	"counter-service/internal/domain"
	"counter-service/internal/repository"

	"gorm.io/gorm"
)

type promoRepo struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) repository.PromoRepository {
	return &promoRepo{db: db}
}

func (r *promoRepo) FindAll() ([]domain.Promo, error) {
	out := []domain.Promo{}
	if err := r.db.Order("promo_nro ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list promos: %w", err)
	}
	return out, nil
}
