package repository

import (
	"github.com/cooper235/Canteen-project-sub000/entity"

	"gorm.io/gorm"
)

type CanteenRepository struct {
	DB *gorm.DB
}

func NewCanteenRepository(db *gorm.DB) *CanteenRepository {
	return &CanteenRepository{DB: db}
}

func (r *CanteenRepository) FindAll() ([]entity.Canteen, error) {
	var canteens []entity.Canteen
	err := r.DB.Find(&canteens).Error
	return canteens, err
}

func (r *CanteenRepository) FindByID(id uint) (*entity.Canteen, error) {
	var c entity.Canteen
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CanteenRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Canteen{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CanteenRepository) IsOwnedBy(canteenID, userID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Canteen{}).
		Where("id = ? AND user_id = ?", canteenID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpdateRating overwrites the materialized aggregate.
func (r *CanteenRepository) UpdateRating(id uint, avg float64, count int64) error {
	return r.DB.Model(&entity.Canteen{}).
		Where("id = ?", id).
		Updates(map[string]any{"avg_rating": avg, "rating_count": count}).Error
}
