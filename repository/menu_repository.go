package repository

import (
	"github.com/cooper235/Canteen-project-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GetItemBasics reads the live item fields order validation needs.
func (r *MenuRepository) GetItemBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, available, canteen_id").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) ListForCanteen(canteenID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("canteen_id = ?", canteenID).Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpdateItem applies the vendor-editable fields. Historical orders keep their
// snapshotted prices regardless.
func (r *MenuRepository) UpdateItem(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateRating overwrites the materialized aggregate.
func (r *MenuRepository) UpdateRating(id uint, avg float64, count int64) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]any{"avg_rating": avg, "rating_count": count}).Error
}
