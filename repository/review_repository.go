package repository

import (
	"github.com/cooper235/Canteen-project-sub000/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) UpdateStatus(id uint, status entity.ReviewStatus) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *ReviewRepository) IncrementHelpful(id uint) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1")).Error
}

func (r *ReviewRepository) ListForMenuItem(menuItemID uint, limit, offset int) ([]entity.Review, error) {
	return r.listApproved("menu_item_id = ?", menuItemID, limit, offset)
}

func (r *ReviewRepository) ListForCanteen(canteenID uint, limit, offset int) ([]entity.Review, error) {
	return r.listApproved("canteen_id = ?", canteenID, limit, offset)
}

func (r *ReviewRepository) listApproved(cond string, id uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []entity.Review
	err := r.DB.Where(cond, id).
		Where("status = ?", entity.ReviewApproved).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// ApprovedStats is the full-scan aggregate the rating recompute overwrites
// subjects with. Avg is 0 when Count is 0.
type ApprovedStats struct {
	Avg   float64
	Count int64
}

func (r *ReviewRepository) StatsForMenuItem(menuItemID uint) (ApprovedStats, error) {
	return r.stats("menu_item_id = ?", menuItemID)
}

func (r *ReviewRepository) StatsForCanteen(canteenID uint) (ApprovedStats, error) {
	return r.stats("canteen_id = ?", canteenID)
}

func (r *ReviewRepository) stats(cond string, id uint) (ApprovedStats, error) {
	var s ApprovedStats
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where(cond, id).
		Where("status = ?", entity.ReviewApproved).
		Scan(&s).Error
	return s, err
}
