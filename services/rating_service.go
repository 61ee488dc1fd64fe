package services

import (
	"errors"

	"github.com/cooper235/Canteen-project-sub000/repository"
)

// SubjectType names what a rating aggregate hangs off.
type SubjectType string

const (
	SubjectMenuItem SubjectType = "menuItem"
	SubjectCanteen  SubjectType = "canteen"
)

// RatingService owns the only denormalized state in the model. Recompute is a
// full scan, never an incremental patch: reviews get deleted and re-moderated
// out of order, and a running average cannot be reversed without keeping more
// state than the aggregate itself.
type RatingService struct {
	Reviews  *repository.ReviewRepository
	Menu     *repository.MenuRepository
	Canteens *repository.CanteenRepository
}

func NewRatingService(
	reviews *repository.ReviewRepository,
	menu *repository.MenuRepository,
	canteens *repository.CanteenRepository,
) *RatingService {
	return &RatingService{Reviews: reviews, Menu: menu, Canteens: canteens}
}

// Recompute scans the subject's currently-approved reviews and overwrites its
// embedded mean/count. Call it synchronously after every review mutation that
// touches the subject.
func (s *RatingService) Recompute(subject SubjectType, id uint) error {
	switch subject {
	case SubjectMenuItem:
		stats, err := s.Reviews.StatsForMenuItem(id)
		if err != nil {
			return err
		}
		return s.Menu.UpdateRating(id, stats.Avg, stats.Count)

	case SubjectCanteen:
		stats, err := s.Reviews.StatsForCanteen(id)
		if err != nil {
			return err
		}
		return s.Canteens.UpdateRating(id, stats.Avg, stats.Count)

	default:
		return errors.New("unknown rating subject")
	}
}
