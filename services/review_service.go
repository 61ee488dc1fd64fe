package services

import (
	"errors"

	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	Orders    *repository.OrderRepository
	Menu      *repository.MenuRepository
	Canteens  *repository.CanteenRepository
	Rating    *RatingService
	Sentiment SentimentClassifier
}

func NewReviewService(
	repo *repository.ReviewRepository,
	orders *repository.OrderRepository,
	menu *repository.MenuRepository,
	canteens *repository.CanteenRepository,
	rating *RatingService,
	sentiment SentimentClassifier,
) *ReviewService {
	return &ReviewService{
		Repo: repo, Orders: orders, Menu: menu, Canteens: canteens,
		Rating: rating, Sentiment: sentiment,
	}
}

type CreateReviewReq struct {
	MenuItemID *uint  `json:"menuItemId"`
	CanteenID  *uint  `json:"canteenId"`
	OrderID    *uint  `json:"orderId"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// Create validates the targets, derives the verified-purchase flag, asks the
// classifier (best-effort), persists, then recomputes every touched
// aggregate synchronously.
func (s *ReviewService) Create(userID uint, req *CreateReviewReq) (*entity.Review, error) {
	if req.MenuItemID == nil && req.CanteenID == nil {
		return nil, errors.New("either menuItemId or canteenId is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating must be 1-5")
	}

	if req.MenuItemID != nil {
		ok, err := s.Menu.Exists(*req.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("menu item not found")
		}
	}
	if req.CanteenID != nil {
		ok, err := s.Canteens.Exists(*req.CanteenID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("canteen not found")
		}
	}

	// Verified purchase: the backing order must be the author's own and
	// already completed. A missing or foreign order is a validation error.
	verified := false
	if req.OrderID != nil {
		o, err := s.Orders.GetOrderForUser(userID, *req.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("order not found or not yours")
			}
			return nil, err
		}
		verified = o.Status == entity.OrderCompleted
	}

	rev := entity.Review{
		Rating:           req.Rating,
		Comment:          req.Comment,
		Status:           entity.ReviewApproved, // deployment default: auto-approve
		Sentiment:        s.Sentiment.Classify(req.Comment),
		VerifiedPurchase: verified,
		UserID:           userID,
		MenuItemID:       req.MenuItemID,
		CanteenID:        req.CanteenID,
		OrderID:          req.OrderID,
	}
	if err := s.Repo.Create(&rev); err != nil {
		return nil, err
	}

	if err := s.recomputeSubjects(&rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

// SetStatus is the admin moderation switch. Every flip recomputes, since
// approval state decides aggregate membership.
func (s *ReviewService) SetStatus(reviewID uint, status entity.ReviewStatus) (*entity.Review, error) {
	switch status {
	case entity.ReviewPending, entity.ReviewApproved, entity.ReviewRejected:
	default:
		return nil, errors.New("unknown review status")
	}

	rev, err := s.Repo.FindByID(reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(rev.ID, status); err != nil {
		return nil, err
	}
	rev.Status = status

	if err := s.recomputeSubjects(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete: author or admin only.
func (s *ReviewService) Delete(actorID uint, role string, reviewID uint) error {
	rev, err := s.Repo.FindByID(reviewID)
	if err != nil {
		return err
	}
	if rev.UserID != actorID && role != "admin" {
		return ErrForbidden
	}
	if err := s.Repo.Delete(rev.ID); err != nil {
		return err
	}
	return s.recomputeSubjects(rev)
}

func (s *ReviewService) MarkHelpful(reviewID uint) error {
	if _, err := s.Repo.FindByID(reviewID); err != nil {
		return err
	}
	return s.Repo.IncrementHelpful(reviewID)
}

func (s *ReviewService) recomputeSubjects(rev *entity.Review) error {
	if rev.MenuItemID != nil {
		if err := s.Rating.Recompute(SubjectMenuItem, *rev.MenuItemID); err != nil {
			return err
		}
	}
	if rev.CanteenID != nil {
		if err := s.Rating.Recompute(SubjectCanteen, *rev.CanteenID); err != nil {
			return err
		}
	}
	return nil
}

// ----- Listings -----

func (s *ReviewService) ListForMenuItem(menuItemID uint, limit, offset int) ([]entity.Review, repository.ApprovedStats, error) {
	items, err := s.Repo.ListForMenuItem(menuItemID, limit, offset)
	if err != nil {
		return nil, repository.ApprovedStats{}, err
	}
	stats, err := s.Repo.StatsForMenuItem(menuItemID)
	return items, stats, err
}

func (s *ReviewService) ListForCanteen(canteenID uint, limit, offset int) ([]entity.Review, repository.ApprovedStats, error) {
	items, err := s.Repo.ListForCanteen(canteenID, limit, offset)
	if err != nil {
		return nil, repository.ApprovedStats{}, err
	}
	stats, err := s.Repo.StatsForCanteen(canteenID)
	return items, stats, err
}
