package services

import (
	"testing"

	"github.com/cooper235/Canteen-project-sub000/configs"
	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

type publishedEvent struct {
	Room    string
	Event   string
	Payload any
}

// fakeNotifier records publishes instead of fanning out.
type fakeNotifier struct {
	events []publishedEvent
}

func (f *fakeNotifier) Publish(room, event string, payload any) {
	f.events = append(f.events, publishedEvent{Room: room, Event: event, Payload: payload})
}

func (f *fakeNotifier) forRoom(room string) []publishedEvent {
	var out []publishedEvent
	for _, e := range f.events {
		if e.Room == room {
			out = append(out, e)
		}
	}
	return out
}

// stubSentiment always answers with a fixed label.
type stubSentiment struct {
	label string
}

func (s stubSentiment) Classify(string) string { return s.label }

type testEnv struct {
	db       *gorm.DB
	orders   *OrderService
	reviews  *ReviewService
	rating   *RatingService
	notifier *fakeNotifier

	menuRepo    *repository.MenuRepository
	orderRepo   *repository.OrderRepository
	canteenRepo *repository.CanteenRepository
	reviewRepo  *repository.ReviewRepository

	buyer   entity.User
	vendor  entity.User
	canteen entity.Canteen
	dosa    entity.MenuItem // ₹50
	chai    entity.MenuItem // ₹30
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	env := &testEnv{
		db:          db,
		notifier:    &fakeNotifier{},
		menuRepo:    repository.NewMenuRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		canteenRepo: repository.NewCanteenRepository(db),
		reviewRepo:  repository.NewReviewRepository(db),
	}

	env.buyer = entity.User{Email: "buyer@test.local", FirstName: "Asha", LastName: "Rao", Role: "customer"}
	require.NoError(t, db.Create(&env.buyer).Error)
	env.vendor = entity.User{Email: "vendor@test.local", FirstName: "Vikram", Role: "vendor"}
	require.NoError(t, db.Create(&env.vendor).Error)

	env.canteen = entity.Canteen{Name: "South Block", UserID: env.vendor.ID, Open: true}
	require.NoError(t, db.Create(&env.canteen).Error)

	env.dosa = entity.MenuItem{Name: "Masala Dosa", Price: 50, Available: true, CanteenID: env.canteen.ID}
	require.NoError(t, db.Create(&env.dosa).Error)
	env.chai = entity.MenuItem{Name: "Chai", Price: 30, Available: true, CanteenID: env.canteen.ID}
	require.NoError(t, db.Create(&env.chai).Error)

	env.orders = NewOrderService(db, env.orderRepo, env.menuRepo, env.canteenRepo, env.notifier)
	env.rating = NewRatingService(env.reviewRepo, env.menuRepo, env.canteenRepo)
	env.reviews = NewReviewService(env.reviewRepo, env.orderRepo, env.menuRepo, env.canteenRepo, env.rating, stubSentiment{label: entity.SentimentNeutral})

	return env
}
