package repository

import (
	"strings"
	"time"

	"github.com/cooper235/Canteen-project-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// NextOrderNumber allocates the next sequential display number. Must run
// inside the creating transaction so concurrent creates serialize on it.
func (r *OrderRepository) NextOrderNumber(tx *gorm.DB) (uint, error) {
	var row struct{ Max uint }
	err := tx.Model(&entity.Order{}).
		Select("COALESCE(MAX(order_number), 0) AS max").
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Max + 1, nil
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, total, instructions, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// GET /profile/orders → most recent orders of a buyer
type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderNumber uint               `json:"orderNumber"`
	CanteenID   uint               `json:"canteenId"`
	Total       int64              `json:"total"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, canteen_id, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /partner/canteen/orders → paged orders of a canteen, joined with the
// buyer's name for the dashboard list.
type CanteenOrderSummary struct {
	ID          uint               `json:"id"`
	OrderNumber uint               `json:"orderNumber"`
	UserID      uint               `json:"userId"`
	BuyerName   string             `json:"buyerName"`
	Total       int64              `json:"total"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForCanteen(canteenID uint, status entity.OrderStatus, page, limit int) ([]CanteenOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Model(&entity.Order{}).Where("canteen_id = ?", canteenID)
	if status != "" {
		dbCount = dbCount.Where("status = ?", status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          uint
		OrderNumber uint
		UserID      uint
		Total       int64
		Status      entity.OrderStatus
		CreatedAt   time.Time
		FirstName   string
		LastName    string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.user_id, o.total, o.status, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.canteen_id = ? AND o.deleted_at IS NULL", canteenID)
	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]CanteenOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, CanteenOrderSummary{
			ID:          row.ID,
			OrderNumber: row.OrderNumber,
			UserID:      row.UserID,
			BuyerName:   strings.TrimSpace(row.FirstName + " " + row.LastName),
			Total:       row.Total,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, total, nil
}

// UpdateStatusGuard flips status only while the stored value still matches
// from. RowsAffected == 0 means a lost race or an illegal call.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdatePaymentStatus is independent of the lifecycle status by design.
func (r *OrderRepository) UpdatePaymentStatus(orderID uint, status entity.PaymentStatus) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status).Error
}
