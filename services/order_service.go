package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/repository"
	"github.com/cooper235/Canteen-project-sub000/ws"

	"gorm.io/gorm"
)

// Notifier is the fan-out seam. The ws.Hub satisfies it in production; tests
// record events instead. Publish is fire-and-forget by contract, so the
// service never checks whether anyone listened.
type Notifier interface {
	Publish(room, event string, payload any)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	MenuRepo    *repository.MenuRepository
	CanteenRepo *repository.CanteenRepository
	Notifier    Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	canteenRepo *repository.CanteenRepository,
	notifier Notifier,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, CanteenRepo: canteenRepo, Notifier: notifier}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID   uint   `json:"menuItemId" binding:"required"`
	Qty          int    `json:"qty" binding:"required,min=1"`
	Instructions string `json:"instructions"`
}

type CreateOrderReq struct {
	CanteenID      uint          `json:"canteenId" binding:"required"`
	Items          []OrderLineIn `json:"items" binding:"required,min=1"`
	PaymentMethod  string        `json:"paymentMethod"`
	FulfilmentType string        `json:"fulfilmentType" binding:"omitempty,oneof=pickup delivery"`
	Request        string        `json:"request"`
}

// ----- Create -----

// Create validates every line against the live menu, snapshots prices, and
// persists all-or-nothing. No idempotency key: a retried request makes a new
// order, matching the source behavior. Exactly one order:created event goes
// to the canteen room, only after the transaction commits.
func (s *OrderService) Create(buyerID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	ok, err := s.CanteenRepo.Exists(req.CanteenID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("canteen not found")
	}

	// Re-read each live item: must exist, belong to the canteen, and be
	// available right now. Price is captured here and never re-read.
	var total int64
	lines := make([]orderLine, 0, len(req.Items))
	for _, it := range req.Items {
		m, err := s.MenuRepo.GetItemBasics(it.MenuItemID)
		if err != nil {
			return nil, errors.New("menu item not found")
		}
		if m.CanteenID != req.CanteenID {
			return nil, errors.New("menu item not in this canteen")
		}
		if !m.Available {
			return nil, fmt.Errorf("menu item %q is unavailable", m.Name)
		}
		total += m.Price * int64(it.Qty)
		lines = append(lines, orderLine{m.ID, m.Name, it.Qty, m.Price, it.Instructions})
	}

	fulfil := entity.FulfilmentType(req.FulfilmentType)
	if fulfil == "" {
		fulfil = entity.FulfilPickup
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := s.Repo.NextOrderNumber(tx)
		if err != nil {
			return err
		}
		order = entity.Order{
			OrderNumber:    number,
			Status:         entity.OrderPending,
			PaymentStatus:  entity.PaymentUnpaid,
			PaymentMethod:  req.PaymentMethod,
			FulfilmentType: fulfil,
			Request:        req.Request,
			Total:          total,
			UserID:         buyerID,
			CanteenID:      req.CanteenID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				Qty:          l.qty,
				UnitPrice:    l.unitPrice,
				Total:        l.unitPrice * int64(l.qty),
				Instructions: l.note,
				OrderID:      order.ID,
				MenuItemID:   l.menuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := summarize(lines)
	s.Notifier.Publish(ws.CanteenRoom(order.CanteenID), ws.EventOrderCreated, ws.OrderCreatedPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		Summary:     summary,
		Message:     fmt.Sprintf("New order #%d: %s", order.OrderNumber, summary),
	})

	return &order, nil
}

// orderLine is the validated, price-snapshotted form of one request line.
type orderLine struct {
	menuItemID uint
	name       string
	qty        int
	unitPrice  int64
	note       string
}

func summarize(lines []orderLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%d× %s", l.qty, l.name))
	}
	return strings.Join(parts, ", ")
}

// ----- Transitions -----

// Advance moves the order to the single legal successor of its current
// status. The caller never names a target. The guarded update keeps the
// state machine safe against racing staff clients, and the events go out only
// after the write commits, so per-order event order matches commit order.
func (s *OrderService) Advance(actorID uint, role string, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeVendor(actorID, role, o.CanteenID); err != nil {
		return nil, err
	}

	next, ok := NextStatus(o.Status)
	if !ok {
		return nil, ErrTerminal
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, next)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConflict
	}
	o.Status = next

	s.publishStatusChanged(o)
	return o, nil
}

// Cancel is the only other mutation. Allowed for the buyer, the owning
// vendor, or an admin, from any non-terminal state.
func (s *OrderService) Cancel(actorID uint, role string, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != actorID {
		if err := s.authorizeVendor(actorID, role, o.CanteenID); err != nil {
			return nil, err
		}
	}

	if !Cancellable(o.Status) {
		return nil, ErrTerminal
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, entity.OrderCancelled)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConflict
	}
	o.Status = entity.OrderCancelled

	s.publishStatusChanged(o)
	return o, nil
}

// publishStatusChanged fans out to the canteen room and the buyer's personal
// room, so the buyer learns without polling and the dashboard reconciles its
// optimistic view.
func (s *OrderService) publishStatusChanged(o *entity.Order) {
	payload := ws.OrderStatusChangedPayload{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		NewStatus:   o.Status,
		Message:     fmt.Sprintf("Order #%d is now %s", o.OrderNumber, o.Status),
	}
	s.Notifier.Publish(ws.CanteenRoom(o.CanteenID), ws.EventOrderStatusChanged, payload)
	s.Notifier.Publish(ws.UserRoom(o.UserID), ws.EventOrderStatusChanged, payload)
}

func (s *OrderService) authorizeVendor(actorID uint, role string, canteenID uint) error {
	if role == "admin" {
		return nil
	}
	ok, err := s.CanteenRepo.IsOwnedBy(canteenID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// ----- Payment -----

// SetPaymentStatus is deliberately independent of the lifecycle status.
func (s *OrderService) SetPaymentStatus(actorID uint, role string, orderID uint, status entity.PaymentStatus) (*entity.Order, error) {
	switch status {
	case entity.PaymentUnpaid, entity.PaymentPaid, entity.PaymentRefunded:
	default:
		return nil, errors.New("unknown payment status")
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeVendor(actorID, role, o.CanteenID); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdatePaymentStatus(o.ID, status); err != nil {
		return nil, err
	}
	o.PaymentStatus = status
	return o, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

type CanteenOrderListOut struct {
	Items []repository.CanteenOrderSummary `json:"items"`
	Total int64                            `json:"total"`
	Page  int                              `json:"page"`
	Limit int                              `json:"limit"`
}

func (s *OrderService) ListForCanteen(actorID uint, role string, canteenID uint, status entity.OrderStatus, page, limit int) (*CanteenOrderListOut, error) {
	if err := s.authorizeVendor(actorID, role, canteenID); err != nil {
		return nil, err
	}
	items, total, err := s.Repo.ListOrdersForCanteen(canteenID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &CanteenOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForCanteen(actorID uint, role string, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeVendor(actorID, role, o.CanteenID); err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}
