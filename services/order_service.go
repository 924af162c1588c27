package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
)

var orderOrderFields = []string{"id", "date", "status", "total"}

const dateLayout = "2006-01-02"

// today is midnight of the current calendar day in server-local time.
// Truncating a Time would round in UTC and stamp evening orders with
// yesterday's date.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	GroupRepo *repository.GroupRepository
	DemoMode  bool

	// txHook runs inside the order-creation transaction, after the
	// order lines are inserted. Test seam for rollback behavior.
	txHook func(tx *gorm.DB) error
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	groupRepo *repository.GroupRepository,
	demoMode bool,
) *OrderService {
	return &OrderService{
		DB:        db,
		Repo:      repo,
		CartRepo:  cartRepo,
		GroupRepo: groupRepo,
		DemoMode:  demoMode,
	}
}

// ----- DTOs -----

type UserTinyOut struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type OrderItemOut struct {
	ID         uint    `json:"id"`
	MenuItemID *uint   `json:"menuItemId"`
	ItemTitle  string  `json:"itemTitle"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Price      float64 `json:"price"`
}

type OrderOut struct {
	ID         uint           `json:"id"`
	Date       string         `json:"date"`
	Status     bool           `json:"status"`
	Total      float64        `json:"total"`
	OrderItems []OrderItemOut `json:"orderItems"`

	// Embedded only in manager views.
	User         *UserTinyOut `json:"user,omitempty"`
	DeliveryCrew *UserTinyOut `json:"deliveryCrew,omitempty"`
}

func orderOut(o *entity.Order, role entity.Role) *OrderOut {
	out := &OrderOut{
		ID:         o.ID,
		Date:       o.Date.Format(dateLayout),
		Status:     o.Status,
		Total:      o.Total,
		OrderItems: make([]OrderItemOut, 0, len(o.OrderItems)),
	}
	for _, it := range o.OrderItems {
		out.OrderItems = append(out.OrderItems, OrderItemOut{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			ItemTitle:  it.ItemTitle,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Price:      it.Price,
		})
	}
	if role == entity.RoleManager {
		out.User = &UserTinyOut{ID: o.User.ID, Username: o.User.Username}
		if o.DeliveryCrew != nil {
			out.DeliveryCrew = &UserTinyOut{ID: o.DeliveryCrew.ID, Username: o.DeliveryCrew.Username}
		}
	}
	return out
}

// ----- Create (cart -> order) -----

// CreateFromCart turns the user's cart into an immutable order.
//
// The whole transition runs in one transaction: create the order,
// copy every cart line into an order line (snapshots come from the
// cart, never re-read from the live catalog), sum the total, clear
// the cart. A failure at any step leaves neither a partial order nor
// a cleared cart.
func (s *OrderService) CreateFromCart(userID uint, role entity.Role) (*OrderOut, error) {
	var created *entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cartItems, err := s.CartRepo.AllForUser(tx, userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		order := &entity.Order{
			UserID: userID,
			Status: false,
			Total:  0, // placeholder until line totals are summed
			Date:   today(),
			IsDemo: s.DemoMode,
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}

		var total float64
		lines := make([]entity.OrderItem, 0, len(cartItems))
		for _, it := range cartItems {
			menuItemID := it.MenuItemID
			lines = append(lines, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: &menuItemID,
				ItemTitle:  it.MenuItem.Title,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				Price:      it.Price,
			})
			total += it.Price
		}
		if err := s.Repo.CreateItems(tx, lines); err != nil {
			return err
		}

		if s.txHook != nil {
			if err := s.txHook(tx); err != nil {
				return err
			}
		}

		if err := tx.Model(order).Update("total", total).Error; err != nil {
			return err
		}
		if _, err := s.CartRepo.ClearForUser(tx, userID); err != nil {
			return err
		}

		order.Total = total
		order.OrderItems = lines
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with associations for the response.
	full, err := s.Repo.ByIDScoped(repository.OrderScope{Role: entity.RoleManager}, created.ID)
	if err != nil {
		return nil, err
	}
	return orderOut(full, role), nil
}

// ----- List & retrieve -----

// OrderListIn carries raw query-parameter values; validation happens
// here so unparseable filters reject the request before any query runs.
type OrderListIn struct {
	Date       string
	DateBefore string
	DateAfter  string
	Total      string
	MinTotal   string
	MaxTotal   string
	Status     string
	User       string
	Crew       string
	OrderBy    string
	Offset     int
	Limit      int
}

func (s *OrderService) List(viewer *entity.User, role entity.Role, in OrderListIn) ([]OrderOut, int64, error) {
	filter, err := s.buildFilter(role, in)
	if err != nil {
		return nil, 0, err
	}

	scope := repository.OrderScope{Role: role, UserID: viewer.ID}
	orders, count, err := s.Repo.List(scope, *filter, in.Offset, in.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, *orderOut(&orders[i], role))
	}
	return out, count, nil
}

func (s *OrderService) Get(viewer *entity.User, role entity.Role, orderID uint) (*OrderOut, error) {
	o, err := s.loadScoped(viewer, role, orderID)
	if err != nil {
		return nil, err
	}
	return orderOut(o, role), nil
}

func (s *OrderService) buildFilter(role entity.Role, in OrderListIn) (*repository.OrderFilter, error) {
	f := &repository.OrderFilter{}

	var err error
	if f.Date, err = parseDateFilter("date", in.Date); err != nil {
		return nil, err
	}
	if f.DateBefore, err = parseDateFilter("date_before", in.DateBefore); err != nil {
		return nil, err
	}
	if f.DateAfter, err = parseDateFilter("date_after", in.DateAfter); err != nil {
		return nil, err
	}
	if f.Total, err = parseTotalFilter("total", in.Total); err != nil {
		return nil, err
	}
	if f.MinTotal, err = parseTotalFilter("min_total", in.MinTotal); err != nil {
		return nil, err
	}
	if f.MaxTotal, err = parseTotalFilter("max_total", in.MaxTotal); err != nil {
		return nil, err
	}
	if f.Status, err = parseStatusFilter(in.Status); err != nil {
		return nil, err
	}

	// User filters only take effect for managers; others are silently
	// ignored since role scoping already restricts visibility.
	if role == entity.RoleManager {
		f.UserID, f.Username, f.UserNull = parseUserFilter(in.User)
		f.DeliveryCrewID, f.DeliveryCrewName, f.DeliveryCrewNull = parseUserFilter(in.Crew)
	}

	f.OrderBy, err = validateOrderBy(in.OrderBy, orderOrderFields)
	if err != nil {
		return nil, err
	}
	if len(f.OrderBy) == 0 {
		f.OrderBy = []string{"date DESC", "id DESC"}
	}
	return f, nil
}

func parseDateFilter(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fieldError(name, "Please use the date format YYYY-MM-DD.")
	}
	return &t, nil
}

func parseTotalFilter(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fieldError(name, "A valid number is required.")
	}
	if v < 0 {
		return nil, fieldError(name, "Price cannot be negative.")
	}
	return &v, nil
}

func parseStatusFilter(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		v := true
		return &v, nil
	case "0", "false":
		v := false
		return &v, nil
	default:
		return nil, fieldError("status", "Must be one of: 1, 0, true, false (case-insensitive)")
	}
}

// parseUserFilter accepts a primary key, the literal "null", or a
// username (matched case-insensitively).
func parseUserFilter(raw string) (*uint, string, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return nil, "", false
	}
	if v == "null" {
		return nil, "", true
	}
	if n, err := strconv.ParseUint(v, 10, 32); err == nil {
		id := uint(n)
		return &id, "", false
	}
	return nil, v, false
}

// ----- Update -----

// OptionalUserID distinguishes an absent field from an explicit null
// (null clears the delivery-crew assignment).
type OptionalUserID struct {
	Set   bool
	Value *uint
}

func (o *OptionalUserID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type ManagerOrderUpdateIn struct {
	Status       *bool          `json:"status"`
	DeliveryCrew OptionalUserID `json:"deliveryCrew"`
}

type CrewOrderUpdateIn struct {
	Status *bool `json:"status"`
}

// ManagerUpdate lets a manager toggle status and/or (re)assign the
// delivery crew on any order. At least one of the two is required.
func (s *OrderService) ManagerUpdate(viewer *entity.User, orderID uint, in *ManagerOrderUpdateIn) (*OrderOut, error) {
	if in.Status == nil && !in.DeliveryCrew.Set {
		return nil, fieldError("non_field_errors", "Provide at least one of 'status' or 'deliveryCrew'.")
	}

	o, err := s.loadScoped(viewer, entity.RoleManager, orderID)
	if err != nil {
		return nil, err
	}
	if s.DemoMode && !o.IsDemo {
		return nil, ErrDemoModify
	}

	fields := map[string]any{}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.DeliveryCrew.Set {
		if in.DeliveryCrew.Value != nil {
			if err := s.requireDeliveryCrew(*in.DeliveryCrew.Value); err != nil {
				return nil, err
			}
		}
		fields["delivery_crew_id"] = in.DeliveryCrew.Value
	}
	if err := s.Repo.Updates(o, fields); err != nil {
		return nil, err
	}

	full, err := s.loadScoped(viewer, entity.RoleManager, orderID)
	if err != nil {
		return nil, err
	}
	return orderOut(full, entity.RoleManager), nil
}

// CrewUpdate lets delivery crew flip the status flag on their own
// assignments. Status stays mandatory even under a partial update.
func (s *OrderService) CrewUpdate(viewer *entity.User, orderID uint, in *CrewOrderUpdateIn) (*OrderOut, error) {
	if in.Status == nil {
		return nil, fieldError("status", "This field is required.")
	}

	o, err := s.loadScoped(viewer, entity.RoleDeliveryCrew, orderID)
	if err != nil {
		return nil, err
	}
	if s.DemoMode && !o.IsDemo {
		return nil, ErrDemoModify
	}

	if err := s.Repo.Updates(o, map[string]any{"status": *in.Status}); err != nil {
		return nil, err
	}

	full, err := s.loadScoped(viewer, entity.RoleDeliveryCrew, orderID)
	if err != nil {
		return nil, err
	}
	return orderOut(full, entity.RoleDeliveryCrew), nil
}

// Delete removes an order and its lines. Manager only (route-gated).
func (s *OrderService) Delete(viewer *entity.User, orderID uint) error {
	o, err := s.loadScoped(viewer, entity.RoleManager, orderID)
	if err != nil {
		return err
	}
	if s.DemoMode && !o.IsDemo {
		return ErrDemoDelete
	}
	return s.Repo.Delete(o)
}

func (s *OrderService) loadScoped(viewer *entity.User, role entity.Role, orderID uint) (*entity.Order, error) {
	scope := repository.OrderScope{Role: role, UserID: viewer.ID}
	o, err := s.Repo.ByIDScoped(scope, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) requireDeliveryCrew(userID uint) error {
	group, err := s.GroupRepo.FindByName(entity.GroupDeliveryCrew)
	if err != nil {
		return err
	}
	ok, err := s.GroupRepo.IsMember(group.ID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fieldError("deliveryCrew", "User is not a delivery crew member.")
	}
	return nil
}
