package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jead100/restaurant-api/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// OrderScope restricts queries to what the viewer's role may see:
// managers see everything, delivery crew their assignments, customers
// their own orders, anything else an empty set.
type OrderScope struct {
	Role   entity.Role
	UserID uint
}

func (s OrderScope) apply(q *gorm.DB) *gorm.DB {
	switch s.Role {
	case entity.RoleManager:
		return q
	case entity.RoleDeliveryCrew:
		return q.Where("delivery_crew_id = ?", s.UserID)
	case entity.RoleCustomer:
		return q.Where("orders.user_id = ?", s.UserID)
	default:
		return q.Where("1 = 0")
	}
}

// OrderFilter holds pre-validated list filters for orders.
type OrderFilter struct {
	Date       *time.Time
	DateBefore *time.Time
	DateAfter  *time.Time

	Total    *float64
	MinTotal *float64
	MaxTotal *float64

	Status *bool

	// Manager-only; ignored for other roles by the service.
	UserID           *uint
	Username         string
	UserNull         bool
	DeliveryCrewID   *uint
	DeliveryCrewName string
	DeliveryCrewNull bool

	OrderBy []string // validated order clauses; defaults applied by service
}

func (r *OrderRepository) List(scope OrderScope, f OrderFilter, offset, limit int) ([]entity.Order, int64, error) {
	q := scope.apply(r.DB.Model(&entity.Order{}))

	if f.Date != nil {
		q = q.Where("date = ?", f.Date.Format("2006-01-02"))
	}
	if f.DateBefore != nil {
		q = q.Where("date <= ?", f.DateBefore.Format("2006-01-02"))
	}
	if f.DateAfter != nil {
		q = q.Where("date >= ?", f.DateAfter.Format("2006-01-02"))
	}
	if f.Total != nil {
		q = q.Where("total = ?", *f.Total)
	}
	if f.MinTotal != nil {
		q = q.Where("total >= ?", *f.MinTotal)
	}
	if f.MaxTotal != nil {
		q = q.Where("total <= ?", *f.MaxTotal)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	q = r.applyUserFilter(q, "user_id", f.UserID, f.Username, f.UserNull)
	q = r.applyUserFilter(q, "delivery_crew_id", f.DeliveryCrewID, f.DeliveryCrewName, f.DeliveryCrewNull)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	for _, clause := range f.OrderBy {
		q = q.Order(clause)
	}

	var orders []entity.Order
	err := q.Preload("OrderItems").Preload("User").Preload("DeliveryCrew").
		Offset(offset).Limit(limit).Find(&orders).Error
	return orders, count, err
}

// applyUserFilter matches a user reference column by ID, username
// (case-insensitive), or NULL.
func (r *OrderRepository) applyUserFilter(q *gorm.DB, column string, id *uint, username string, null bool) *gorm.DB {
	switch {
	case null:
		return q.Where(column + " IS NULL")
	case id != nil:
		return q.Where(column+" = ?", *id)
	case username != "":
		return q.Where(column+" IN (SELECT id FROM users WHERE LOWER(username) = LOWER(?))", username)
	default:
		return q
	}
}

// ByIDScoped returns an order only if it is visible to the scope, so
// "exists but not yours" and "does not exist" are indistinguishable.
func (r *OrderRepository) ByIDScoped(scope OrderScope, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := scope.apply(r.DB.Model(&entity.Order{})).
		Preload("OrderItems").Preload("User").Preload("DeliveryCrew").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

func (r *OrderRepository) Save(o *entity.Order) error {
	return r.DB.Save(o).Error
}

// Updates applies a partial field mask to the order. The update goes
// by key rather than through the loaded model: a preloaded association
// would otherwise be re-saved and overwrite a nil delivery_crew_id.
func (r *OrderRepository) Updates(o *entity.Order, fields map[string]any) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", o.ID).
		Omit(clause.Associations).
		Updates(fields).Error
}

// Delete removes the order and, via cascade, its order lines.
func (r *OrderRepository) Delete(o *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", o.ID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(o).Error
	})
}

// UnassignCrew clears the delivery-crew assignment on all of a user's
// orders (used when the user leaves the Delivery crew group).
func (r *OrderRepository) UnassignCrew(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.Order{}).
		Where("delivery_crew_id = ?", userID).
		Update("delivery_crew_id", nil).Error
}
