package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
)

type GroupService struct {
	DB        *gorm.DB
	Groups    *repository.GroupRepository
	Users     *repository.UserRepository
	Orders    *repository.OrderRepository
	GroupName string // "Manager" or "Delivery crew"
}

func NewGroupService(
	db *gorm.DB,
	groups *repository.GroupRepository,
	users *repository.UserRepository,
	orders *repository.OrderRepository,
	groupName string,
) *GroupService {
	return &GroupService{DB: db, Groups: groups, Users: users, Orders: orders, GroupName: groupName}
}

type GroupUserOut struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func groupUserOut(u *entity.User) GroupUserOut {
	return GroupUserOut{ID: u.ID, Username: u.Username, Email: u.Email}
}

type GroupAddIn struct {
	Username string `json:"username" binding:"required"`
}

func (s *GroupService) group() (*entity.Group, error) {
	return s.Groups.FindByName(s.GroupName)
}

func (s *GroupService) Members(offset, limit int) ([]GroupUserOut, int64, error) {
	g, err := s.group()
	if err != nil {
		return nil, 0, err
	}
	users, count, err := s.Groups.ListMembers(g.ID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]GroupUserOut, 0, len(users))
	for i := range users {
		out = append(out, groupUserOut(&users[i]))
	}
	return out, count, nil
}

func (s *GroupService) Member(userID uint) (*GroupUserOut, error) {
	g, err := s.group()
	if err != nil {
		return nil, err
	}
	u, err := s.Groups.MemberByID(g.ID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := groupUserOut(u)
	return &out, nil
}

// Add puts a user, looked up by username, into the group. Adding an
// existing member is a conflict rather than a silent no-op.
func (s *GroupService) Add(in *GroupAddIn) (string, error) {
	g, err := s.group()
	if err != nil {
		return "", err
	}
	u, err := s.Users.FindByUsername(in.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fieldError("username", fmt.Sprintf("User '%s' does not exist.", in.Username))
	}
	if err != nil {
		return "", err
	}

	member, err := s.Groups.IsMember(g.ID, u.ID)
	if err != nil {
		return "", err
	}
	if member {
		return "", &ConflictError{Detail: fmt.Sprintf(
			"User '%s' is already in the %s group.", u.Username, g.Name)}
	}

	if err := s.Groups.AddUser(s.DB, g, u); err != nil {
		return "", err
	}
	return u.Username, nil
}

// Remove takes a user out of the group. Removing a delivery-crew
// member also clears their assignment on any orders, atomically.
func (s *GroupService) Remove(userID uint) (string, error) {
	g, err := s.group()
	if err != nil {
		return "", err
	}
	u, err := s.Groups.MemberByID(g.ID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if g.Name == entity.GroupDeliveryCrew {
			if err := s.Orders.UnassignCrew(tx, u.ID); err != nil {
				return err
			}
		}
		return s.Groups.RemoveUser(tx, g, u)
	})
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
