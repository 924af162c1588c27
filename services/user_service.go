package services

import "github.com/Jead100/restaurant-api/repository"

// UserService exposes the roster views that are not tied to a group,
// currently just the customer listing.
type UserService struct {
	Users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

// Customers lists users with no group membership and no admin flag.
func (s *UserService) Customers(offset, limit int) ([]GroupUserOut, int64, error) {
	users, count, err := s.Users.ListCustomers(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]GroupUserOut, 0, len(users))
	for i := range users {
		out = append(out, groupUserOut(&users[i]))
	}
	return out, count, nil
}
