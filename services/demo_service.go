package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
	"github.com/Jead100/restaurant-api/utils"
)

// DemoService mints throwaway accounts so visitors can poke at the API
// without registering. Accounts expire after cfg.DemoUserTTL and get
// swept by Purge.
type DemoService struct {
	DB     *gorm.DB
	Users  *repository.UserRepository
	Groups *repository.GroupRepository
	Cfg    *configs.Config
}

func NewDemoService(db *gorm.DB, users *repository.UserRepository, groups *repository.GroupRepository, cfg *configs.Config) *DemoService {
	return &DemoService{DB: db, Users: users, Groups: groups, Cfg: cfg}
}

type DemoLoginOut struct {
	Username  string      `json:"username"`
	Role      entity.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Access    string      `json:"access"`
	Refresh   string      `json:"refresh"`
}

type DemoMeOut struct {
	Username            string      `json:"username"`
	Role                entity.Role `json:"role"`
	IsDemo              bool        `json:"isDemo"`
	ExpiresAt           *time.Time  `json:"expiresAt"`
	TTLSecondsRemaining int64       `json:"ttlSecondsRemaining"`
	TTLHint             string      `json:"ttlHint"`
}

// Login creates a fresh demo user in the requested role and returns a
// token pair. The role accepts dashes or underscores in the URL.
func (s *DemoService) Login(roleRaw string) (*DemoLoginOut, error) {
	if !s.Cfg.DemoMode {
		return nil, ErrDemoDisabled
	}

	role, err := parseDemoRole(roleRaw)
	if err != nil {
		return nil, err
	}

	// Random credentials; nobody logs into a demo account twice.
	suffix := strings.Split(uuid.NewString(), "-")[0]
	username := "demo_" + suffix
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.Cfg.DemoUserTTL)
	user := &entity.User{
		Username:      username,
		Password:      string(hashed),
		IsDemo:        true,
		DemoExpiresAt: &expiresAt,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		groupName, ok := demoGroupFor(role)
		if !ok {
			return nil
		}
		group, err := s.Groups.FindByName(groupName)
		if err != nil {
			return err
		}
		return s.Groups.AddUser(tx, group, user)
	})
	if err != nil {
		return nil, err
	}

	accessTTL := minDuration(demoAccessMax, s.Cfg.DemoUserTTL)
	refreshTTL := minDuration(demoRefreshMax, s.Cfg.DemoUserTTL)
	access, refresh, err := utils.TokenPair(user.ID, true, s.Cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		return nil, err
	}

	return &DemoLoginOut{
		Username:  username,
		Role:      role,
		ExpiresAt: expiresAt,
		Access:    access,
		Refresh:   refresh,
	}, nil
}

func (s *DemoService) Me(user *entity.User) *DemoMeOut {
	out := &DemoMeOut{
		Username:  user.Username,
		Role:      entity.PrimaryRole(user),
		IsDemo:    user.IsDemo,
		ExpiresAt: user.DemoExpiresAt,
	}
	if user.IsDemo && user.DemoExpiresAt != nil {
		remaining := time.Until(*user.DemoExpiresAt)
		if remaining < 0 {
			remaining = 0
		}
		out.TTLSecondsRemaining = int64(remaining.Seconds())
		out.TTLHint = ttlHint(remaining)
	}
	return out
}

// Purge deletes every demo user whose TTL has elapsed, along with
// their cart lines and group rows. Returns the number of users swept.
func (s *DemoService) Purge(now time.Time) (int64, error) {
	var count int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		count, err = s.Users.DeleteExpiredDemo(tx, now)
		return err
	})
	return count, err
}

func parseDemoRole(raw string) (entity.Role, error) {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	switch entity.Role(slug) {
	case entity.RoleManager, entity.RoleDeliveryCrew, entity.RoleCustomer:
		return entity.Role(slug), nil
	}
	return "", fieldError("role", "Invalid role. Use one of: manager, delivery_crew, customer.")
}

func demoGroupFor(role entity.Role) (string, bool) {
	switch role {
	case entity.RoleManager:
		return entity.GroupManager, true
	case entity.RoleDeliveryCrew:
		return entity.GroupDeliveryCrew, true
	}
	return "", false
}

func ttlHint(remaining time.Duration) string {
	if remaining <= 0 {
		return "expired"
	}
	mins := int(remaining.Minutes())
	if mins < 60 {
		return fmt.Sprintf("~%dm left", mins)
	}
	h, m := mins/60, mins%60
	if m == 0 {
		return fmt.Sprintf("~%dh left", h)
	}
	return fmt.Sprintf("~%dh %dm left", h, m)
}
