package repository

import (
	"encoding/json"
	"os"

	"digital-hospital-sim/internal/domain/entity"
	domainRepo "digital-hospital-sim/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// seedUser is the on-disk shape of one account in the users fixture.
// Passwords sit in the fixture as plain text (training accounts only)
// and are hashed at load so login always verifies through bcrypt.
type seedUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userRepository struct {
	users map[string]*entity.User
}

// NewUserRepository loads the seeded simulator accounts from the users
// fixture. A missing or malformed fixture leaves no accounts and every
// login fails.
func NewUserRepository(path string, log *logrus.Logger) domainRepo.UserRepository {
	r := &userRepository{users: map[string]*entity.User{}}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Failed to load users fixture %s: %+v", path, err)
		return r
	}

	var seeds []seedUser
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Warnf("Failed to parse users fixture %s: %+v", path, err)
		return r
	}

	for _, s := range seeds {
		if s.Username == "" {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Warnf("Failed to hash password for user %s: %+v", s.Username, err)
			continue
		}
		r.users[s.Username] = &entity.User{
			Username: s.Username,
			Password: string(hashed),
			Role:     s.Role,
		}
	}

	log.Infof("Loaded %d simulator accounts", len(r.users))
	return r
}

func (r *userRepository) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}
