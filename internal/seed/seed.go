// Package seed provides helpers to create demo data for the directory
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"time"

	"userdir/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the users table with fake records.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes every record from the users table.
func (s *Seeder) ClearAll() error {
	if err := s.db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}

// BuildUser constructs a fake user without persisting it.
func (s *Seeder) BuildUser() *models.User {
	// One shared demo hash; hashing per record makes large seeds crawl.
	return &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: demoPasswordHash(),
	}
}

// CreateUsers persists n fake users and returns them.
func (s *Seeder) CreateUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, *s.BuildUser())
	}
	if err := s.db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	log.Printf("Seeded %d users", len(users))
	return users, nil
}

var cachedHash string

func demoPasswordHash() string {
	if cachedHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		if err != nil {
			log.Fatalf("failed to hash demo password: %v", err)
		}
		cachedHash = string(h)
	}
	return cachedHash
}
