package server

import (
	"testing"

	"userdir/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCapUsers(t *testing.T) {
	t.Parallel()

	t.Run("short slices pass through untouched", func(t *testing.T) {
		users := []models.User{{ID: 1}, {ID: 2}}
		assert.Len(t, capUsers(users), 2)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, capUsers(nil))
	})

	t.Run("exactly at the cap", func(t *testing.T) {
		users := make([]models.User, listCap)
		assert.Len(t, capUsers(users), listCap)
	})

	t.Run("over the cap keeps the first records", func(t *testing.T) {
		users := make([]models.User, listCap+30)
		for i := range users {
			users[i].ID = uint(i + 1)
		}
		capped := capUsers(users)
		assert.Len(t, capped, listCap)
		assert.Equal(t, uint(1), capped[0].ID)
		assert.Equal(t, uint(listCap), capped[listCap-1].ID)
	})
}
