package repositories

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pet-connect/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// openTestDB opens a throwaway sqlite database with the full schema migrated.
// Foreign keys are switched on so cascade behavior matches production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "petconnect_test.db")
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=foreign_keys(1)",
	}, &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Follow{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:        name,
		Email:       fmt.Sprintf("%s@example.com", name),
		FirebaseUID: fmt.Sprintf("uid-%s", name),
	}
	require.NoError(t, NewPostgresUserRepository(db).CreateUser(user))
	return user
}

func createTestPet(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Pet {
	t.Helper()
	pet := &models.Pet{
		Name:   name,
		Type:   "dog",
		QRCode: fmt.Sprintf("qr-%s", name),
		UserID: owner.ID,
	}
	require.NoError(t, NewPostgresPetRepository(db).CreatePet(pet))
	return pet
}
