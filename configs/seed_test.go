package configs

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))
	return db
}

func TestSeedAdmin(t *testing.T) {
	db := openSeedDB(t)
	cfg := &Config{AdminEmail: "admin@lareserve.bj", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg)) // re-run must not duplicate

	var admins []entity.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, entity.RoleAdmin, admins[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("s3cret")))
}

func TestSeedAdminLowercasesConfiguredEmail(t *testing.T) {
	db := openSeedDB(t)
	cfg := &Config{AdminEmail: "Admin@LaReserve.bj", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))

	var admin entity.AdminUser
	require.NoError(t, db.Where("email = ?", "admin@lareserve.bj").First(&admin).Error)
	assert.Equal(t, "admin@lareserve.bj", admin.Email)

	// Re-running with the mixed-case form must still find the seeded row.
	require.NoError(t, SeedAdmin(db, cfg))
	var count int64
	db.Model(&entity.AdminUser{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkippedWithoutCredentials(t *testing.T) {
	db := openSeedDB(t)

	require.NoError(t, SeedAdmin(db, &Config{}))
	var count int64
	db.Model(&entity.AdminUser{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSeedSampleContentRunsOnce(t *testing.T) {
	db := openSeedDB(t)

	require.NoError(t, SeedSampleContent(db))
	var first int64
	db.Model(&entity.MenuItem{}).Count(&first)
	assert.NotZero(t, first)

	require.NoError(t, SeedSampleContent(db))
	var second int64
	db.Model(&entity.MenuItem{}).Count(&second)
	assert.Equal(t, first, second)

	// Seeded reviews are pre-approved so the public site is not empty.
	var reviews []entity.Review
	require.NoError(t, db.Find(&reviews).Error)
	require.NotEmpty(t, reviews)
	for _, r := range reviews {
		assert.True(t, r.IsApproved)
	}
}
