package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sahayognepal/charity-backend/config"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserRole{}, &User{}))
	require.NoError(t, SeedUserRoles(db))

	cfg := &config.Config{
		JWTAccessSecret:    "test-access-secret",
		JWTRefreshSecret:   "test-refresh-secret",
		JWTAccessTTLHours:  1,
		JWTRefreshTTLHours: 24,
	}
	return NewService(NewRepository(db), cfg), db
}

func TestRegisterAlwaysGetsUserRole(t *testing.T) {
	svc, db := setupService(t)

	err := svc.Register(RegisterInput{
		FullName: "Asha Gurung",
		Email:    "Asha@Example.com",
		Password: "supersecret",
		Country:  "Nepal",
	})
	require.NoError(t, err)

	var user User
	require.NoError(t, db.Preload("Role").Where("email = ?", "asha@example.com").First(&user).Error)
	assert.Equal(t, RoleUser, user.Role.RoleName)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)

	input := RegisterInput{FullName: "Asha", Email: "asha@example.com", Password: "supersecret"}
	require.NoError(t, svc.Register(input))

	err := svc.Register(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Register(RegisterInput{FullName: "Asha", Email: "asha@example.com", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := setupService(t)

	require.NoError(t, svc.Register(RegisterInput{
		FullName: "Asha", Email: "asha@example.com", Password: "supersecret",
	}))

	tokens, user, err := svc.Login(LoginInput{Email: "ASHA@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "asha@example.com", user.Email)

	// The refresh token mints a fresh access token.
	access, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupService(t)

	require.NoError(t, svc.Register(RegisterInput{
		FullName: "Asha", Email: "asha@example.com", Password: "supersecret",
	}))

	_, _, err := svc.Login(LoginInput{Email: "asha@example.com", Password: "wrong-password"})
	assert.Error(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Refresh("not-a-token")
	assert.Error(t, err)
}

func TestUpdateProfileLeavesRoleAlone(t *testing.T) {
	svc, db := setupService(t)

	require.NoError(t, svc.Register(RegisterInput{
		FullName: "Asha", Email: "asha@example.com", Password: "supersecret", Country: "Nepal",
	}))

	var user User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)

	newName := "Asha K. Gurung"
	updated, err := svc.UpdateProfile(user.ID, &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "Asha K. Gurung", updated.FullName)
	assert.Equal(t, "Nepal", updated.Country)
	assert.Equal(t, user.RoleID, updated.RoleID)
}
