package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripbill-be-svc/internal/config"
	"tripbill-be-svc/internal/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ListUsersByTenant(tenantID uint) ([]*models.User, error) {
	var out []*models.User
	for _, user := range r.users {
		if user.TenantID == tenantID {
			out = append(out, user)
		}
	}
	return out, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", ExpireMinutes: 60}
}

func TestSignupAndLogin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testJWTConfig(), testLogger())

	user, token, err := svc.Signup("alice@acme.com", "hunter22", 1, "")
	require.NoError(t, err)
	assert.Equal(t, "employee", user.Role, "empty role defaults to employee")
	assert.NotEqual(t, "hunter22", user.HashedPassword)
	assert.NotEmpty(t, token)

	_, loginToken, err := svc.Login("alice@acme.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testJWTConfig(), testLogger())
	_, _, err := svc.Signup("bob@acme.com", "correct", 1, "vendor")
	require.NoError(t, err)

	_, _, err = svc.Login("bob@acme.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testJWTConfig(), testLogger())

	_, _, err := svc.Login("ghost@acme.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenClaims(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testJWTConfig(), testLogger())

	_, tokenString, err := svc.Signup("carol@acme.com", "secret1", 42, "admin")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "carol@acme.com", claims["sub"])
	assert.Equal(t, float64(42), claims["tenant_id"])
	assert.Equal(t, "admin", claims["role"])
}
