package services

import (
	"testing"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"github.com/stretchr/testify/assert"
)

func newUserService(t *testing.T) (*UserService, *repository.UserRepository) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewUserService(repo), repo
}

func TestUserCreateAppliesDefaultsAndIsReadable(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Create(models.UserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Phone:    "555-0101",
	})
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "password123", user.Password)

	got, err := svc.GetByID(int(user.ID))
	assert.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "555-0101", got.Phone)
	assert.Equal(t, models.RoleCustomer, got.Role)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(models.UserRequest{Name: "A", Email: "dup@example.com", Password: "password123"})
	assert.NoError(t, err)

	_, err = svc.Create(models.UserRequest{Name: "B", Email: "dup@example.com", Password: "password123"})
	assert.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Equal(t, "Email already exists", err.Error())
}

func TestUserCreateValidation(t *testing.T) {
	svc, _ := newUserService(t)

	cases := []struct {
		name    string
		req     models.UserRequest
		message string
	}{
		{"missing name", models.UserRequest{Email: "a@b.com", Password: "password123"}, "Name is required"},
		{"bad email", models.UserRequest{Name: "A", Email: "not-an-email", Password: "password123"}, "Valid email is required"},
		{"missing password", models.UserRequest{Name: "A", Email: "a@b.com"}, "Password is required"},
		{"short password", models.UserRequest{Name: "A", Email: "a@b.com", Password: "abc"}, "Password must be at least 6 characters"},
		{"bad role", models.UserRequest{Name: "A", Email: "a@b.com", Password: "password123", Role: "chef"}, "Invalid role. Must be: customer, admin, or staff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.req)
			assert.Error(t, err)
			assert.Equal(t, utils.KindValidation, utils.KindOf(err))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestUserAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(models.UserRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	assert.NoError(t, err)

	// Unknown email and wrong password must fail with the same message.
	_, unknownErr := svc.Authenticate("nobody@example.com", "whatever")
	assert.Equal(t, utils.KindAuth, utils.KindOf(unknownErr))

	_, wrongErr := svc.Authenticate("alice@example.com", "wrong-password")
	assert.Equal(t, utils.KindAuth, utils.KindOf(wrongErr))

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	user, err := svc.Authenticate("alice@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.Password)
}

func TestUserPartialUpdateLeavesOtherFields(t *testing.T) {
	svc, repo := newUserService(t)

	created, err := svc.Create(models.UserRequest{Name: "Alice", Email: "alice@example.com", Password: "password123", Phone: "555-0101"})
	assert.NoError(t, err)
	originalHash := created.Password

	phone := "555-0202"
	updated, err := svc.Update(int(created.ID), models.UserPatch{Phone: &phone})
	assert.NoError(t, err)
	assert.Equal(t, "555-0202", updated.Phone)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	// No new plaintext supplied, so the stored hash must be untouched.
	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, originalHash, stored.Password)
}

func TestUserUpdateEmptyPasswordSkipsRehash(t *testing.T) {
	svc, repo := newUserService(t)

	created, err := svc.Create(models.UserRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	assert.NoError(t, err)
	originalHash := created.Password

	empty := ""
	_, err = svc.Update(int(created.ID), models.UserPatch{Password: &empty})
	assert.NoError(t, err)

	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, originalHash, stored.Password)
}

func TestUserDeleteMissingFails(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.Delete(999)
	assert.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestUserGetByEmailRoutesAndValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	seedUser(t, db, "known@example.com")

	user, err := svc.GetByEmail("known@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "known@example.com", user.Email)

	_, err = svc.GetByEmail("missing@example.com")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = svc.GetByEmail("not-an-email")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
