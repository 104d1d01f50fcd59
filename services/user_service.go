package services

import (
	"errors"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAll() ([]models.User, error) {
	return s.users.GetAll()
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid user ID")
	}
	user, err := s.users.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("User not found")
	}
	return user, err
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	if !validEmail(email) {
		return nil, utils.ValidationErr("Invalid email format")
	}
	user, err := s.users.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("User not found")
	}
	return user, err
}

func (s *UserService) GetByRole(role string) ([]models.User, error) {
	if !statusIn(role, models.UserRoles) {
		return nil, utils.ValidationErr("Invalid role. Must be: customer, admin, or staff")
	}
	return s.users.GetByRole(role)
}

func (s *UserService) Create(req models.UserRequest) (*models.User, error) {
	if req.Name == "" {
		return nil, utils.ValidationErr("Name is required")
	}
	if req.Email == "" || !validEmail(req.Email) {
		return nil, utils.ValidationErr("Valid email is required")
	}
	if req.Password == "" {
		return nil, utils.ValidationErr("Password is required")
	}
	if len(req.Password) < 6 {
		return nil, utils.ValidationErr("Password must be at least 6 characters")
	}
	if req.Role != "" && !statusIn(req.Role, models.UserRoles) {
		return nil, utils.ValidationErr("Invalid role. Must be: customer, admin, or staff")
	}

	// Pre-check only; the unique index still backstops a race.
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ConflictErr("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Role:     role,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial patch. The password is rehashed only when a new
// non-empty plaintext is supplied.
func (s *UserService) Update(id int, patch models.UserPatch) (*models.User, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid user ID")
	}
	if _, err := s.users.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("User not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		if !validEmail(*patch.Email) {
			return nil, utils.ValidationErr("Invalid email format")
		}
		fields["email"] = *patch.Email
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Role != nil {
		if !statusIn(*patch.Role, models.UserRoles) {
			return nil, utils.ValidationErr("Invalid role. Must be: customer, admin, or staff")
		}
		fields["role"] = *patch.Role
	}
	if patch.Password != nil && *patch.Password != "" {
		if len(*patch.Password) < 6 {
			return nil, utils.ValidationErr("Password must be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashed)
	}

	if len(fields) > 0 {
		if err := s.users.Update(uint(id), fields); err != nil {
			return nil, err
		}
	}
	return s.users.GetByID(uint(id))
}

func (s *UserService) Delete(id int) error {
	if id <= 0 {
		return utils.ValidationErr("Invalid user ID")
	}
	removed, err := s.users.Delete(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return utils.NotFoundErr("User not found")
	}
	return nil
}

// Authenticate verifies credentials. Unknown email and wrong password fail
// with the same message so the response does not reveal which was wrong.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	if !validEmail(email) {
		return nil, utils.ValidationErr("Invalid email format")
	}
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.AuthErr("Invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, utils.AuthErr("Invalid credentials")
	}
	user.Password = ""
	return user, nil
}
