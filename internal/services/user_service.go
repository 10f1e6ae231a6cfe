package services

import (
	"strings"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/models"
	"Shelved/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type UserService interface {
	ListPublic() ([]dto.UserPublic, error)
	ListAdmin() ([]dto.UserAdminView, error)
	CreateUser(input dto.UserCreate) (*dto.UserAdminView, error)
	UpdateUser(id uint, input dto.UserUpdate) error
	DeleteUser(id uint, actor *Claims) error
	ResetPassword(id uint, password string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepository}
}

func (s *userServiceImpl) ListPublic() ([]dto.UserPublic, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserPublic, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserPublic{Email: u.Email, Role: u.Role})
	}
	return out, nil
}

func (s *userServiceImpl) ListAdmin() ([]dto.UserAdminView, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserAdminView, 0, len(users))
	for _, u := range users {
		out = append(out, adminView(&u))
	}
	return out, nil
}

func (s *userServiceImpl) CreateUser(input dto.UserCreate) (*dto.UserAdminView, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apierror.BadRequest("valid email is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apierror.BadRequest("name is required")
	}
	if !models.ValidRole(input.Role) {
		return nil, apierror.BadRequest("role must be 'admin' or 'user'")
	}
	if len(strings.TrimSpace(input.Password)) < 8 {
		return nil, apierror.BadRequest("password too short (min 8 chars)")
	}
	if input.MaxClearanceLevel != nil && (*input.MaxClearanceLevel < 1 || *input.MaxClearanceLevel > 4) {
		return nil, apierror.BadRequest("max_clearance_level must be 1..4")
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflict("email already exists")
	}

	hash, err := HashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:             email,
		Name:              name,
		Role:              input.Role,
		PasswordHash:      hash,
		MaxClearanceLevel: input.MaxClearanceLevel,
		Active:            1,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	view := adminView(user)
	return &view, nil
}

func (s *userServiceImpl) UpdateUser(id uint, input dto.UserUpdate) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return apierror.NotFound("user not found")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apierror.BadRequest("name cannot be empty")
		}
		user.Name = name
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			return apierror.BadRequest("role must be 'admin' or 'user'")
		}
		user.Role = *input.Role
	}
	if input.ClearMaxClearance {
		user.MaxClearanceLevel = nil
	} else if input.MaxClearanceLevel != nil {
		if *input.MaxClearanceLevel < 1 || *input.MaxClearanceLevel > 4 {
			return apierror.BadRequest("max_clearance_level must be 1..4")
		}
		user.MaxClearanceLevel = input.MaxClearanceLevel
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != nil && *input.Password != "" {
		if len(strings.TrimSpace(*input.Password)) < 8 {
			return apierror.BadRequest("password too short (min 8 chars)")
		}
		hash, err := HashPassword(strings.TrimSpace(*input.Password))
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return s.userRepo.Update(user)
}

func (s *userServiceImpl) DeleteUser(id uint, actor *Claims) error {
	if actor != nil && actor.UserID == id {
		return apierror.BadRequest("cannot delete yourself")
	}
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return apierror.NotFound("user not found")
	}
	return s.userRepo.Delete(id)
}

func (s *userServiceImpl) ResetPassword(id uint, password string) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return apierror.NotFound("user not found")
	}
	if len(strings.TrimSpace(password)) < 8 {
		return apierror.BadRequest("password too short (min 8 chars)")
	}
	hash, err := HashPassword(strings.TrimSpace(password))
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.userRepo.Update(user)
}

func adminView(u *models.User) dto.UserAdminView {
	return dto.UserAdminView{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role,
		MaxClearanceLevel: u.MaxClearanceLevel,
		Active:            u.Active,
		CreatedAt:         u.CreatedAt,
	}
}
