package service

import (
	"context"
	"fmt"

	"collection-catalog/internal/crypto"
	"collection-catalog/internal/errs"
	"collection-catalog/internal/model"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/validation"
)

// defaultRole is assigned when a create payload omits the role.
const defaultRole = "user"

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,max=10"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

// UpdateUserRequest is the sparse payload for PUT /users/:id. Every
// field is optional; nil means "leave the stored value untouched".
type UpdateUserRequest struct {
	ID       int64   `param:"id" json:"-"`
	Name     *string `json:"name" validate:"omitempty,max=50"`
	Username *string `json:"username" validate:"omitempty,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password"`
	Role     *string `json:"role" validate:"omitempty,max=10"`
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

// UserService implements the CRUD protocol for users.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found")
	}
	return user, nil
}

// Create checks username and email availability as two independent
// conditions, hashes the password, and persists the row.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	taken, err := s.users.UsernameTaken(ctx, req.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBadRequestError("Username already taken")
	}

	taken, err = s.users.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBadRequestError("Email already registered")
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = defaultRole
	}

	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a presence-aware patch: uniqueness is re-checked only
// when the username or email is present and actually changing, always
// excluding the row's own id.
func (s *UserService) Update(ctx context.Context, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found")
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.users.UsernameTaken(ctx, *req.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBadRequestError("Username already taken by another user")
		}
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.users.EmailTaken(ctx, *req.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBadRequestError("Email already registered by another user")
		}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := crypto.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = hashed
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*MessageResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "User deleted successfully"}, nil
}
