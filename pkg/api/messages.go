package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

var validate = validator.New()

// User is the public view of an account.
type User struct {
	ID    string      `json:"id"`
	Type  models.Role `json:"type"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

func UserFromModel(u *models.User) *User {
	return &User{ID: u.ID, Type: u.Type, Name: u.Name, Email: u.Email}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validate.Struct(r) }

type LoginResponse struct {
	JWT  string `json:"jwt"`
	User *User  `json:"user"`
}

type CreateUserRequest struct {
	Type     models.Role `json:"type" validate:"required,oneof=Employee Admin"`
	Name     string      `json:"name"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
}

func (r *CreateUserRequest) Validate() error { return validate.Struct(r) }

// CreateUserResponse carries a token so a new account can be used without
// logging in again.
type CreateUserResponse struct {
	JWT  string `json:"jwt,omitempty"`
	User *User  `json:"user"`
}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []models.Bill `json:"bills"`
}

// CreateBillRequest uploads a receipt. It creates a pending bill owned by
// Email whose ID is the returned key.
type CreateBillRequest struct {
	File     []byte `json:"file" validate:"required,min=1"`
	FileName string `json:"fileName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func (r *CreateBillRequest) Validate() error { return validate.Struct(r) }

type CreateBillResponse struct {
	FilePath string `json:"filePath"`
	FileURL  string `json:"fileUrl"`
	Key      string `json:"key"`
}

// UpdateBillRequest replaces the bill stored under Key (the selector).
type UpdateBillRequest struct {
	Key  string      `json:"selector" validate:"required"`
	Bill models.Bill `json:"data"`
}

func (r *UpdateBillRequest) Validate() error { return validate.Struct(r) }

type UpdateBillResponse struct {
	Bill models.Bill `json:"bill"`
}
