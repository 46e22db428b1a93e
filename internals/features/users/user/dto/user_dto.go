// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/users/user/model"
)

/* ==============================
   UPDATE (PATCH /users/:id) — coordinator, partial
============================== */

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=student teacher coordinator"`
}

func (r *UpdateUserRequest) ApplyTo(u *model.UserModel) {
	if r.UserName != nil {
		u.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.FullName != nil {
		u.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
}

/* ==============================
   RESPONSE
============================== */

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
