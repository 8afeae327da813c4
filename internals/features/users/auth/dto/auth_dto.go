// file: internals/features/users/auth/dto/auth_dto.go
package dto

import "feeportal_backend/internals/features/users/auth/model"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

func NewLoginResponse(token string, u *model.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User:  LoginUser{ID: u.ID, Name: u.Name},
	}
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
