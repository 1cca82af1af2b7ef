// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/allisson/mediavault/internal/user/domain"
)

// ToRegisterUserInput converts a RegisterUserRequest DTO to the domain input.
func ToRegisterUserInput(req RegisterUserRequest) domain.RegisterUserInput {
	return domain.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToUserResponse converts a domain User to a UserResponse. The password hash is never exposed.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
