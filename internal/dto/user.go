// Package dto defines the request and response payloads of the HTTP API.
package dto

type UserRegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type UserLoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type UserResponse struct {
	UID   int64  `json:"uid"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}
