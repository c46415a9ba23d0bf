// Package models defines data structures for the application.
package models

// User mirrors an AppUser record held by the backend.
type User struct {
	ID          int     `json:"id" example:"7"`
	Name        string  `json:"name" example:"Thandi Mokoena"`
	Email       string  `json:"email" example:"thandi@example.com"`
	Password    string  `json:"-"` // never echoed back to the browser
	PhoneNumber string  `json:"phoneNumber" example:"0821234567"`
	Role        string  `json:"role" example:"disposalMember"`
	Points      int     `json:"points" example:"40"`
	Amount      float64 `json:"amount" example:"0"`
}

// RecordID implements the table record contract.
func (u User) RecordID() int {
	return u.ID
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required" example:"Thandi Mokoena"`
	Email       string `json:"email" binding:"required,email" example:"thandi@example.com"`
	Password    string `json:"password" binding:"required" example:"secret123"`
	PhoneNumber string `json:"phoneNumber" binding:"required" example:"0821234567"`
}

// RegisterResponse confirms a registration.
type RegisterResponse struct {
	Message string `json:"message" example:"Registration successful! You can now log in."`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"thandi@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt int64  `json:"expiresAt" example:"1735689600"`
	Email     string `json:"email" example:"thandi@example.com"`
	Role      string `json:"role" example:"disposalMember"`
	IsAdmin   bool   `json:"isAdmin" example:"false"`
	Redirect  string `json:"redirect" example:"/profile"`
}
