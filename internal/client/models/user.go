// Package models defines the marketplace entities exchanged with the
// backend API: users, ads and categories. JSON tags follow the backend's
// wire contract (Mongo-style "_id" identifiers, camelCase fields).
package models

import (
	"fmt"
	"time"

	"github.com/akulinin/campusmarket/internal/common"
)

// User is the authenticated identity returned by login/register.
// Token is the bearer credential for subsequent API calls; a user is
// considered authenticated exactly when Token is non-empty.
type User struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	College    string    `json:"college"`
	Major      string    `json:"major"`
	Year       string    `json:"year"`
	Avatar     string    `json:"avatar,omitempty"`
	JoinDate   time.Time `json:"joinDate"`
	Verified   bool      `json:"verified"`
	Rating     float64   `json:"rating"`
	TotalSales int       `json:"totalSales"`
	Location   string    `json:"location"`
	Token      string    `json:"token"`
}

// RegisterRequest carries the account-creation form. Create and update
// flows use distinct types on purpose: their required-field sets differ.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	College  string `json:"college"`
	Major    string `json:"major"`
	Year     string `json:"year"`
	Location string `json:"location"`
}

// Validate checks the registration form before any network call.
// The confirmation is compared here so a typo never reaches the server.
func (r RegisterRequest) Validate(confirmPassword string) error {
	if r.Email == "" || r.Name == "" {
		return fmt.Errorf("%w: email and name are required", common.ErrValidation)
	}
	if len(r.Password) < 6 {
		return common.ErrPasswordTooShort
	}
	if r.Password != confirmPassword {
		return common.ErrPasswordMismatch
	}
	return nil
}
