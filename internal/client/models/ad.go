package models

import (
	"fmt"
	"time"

	"github.com/akulinin/campusmarket/internal/common"
)

// Condition grades the physical state of a listed item.
type Condition string

const (
	ConditionNew       Condition = "New"
	ConditionLikeNew   Condition = "Like New"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// Conditions lists every valid condition value in display order.
func Conditions() []Condition {
	return []Condition{
		ConditionNew, ConditionLikeNew, ConditionExcellent,
		ConditionGood, ConditionFair, ConditionPoor,
	}
}

// Valid reports whether c is one of the known condition grades.
func (c Condition) Valid() bool {
	for _, k := range Conditions() {
		if c == k {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of an ad.
type Status string

const (
	StatusActive  Status = "active"
	StatusSold    Status = "sold"
	StatusPending Status = "pending"
)

// Seller is the embedded seller reference carried by every ad.
type Seller struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Ad is a single marketplace listing as returned by the API.
type Ad struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Condition   Condition `json:"condition"`
	Images      []string  `json:"images"`
	Seller      Seller    `json:"seller"`
	Location    string    `json:"location"`
	DatePosted  time.Time `json:"datePosted"`
	Status      Status    `json:"status"`
	Views       int       `json:"views"`
	College     string    `json:"college"`
}

// OwnedBy reports whether userID matches the ad's seller. This is a UI
// affordance only; real authorization is enforced server-side.
func (a Ad) OwnedBy(userID string) bool {
	return userID != "" && a.Seller.ID == userID
}

// NewAd is the create form: text fields plus local paths of images to
// upload. It is submitted as a multipart request.
type NewAd struct {
	Title       string
	Description string
	Price       float64
	CategoryID  string
	Condition   Condition
	Location    string
	College     string
	ImagePaths  []string
}

// Validate checks required fields before the multipart request is built.
// Image count/size/type rules are enforced separately by the images package.
func (n NewAd) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if n.Description == "" {
		return fmt.Errorf("%w: description is required", common.ErrValidation)
	}
	if n.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrValidation)
	}
	if n.CategoryID == "" {
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if !n.Condition.Valid() {
		return fmt.Errorf("%w: unknown condition %q", common.ErrValidation, n.Condition)
	}
	if n.Location == "" {
		return fmt.Errorf("%w: location is required", common.ErrValidation)
	}
	return nil
}

// AdPatch is a partial update. Nil fields are omitted from the request
// body, so the server only touches what the seller actually changed.
type AdPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Condition   *Condition `json:"condition,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Status      *Status    `json:"status,omitempty"`
}

// Empty reports whether the patch carries no changes at all.
func (p AdPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Condition == nil && p.Location == nil && p.Status == nil
}
