package models

// Category is a read-only listing category. The client fetches the full
// set once per session and never mutates it.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
