package dto

// HouseholdResponse represents the household in API responses. Only the
// public ID and name are exposed.
type HouseholdResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
