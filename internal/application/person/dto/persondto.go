package dto

import "larder/internal/domain/person"

// CreatePersonRequest carries a validated create payload. PortionFactor is
// already defaulted when absent.
type CreatePersonRequest struct {
	Name          string
	PortionFactor float64
}

// PersonResponse represents a household member in API responses. Creation
// timestamps and the disliked ingredient list are internal and not exposed.
type PersonResponse struct {
	ID            string  `json:"id"`
	HouseholdID   string  `json:"householdId"`
	Name          string  `json:"name"`
	PortionFactor float64 `json:"portionFactor"`
}

// ListPeopleResponse wraps a household's members.
type ListPeopleResponse struct {
	HouseholdID string           `json:"householdId"`
	People      []PersonResponse `json:"people"`
}

// FromPerson builds the wire representation of a person.
func FromPerson(p *person.Person, householdSID string) PersonResponse {
	return PersonResponse{
		ID:            p.SID(),
		HouseholdID:   householdSID,
		Name:          p.Name(),
		PortionFactor: p.PortionFactor(),
	}
}

// FromPeople builds the wire representation of a member list.
func FromPeople(people []*person.Person, householdSID string) []PersonResponse {
	result := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		result = append(result, FromPerson(p, householdSID))
	}
	return result
}
