package dto

import "github.com/BruksfildServices01/banquet-admin/internal/models"

type VenueDTO struct {
	models.Venue
	Availability       string `json:"availability"`
	ManualAvailability string `json:"manual_availability"`
}

type VenueAvailabilityDTO struct {
	VenueID      uint               `json:"venue_id"`
	From         string             `json:"from"`
	To           string             `json:"to"`
	Availability string             `json:"availability"`
	Conflicts    []CalendarEntryDTO `json:"conflicts"`
}
