package dto

type CalendarEntryDTO struct {
	ID         uint   `json:"id"`
	EventName  string `json:"event_name"`
	VenueID    uint   `json:"venue_id"`
	VenueName  string `json:"venue_name"`
	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`
	StartDay   string `json:"start_day"`
	EndDay     string `json:"end_day"`
	Status     string `json:"status"`
	GuestCount int    `json:"guest_count"`
}
