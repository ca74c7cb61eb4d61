package dto

import "github.com/BruksfildServices01/banquet-admin/internal/models"

// InvoiceDTO reports the effective status; the stored value stays visible
// as stored_status.
type InvoiceDTO struct {
	models.Invoice
	Status       string `json:"status"`
	StoredStatus string `json:"stored_status"`
}
