package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// newInvoiceNumber returns INV-YYYYMMDD-XXXXXXXX.
func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}

func toDTO(inv models.Invoice, today string, loc *time.Location) dto.InvoiceDTO {
	return dto.InvoiceDTO{
		Invoice:      inv,
		Status:       string(domain.EffectiveStatus(&inv, today, loc)),
		StoredStatus: inv.Status,
	}
}
