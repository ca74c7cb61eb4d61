package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/banquet-admin/internal/domain/billing"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/httpresp"
)

// BillingHandler recomputes invoice and deposit figures for the dashboard
// forms without saving anything.
type BillingHandler struct {
	defaultTaxRate float64
}

func NewBillingHandler(defaultTaxRate float64) *BillingHandler {
	return &BillingHandler{defaultTaxRate: defaultTaxRate}
}

type BillingPreviewRequest struct {
	Amount        *float64 `json:"amount" binding:"required"`
	TaxRate       *float64 `json:"tax_rate"`
	DepositAmount *float64 `json:"deposit_amount"`
}

type BillingPreviewResponse struct {
	billing.Financials
	DepositAmount *float64 `json:"deposit_amount,omitempty"`
	Warnings      []string `json:"warnings"`
}

func (h *BillingHandler) Preview(c *gin.Context) {
	var req BillingPreviewRequest
	if !bindJSON(c, &req) {
		return
	}

	fin, err := billing.DeriveWithDefault(*req.Amount, req.TaxRate, h.defaultTaxRate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	res := BillingPreviewResponse{Financials: fin, Warnings: []string{}}

	if req.DepositAmount != nil {
		deposit, warnings, err := billing.CheckDeposit(*req.DepositAmount, fin.TotalAmount)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		res.DepositAmount = &deposit
		res.Warnings = append(res.Warnings, warnings...)
	}

	httpresp.OK(c, res)
}
