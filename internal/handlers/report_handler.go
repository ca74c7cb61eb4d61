package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/httpresp"
	ucReport "github.com/BruksfildServices01/banquet-admin/internal/usecase/report"
)

type ReportHandler struct {
	summary *ucReport.GetSummary
}

func NewReportHandler(summary *ucReport.GetSummary) *ReportHandler {
	return &ReportHandler{summary: summary}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}
