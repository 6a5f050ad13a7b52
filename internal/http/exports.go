package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/entities"
)

type ExportsController struct {
	exporter ShippingExport
	log      *zap.Logger
}

func NewExportsController(exporter ShippingExport, log *zap.Logger) *ExportsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportsController{exporter: exporter, log: log}
}

// Shipping handles GET /api/exports/shipping.csv?status=processing
// The export is buffered so a failure mid-way still answers with an error
// status instead of a truncated file.
func (ec *ExportsController) Shipping(c *gin.Context) {
	status, ok := entities.ParseOrderStatus(c.DefaultQuery("status", string(entities.OrderStatusProcessing)))
	if !ok {
		respondBadRequest(c, "invalid status")
		return
	}

	var buf bytes.Buffer
	if _, err := ec.exporter.Export(c.Request.Context(), &buf, status); err != nil {
		respondInternalError(c, ec.log, err, "shipping export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shipping-`+string(status)+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
