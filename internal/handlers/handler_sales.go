package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/SscSPs/sales_commissions_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// saleHandler serves the acting person's own sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

func registerSaleRoutes(rg *gin.RouterGroup, ss portssvc.SaleSvcFacade) {
	h := newSaleHandler(ss)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.GET("/export", h.exportSales)
	}
}

// listSales godoc
// @Summary My sales
// @Description Lists the acting person's sales in a day range with the approved commission total. Malformed filters fall back to defaults; a non-numeric idv yields an empty list.
// @Tags sales
// @Produce json
// @Param desde query string false "From day (YYYY-MM-DD), defaults to the first day of the current month"
// @Param hasta query string false "To day (YYYY-MM-DD), defaults to the last day of the current month"
// @Param matricula query string false "Plate contains"
// @Param idv query string false "Exact deal id"
// @Param tipo_venta query string false "Sale type code"
// @Param dni query string false "Buyer tax id contains"
// @Param tipo_cliente query string false "Buyer type code"
// @Param nombre_cliente query string false "Buyer name contains"
// @Param orden query string false "fecha_venta|matricula|idv|nombre_cliente|tipo_venta"
// @Param dir query string false "asc|desc"
// @Success 200 {object} dto.SalesListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, err := h.saleService.ListMySales(c.Request.Context(), actor, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesListResponse(page))
}

// parseIDList reads a comma separated id selection, skipping malformed
// entries. selected is false when raw is blank, meaning no selection at all.
func parseIDList(raw string) (ids []int64, selected bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids, true
}

// exportSales godoc
// @Summary Export my sales
// @Description Exports the acting person's sales resolved like the list, optionally narrowed to an id selection.
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx (default) or csv"
// @Param ids query string false "Comma separated sale ids; a selection without valid ids exports no rows"
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/export [get]
func (h *saleHandler) exportSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	params := c.Request.URL.Query()
	format := export.ParseFormat(params.Get("format"))

	// A selection with no valid id exports nothing rather than the whole range.
	sales := []domain.Sale{}
	ids, selected := parseIDList(params.Get("ids"))
	if !selected || len(ids) > 0 {
		var err error
		sales, err = h.saleService.ExportMySales(c.Request.Context(), actor, params, ids)
		if err != nil {
			respondError(c, err, "Failed to export sales")
			return
		}
	}

	var buf bytes.Buffer
	if err := export.WriteSales(&buf, format, sales); err != nil {
		respondError(c, err, "Failed to export sales")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="mis_ventas.%s"`, format))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
