package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/matheuseschaves/supermarket-tracker/internal/apierror"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchasesHandler struct{ svc service.PurchaseService }

func NewPurchasesHandler(svc service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// Registrar POST /v1/purchases
func (h *PurchasesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/purchases?produto=&supermercado=&limit=
func (h *PurchasesHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetros inválidos: "+err.Error()))
		return
	}
	resp, err := h.svc.Consultar(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recentes GET /v1/purchases/recent
func (h *PurchasesHandler) Recentes(c *gin.Context) {
	resp, err := h.svc.Recentes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estatisticas GET /v1/stats?produto=
func (h *PurchasesHandler) Estatisticas(c *gin.Context) {
	resp, err := h.svc.Estatisticas(c.Request.Context(), c.Query("produto"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historico GET /v1/history?produto=
func (h *PurchasesHandler) Historico(c *gin.Context) {
	resp, err := h.svc.Historico(c.Request.Context(), c.Query("produto"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Grafico GET /v1/chart?produto=
// Renders the price history as a one-page PDF.
func (h *PurchasesHandler) Grafico(c *gin.Context) {
	hist, err := h.svc.Historico(c.Request.Context(), c.Query("produto"))
	if err != nil {
		writeError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := infra.RenderPriceChart(&buf, hist.Produto, hist.Data); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="grafico_%s.pdf"`, hist.Produto))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Pagadores GET /v1/payers
func (h *PurchasesHandler) Pagadores(c *gin.Context) {
	resp, err := h.svc.Pagadores(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
