package handler

import (
	"net/http"
	"strconv"

	"github.com/matheuseschaves/supermarket-tracker/internal/apierror"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Listar GET /v1/products
func (h *ProductsHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Buscar GET /v1/products/search?q=&limit=
func (h *ProductsHandler) Buscar(c *gin.Context) {
	var filter dto.BuscaProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetros inválidos: "+err.Error()))
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter GET /v1/products/:id
func (h *ProductsHandler) Obter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /v1/products
func (h *ProductsHandler) Criar(c *gin.Context) {
	var req dto.SalvarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.ID = nil
	resp, err := h.svc.Salvar(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /v1/products/:id
func (h *ProductsHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SalvarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.ID = &id
	resp, err := h.svc.Salvar(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /v1/products/:id?cascade=true
// Without cascade a product that still has purchases answers 409 with the
// purchase count and nothing is deleted.
func (h *ProductsHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cascade, _ := strconv.ParseBool(c.DefaultQuery("cascade", "false"))
	resp, err := h.svc.Excluir(c.Request.Context(), id, cascade)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ContarCompras GET /v1/products/:id/purchases/count
func (h *ProductsHandler) ContarCompras(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ContarCompras(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
