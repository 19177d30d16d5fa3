package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{&service.ValidationError{Field: "preco", Message: "inválido"}, http.StatusUnprocessableEntity},
		{&service.ProductNotFoundError{Nome: "Leite"}, http.StatusNotFound},
		{service.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", &service.PurchasesExistError{ProdutoID: 1, Count: 2}), http.StatusConflict},
		{service.ErrDuplicateCategory, http.StatusConflict},
		{infra.ErrNoChartData, http.StatusNotFound},
		{infra.ErrNoDatabase, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeError(c, tc.err)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}

func TestWriteErrorDefersUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeError(c, errors.New("database is locked"))

	assert.Len(t, c.Errors, 1)
	assert.False(t, c.Writer.Written())
}
