package gql_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"catalogo/internal/api/gql"
	"catalogo/internal/domain"
	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/testdb"
)

type response struct {
	Data struct {
		Produtos []map[string]interface{} `json:"produtos"`
	} `json:"data"`
	Errors []map[string]interface{} `json:"errors"`
}

func newHandler(t *testing.T) (*gql.Handler, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	schema, err := gql.NewSchema(db)
	require.NoError(t, err)
	return gql.NewHandler(schema, logger.Nop()), db
}

func query(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/graphql", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestProdutos_BypassesValidation(t *testing.T) {
	h, db := newHandler(t)

	require.NoError(t, db.Create(&domain.Produto{Name: "Widget", Codigo: "W1", Sku: "SKU1", PrecoVenda: 9.99}).Error)
	// Preço negativo e nome em branco seriam rejeitados pelo validador da API REST.
	require.NoError(t, db.Create(&domain.Produto{Name: " ", Codigo: "X", Sku: "SKU2", PrecoVenda: -5}).Error)

	rec := query(t, h, `{"query":"{ produtos { sku name } }"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Errors)
	assert.ElementsMatch(t, []map[string]interface{}{
		{"sku": "SKU1", "name": "Widget"},
		{"sku": "SKU2", "name": " "},
	}, resp.Data.Produtos)
}

func TestProdutos_AllFields(t *testing.T) {
	h, db := newHandler(t)
	p := domain.Produto{Name: "Widget", Codigo: "W1", Sku: "SKU1", PrecoVenda: 9.99, PrecoCompra: 5}
	require.NoError(t, db.Create(&p).Error)

	rec := query(t, h, `{"query":"query Lista { produtos { id sku codigo name precoCompra precoVenda } }","operationName":"Lista"}`)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Produtos, 1)
	assert.Equal(t, map[string]interface{}{
		"id":          float64(p.ID),
		"sku":         "SKU1",
		"codigo":      "W1",
		"name":        "Widget",
		"precoCompra": 5.0,
		"precoVenda":  9.99,
	}, resp.Data.Produtos[0])
}

func TestProdutos_UnknownFieldAndBadBody(t *testing.T) {
	h, _ := newHandler(t)

	rec := query(t, h, `{"query":"{ produtos { preco } }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Errors)

	assert.Equal(t, http.StatusBadRequest, query(t, h, `{"query":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, query(t, h, `not json`).Code)
}

func TestProdutos_NoMutations(t *testing.T) {
	h, _ := newHandler(t)

	rec := query(t, h, `{"query":"mutation { produtos { sku } }"}`)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Errors)
}
