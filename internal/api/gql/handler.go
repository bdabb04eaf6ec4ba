package gql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"catalogo/internal/domain"
	"catalogo/internal/pkg/logger"
)

// Request é o corpo aceito em POST /api/graphql.
type Request struct {
	OperationName string                 `json:"operationName"`
	NamedQuery    string                 `json:"namedQuery"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executa consultas contra o schema.
type Handler struct {
	Schema graphql.Schema
	Logger logger.Logger
}

// NewHandler cria o Handler GraphQL.
func NewHandler(schema graphql.Schema, log logger.Logger) *Handler {
	return &Handler{Schema: schema, Logger: log}
}

// ServeHTTP lida com a requisição POST /api/graphql.
// @Summary Executa uma consulta GraphQL
// @Description Campo disponível: produtos { id sku codigo name precoCompra precoVenda }.
// @Tags graphql
// @Accept json
// @Produce json
// @Param query body Request true "Consulta GraphQL"
// @Success 200 {object} map[string]interface{} "Resultado GraphQL (data, errors)"
// @Failure 400 {object} domain.ErrorResponse "Corpo inválido"
// @Router /graphql [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(domain.ErrorResponse{
			Code:     http.StatusBadRequest,
			Category: "VALIDATION_ERROR",
			Message:  "Corpo GraphQL inválido: informe ao menos \"query\".",
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.Schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})
	if result.HasErrors() {
		h.Logger.Debug("Consulta GraphQL com erros.", map[string]interface{}{"errors": len(result.Errors)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("Falha ao codificar resultado GraphQL", err)
	}
}
