package produto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"catalogo/internal/domain"
	apperror "catalogo/internal/errors"
	"catalogo/internal/pkg/logger"
)

// ProdutoService define o contrato que o Handler espera da camada de Serviço.
type ProdutoService interface {
	CreateProduto(ctx context.Context, produto *domain.Produto) (uint, error)
	UpdateProduto(ctx context.Context, produto *domain.Produto) (domain.Produto, error)
	DeleteProduto(ctx context.Context, id uint) error
	GetProdutoByID(ctx context.Context, id uint) (domain.Produto, error)
	ListProdutos(ctx context.Context) ([]domain.Produto, error)
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProdutoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProdutoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)
	h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.FieldErrors(err),
	})
}

// decodeProduto lê o corpo da requisição. Corpo vazio ou "null" resulta em entidade nula.
func decodeProduto(r *http.Request) (*domain.Produto, error) {
	var produto *domain.Produto
	if err := json.NewDecoder(r.Body).Decode(&produto); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return produto, nil
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, apperror.NewArgumentError(fmt.Sprintf("ID de produto inválido: %q", raw))
	}
	return uint(id), nil
}

// Post lida com a requisição POST /api/produto.
// @Summary Cria um produto
// @Description Valida e insere um produto. Devolve o ID atribuído pelo banco.
// @Tags produto
// @Accept json
// @Produce json
// @Param produto body domain.Produto true "Produto (sem id)"
// @Success 200 {integer} int "ID do produto criado"
// @Failure 400 {object} domain.ErrorResponse "Falha de validação ou erro não classificado"
// @Failure 404 {object} domain.ErrorResponse "Produto nulo"
// @Security BearerAuth
// @Router /produto [post]
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	produto, err := decodeProduto(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	id, err := h.Service.CreateProduto(r.Context(), produto)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, id, nil, http.StatusOK)
}

// Put lida com a requisição PUT /api/produto.
// @Summary Atualiza um produto
// @Description Substitui o registro inteiro do produto identificado pelo id do corpo.
// @Tags produto
// @Accept json
// @Produce json
// @Param produto body domain.Produto true "Produto (com id)"
// @Success 200 {object} domain.Produto "Produto atualizado"
// @Failure 400 {object} domain.ErrorResponse "Falha de validação ou erro não classificado"
// @Failure 404 {object} domain.ErrorResponse "Produto nulo, sem id ou inexistente"
// @Security BearerAuth
// @Router /produto [put]
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	produto, err := decodeProduto(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	updated, err := h.Service.UpdateProduto(r.Context(), produto)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}

// Delete lida com a requisição DELETE /api/produto/{id}.
// @Summary Remove um produto
// @Tags produto
// @Param id path int true "ID do produto"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro não classificado"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security BearerAuth
// @Router /produto/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
		return
	}

	err = h.Service.DeleteProduto(r.Context(), id)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// List lida com a requisição GET /api/produto.
// @Summary Lista os produtos
// @Tags produto
// @Produce json
// @Success 200 {array} domain.Produto "Lista de produtos"
// @Failure 400 {object} domain.ErrorResponse "Erro não classificado"
// @Router /produto [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Service.ListProdutos(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, produtos, nil, http.StatusOK)
}

// Get lida com a requisição GET /api/produto/{id}.
// @Summary Obtém um produto por ID
// @Tags produto
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} domain.Produto "Produto encontrado"
// @Failure 400 {object} domain.ErrorResponse "Erro não classificado"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /produto/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	produto, err := h.Service.GetProdutoByID(r.Context(), id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, produto, nil, http.StatusOK)
}

// RegisterRoutes registra as rotas REST do produto no subrouter informado.
// write envolve as rotas de escrita (autenticação, quando habilitada).
func (h *Handler) RegisterRoutes(api *mux.Router, write func(http.Handler) http.Handler) {
	api.Handle("/produto", write(http.HandlerFunc(h.Post))).Methods(http.MethodPost)
	api.Handle("/produto", write(http.HandlerFunc(h.Put))).Methods(http.MethodPut)
	api.Handle("/produto/{id:[0-9]+}", write(http.HandlerFunc(h.Delete))).Methods(http.MethodDelete)
	api.HandleFunc("/produto", h.List).Methods(http.MethodGet)
	api.HandleFunc("/produto/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
}
