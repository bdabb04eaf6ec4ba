package produtoservice

import (
	"context"
	"errors"

	"catalogo/internal/domain"
	apperror "catalogo/internal/errors"
	"catalogo/internal/pkg/logger"
)

// ProdutoRepository define o contrato que este Serviço espera da camada de Persistência.
type ProdutoRepository interface {
	Insert(ctx context.Context, produto *domain.Produto) error
	Update(ctx context.Context, produto *domain.Produto) error
	Delete(ctx context.Context, id uint) error
	SelectByID(ctx context.Context, id uint) (domain.Produto, error)
	SelectAll(ctx context.Context) ([]domain.Produto, error)
}

// Validator valida o candidato antes da persistência.
type Validator interface {
	Validate(produto *domain.Produto) error
}

// Service orquestra validação e repositório para o Produto.
type Service struct {
	repo      ProdutoRepository
	validator Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProdutoRepository, validator Validator, logger logger.Logger) *Service {
	return &Service{repo: repo, validator: validator, logger: logger}
}

// CreateProduto valida, insere e devolve o identificador atribuído.
func (s *Service) CreateProduto(ctx context.Context, produto *domain.Produto) (uint, error) {
	if err := s.validator.Validate(produto); err != nil {
		s.logger.Warn("Produto rejeitado na validação.", map[string]interface{}{"error": err.Error()})
		return 0, err
	}

	// O identificador é sempre atribuído pelo banco.
	produto.ID = 0
	if err := s.repo.Insert(ctx, produto); err != nil {
		return 0, s.translate("Falha interna ao criar produto.", err)
	}

	s.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": produto.ID, "sku": produto.Sku})
	return produto.ID, nil
}

// UpdateProduto valida e substitui o registro inteiro.
func (s *Service) UpdateProduto(ctx context.Context, produto *domain.Produto) (domain.Produto, error) {
	if err := s.validator.Validate(produto); err != nil {
		s.logger.Warn("Produto rejeitado na validação.", map[string]interface{}{"error": err.Error()})
		return domain.Produto{}, err
	}
	if produto.ID == 0 {
		return domain.Produto{}, apperror.NewArgumentError("O ID do produto é obrigatório para atualização.")
	}

	if err := s.repo.Update(ctx, produto); err != nil {
		return domain.Produto{}, s.translate("Falha interna ao atualizar produto.", err)
	}

	s.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": produto.ID})
	return *produto, nil
}

// DeleteProduto remove o produto pelo ID.
func (s *Service) DeleteProduto(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate("Falha interna ao deletar produto.", err)
	}

	s.logger.Info("Produto deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// GetProdutoByID busca um produto pelo ID.
func (s *Service) GetProdutoByID(ctx context.Context, id uint) (domain.Produto, error) {
	produto, err := s.repo.SelectByID(ctx, id)
	if err != nil {
		return domain.Produto{}, s.translate("Falha interna ao buscar produto.", err)
	}
	return produto, nil
}

// ListProdutos devolve todos os produtos.
func (s *Service) ListProdutos(ctx context.Context) ([]domain.Produto, error) {
	produtos, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, s.translate("Falha interna ao buscar produtos.", err)
	}

	s.logger.Debug("Produtos listados.", map[string]interface{}{"count": len(produtos)})
	return produtos, nil
}

// translate preserva erros já tipados e encapsula os demais como InternalError.
func (s *Service) translate(msg string, err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		if !apperror.IsNotFound(err) {
			s.logger.Error(msg, err)
		}
		return err
	}
	s.logger.Error(msg, err)
	return apperror.NewInternalError(msg, err)
}
