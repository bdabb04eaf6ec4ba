package validator

import (
	"math"
	"strings"

	"catalogo/internal/domain"
	apperror "catalogo/internal/errors"
)

// Rule é um par predicado + mensagem avaliado contra o candidato.
type Rule[T any] struct {
	Field   string
	Valid   func(T) bool
	Message string
}

// Validator avalia as regras em ordem e coleta todas as falhas.
// Apenas a checagem de entidade nula interrompe a avaliação.
type Validator[T any] struct {
	nullMessage string
	rules       []Rule[T]
}

// New cria um Validator com a mensagem usada quando o candidato é nulo.
func New[T any](nullMessage string, rules ...Rule[T]) *Validator[T] {
	return &Validator[T]{nullMessage: nullMessage, rules: rules}
}

// Validate devolve nil, um ArgumentError (candidato nulo) ou um ValidationError com todas as mensagens.
func (v *Validator[T]) Validate(candidate *T) error {
	if candidate == nil {
		return apperror.NewArgumentError(v.nullMessage)
	}

	var failures []string
	for _, rule := range v.rules {
		if !rule.Valid(*candidate) {
			failures = append(failures, rule.Message)
		}
	}
	if len(failures) > 0 {
		return apperror.NewFieldValidationError(failures)
	}
	return nil
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }

// NewProdutoValidator monta a cadeia de regras do Produto.
func NewProdutoValidator() *Validator[domain.Produto] {
	return New("Can't found the object.",
		Rule[domain.Produto]{
			Field:   "name",
			Valid:   func(p domain.Produto) bool { return notBlank(p.Name) },
			Message: "Is necessary to inform the Name.",
		},
		Rule[domain.Produto]{
			Field:   "codigo",
			Valid:   func(p domain.Produto) bool { return notBlank(p.Codigo) },
			Message: "Is necessary to inform the Codigo.",
		},
		Rule[domain.Produto]{
			Field: "precoVenda",
			Valid: func(p domain.Produto) bool {
				return !math.IsNaN(p.PrecoVenda) && !math.IsInf(p.PrecoVenda, 0)
			},
			Message: "Is necessary to inform the Sell Price.",
		},
		Rule[domain.Produto]{
			Field:   "precoVenda",
			Valid:   func(p domain.Produto) bool { return p.PrecoVenda >= 0 },
			Message: "Sell price must be greater or equal to zero.",
		},
		Rule[domain.Produto]{
			Field:   "sku",
			Valid:   func(p domain.Produto) bool { return notBlank(p.Sku) },
			Message: "Is necessary to inform the Sku.",
		},
	)
}
