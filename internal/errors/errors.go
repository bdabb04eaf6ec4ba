package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError é a interface central para todos os erros customizados do catálogo.
// Ela permite que o Handler acesse a Categoria e o status HTTP sem adivinhar a intenção do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
// Fields carrega todas as mensagens coletadas pela cadeia de regras.
type ValidationError struct {
	Msg    string
	Fields []string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError agrupa as falhas por campo em um único erro.
func NewFieldValidationError(fields []string) AppError {
	return &ValidationError{Msg: strings.Join(fields, " "), Fields: fields}
}

// ArgumentError representa uma entidade nula ou um argumento inutilizável.
// É distinto das falhas por campo e é mapeado para 404, como no contrato da API.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string    { return fmt.Sprintf("Argumento inválido: %s", e.Msg) }
func (e *ArgumentError) Category() string { return "INVALID_ARGUMENT" }
func (e *ArgumentError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *ArgumentError) Unwrap() error    { return nil }

// NewArgumentError cria um novo erro de argumento nulo/inválido.
func NewArgumentError(msg string) AppError {
	return &ArgumentError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes ou inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no serviço ou repositório.
// A API devolve 400 com o detalhe do erro: não há distinção entre falha do cliente e do servidor.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Erro Interno: %s", e.Msg)
	}
	return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro interno encapsulando a causa.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helpers ---

// IsNotFound informa se algum erro da cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria e mensagem.
// Erros encapsulados com %w são inspecionados através da cadeia.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: falha não classificada, devolvida com o detalhe bruto.
	return http.StatusBadRequest, "UNKNOWN_ERROR", err.Error()
}

// FieldErrors devolve as mensagens por campo quando o erro é de validação.
func FieldErrors(err error) []string {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
