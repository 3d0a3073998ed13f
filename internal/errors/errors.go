package errors

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"

	"github.com/lib/pq"
)

// AppError é a interface central para todos os erros customizados do GoFinanceiro.
// Ela permite que o código externo (Handler) acesse a Categoria, o status HTTP
// e o detalhe bruto vindo do banco de dados.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "CONFLICT")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Details() string  // Mensagem original do driver, quando existir
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg    string
	Fields map[string]string // campo -> regra violada (opcional)
	Err    error
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Details() string  { return detailsOf(e.Err) }
func (e *ValidationError) Unwrap() error    { return e.Err }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError cria um erro de validação com o mapa de campos inválidos.
func NewFieldValidationError(msg string, fields map[string]string) AppError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Details() string  { return "" }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa uma violação de integridade (FK, unicidade, check).
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Details() string  { return detailsOf(e.Err) }
func (e *ConflictError) Unwrap() error    { return e.Err }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// PayloadTooLargeError representa um corpo de requisição acima do limite aceito.
type PayloadTooLargeError struct {
	Limit int64
	Err   error
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("Corpo da requisição excede o limite de %d bytes", e.Limit)
}
func (e *PayloadTooLargeError) Category() string { return "PAYLOAD_TOO_LARGE" }
func (e *PayloadTooLargeError) HTTPStatus() int  { return http.StatusRequestEntityTooLarge } // 413
func (e *PayloadTooLargeError) Details() string  { return "" }
func (e *PayloadTooLargeError) Unwrap() error    { return e.Err }

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// UnavailableError representa o banco de dados inacessível ou sem resposta.
type UnavailableError struct {
	Msg string
	Err error
}

func (e *UnavailableError) Error() string    { return fmt.Sprintf("Serviço indisponível: %s", e.Msg) }
func (e *UnavailableError) Category() string { return "UNAVAILABLE" }
func (e *UnavailableError) HTTPStatus() int  { return http.StatusServiceUnavailable } // 503
func (e *UnavailableError) Details() string  { return detailsOf(e.Err) }
func (e *UnavailableError) Unwrap() error    { return e.Err }

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Details() string  { return detailsOf(e.Err) }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError classifica um erro do driver PostgreSQL na taxonomia tipada.
// Violações de integridade viram ConflictError, dados inválidos viram
// ValidationError e falhas de conexão viram UnavailableError.
func NewDBError(msg string, err error) AppError {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23503", pqErr.Code == "23505", pqErr.Code == "23514":
			return &ConflictError{Msg: msg, Err: err}
		case pqErr.Code == "23502", pqErr.Code.Class() == "22":
			return &ValidationError{Msg: msg, Err: err}
		case pqErr.Code.Class() == "08", pqErr.Code == "57P01", pqErr.Code == "57P02", pqErr.Code == "57P03":
			return &UnavailableError{Msg: msg, Err: err}
		}
		return &InternalError{Msg: msg, Err: err}
	}

	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, driver.ErrBadConn) || stderrors.As(err, &netErr) {
		return &UnavailableError{Msg: msg, Err: err}
	}

	return &InternalError{Msg: msg, Err: err}
}

// detailsOf extrai a mensagem original do erro subjacente.
func detailsOf(err error) string {
	if err == nil {
		return ""
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Message
	}
	return err.Error()
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		// O erro é tipado (ValidationError, NotFoundError, etc.)
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

// DetailsOf devolve o detalhe bruto de um AppError presente na cadeia.
func DetailsOf(err error) string {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Details()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// FieldsOf devolve os campos inválidos de um ValidationError, se houver.
func FieldsOf(err error) map[string]string {
	var vErr *ValidationError
	if stderrors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}

// IsAppError informa se algum erro da cadeia já pertence à taxonomia tipada.
func IsAppError(err error) bool {
	var appErr AppError
	return stderrors.As(err, &appErr)
}
