package crud

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gofinanceiro/internal/api/response"
	apperror "gofinanceiro/internal/errors"
)

// maxBodyBytes limita o corpo das requisições de escrita.
const maxBodyBytes = 1 << 20

// Service define o contrato que o Handler espera da camada de Serviço.
type Service[T any, In any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) ([]T, error)
	ListBy(ctx context.Context, column string, id int64) ([]T, error)
	Create(ctx context.Context, in In) ([]T, error)
	Update(ctx context.Context, id int64, in In) ([]T, error)
	Delete(ctx context.Context, id int64) ([]T, error)
}

// Handler expõe um recurso CRUD via HTTP.
type Handler[T any, In any] struct {
	Service Service[T, In]
	Writer  *response.Writer
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Writer.
func NewHandler[T any, In any](svc Service[T, In], wr *response.Writer) *Handler[T, In] {
	return &Handler[T, In]{Service: svc, Writer: wr}
}

// List lida com GET /{recurso}.
func (h *Handler[T, In]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	response.Rows(h.Writer, w, r, rows, err, http.StatusOK)
}

// Get lida com GET /{recurso}/{id}. Id inexistente resulta em 204.
func (h *Handler[T, In]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.Writer.Error(w, r, err)
		return
	}
	rows, err := h.Service.Get(r.Context(), id)
	response.Rows(h.Writer, w, r, rows, err, http.StatusOK)
}

// ListBy devolve um handler que lista as linhas cuja coluna é igual ao
// parâmetro {id} da rota, e.g. GET /pedidos/{id}/itens.
func (h *Handler[T, In]) ListBy(column string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			h.Writer.Error(w, r, err)
			return
		}
		rows, err := h.Service.ListBy(r.Context(), column, id)
		response.Rows(h.Writer, w, r, rows, err, http.StatusOK)
	}
}

// Create lida com POST /{recurso}.
func (h *Handler[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	var in In
	if err := decode(w, r, &in); err != nil {
		h.Writer.Error(w, r, err)
		return
	}
	rows, err := h.Service.Create(r.Context(), in)
	response.Rows(h.Writer, w, r, rows, err, http.StatusCreated)
}

// Update lida com PUT /{recurso}/{id}.
func (h *Handler[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.Writer.Error(w, r, err)
		return
	}
	var in In
	if err := decode(w, r, &in); err != nil {
		h.Writer.Error(w, r, err)
		return
	}
	rows, err := h.Service.Update(r.Context(), id, in)
	response.Rows(h.Writer, w, r, rows, err, http.StatusOK)
}

// Delete lida com DELETE /{recurso}/{id}.
func (h *Handler[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.Writer.Error(w, r, err)
		return
	}
	rows, err := h.Service.Delete(r.Context(), id)
	response.Rows(h.Writer, w, r, rows, err, http.StatusOK)
}

func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewFieldValidationError("o id deve ser um inteiro positivo", map[string]string{param: "int"})
	}
	return id, nil
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	// O corpo precisa conter exatamente um valor JSON.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return decodeError(err)
		}
		return apperror.NewValidationError("Payload inválido: o corpo deve conter um único objeto JSON.")
	}
	return nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return &apperror.PayloadTooLargeError{Limit: tooLarge.Limit, Err: err}
	case errors.Is(err, io.EOF):
		return apperror.NewValidationError("Corpo da requisição vazio.")
	}
	return &apperror.ValidationError{Msg: "Payload inválido. Verifique o formato JSON.", Err: err}
}
