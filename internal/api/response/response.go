package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gofinanceiro/internal/domain"
	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/logger"
)

// Writer envia as respostas padronizadas da API.
type Writer struct {
	Logger logger.Logger
}

// NewWriter cria um Writer com o Logger injetado.
func NewWriter(log logger.Logger) *Writer {
	return &Writer{Logger: log}
}

// Rows responde com um array JSON de linhas. Se o resultado vier vazio e o
// status nominal for 200, responde 204 sem corpo.
func Rows[T any](wr *Writer, w http.ResponseWriter, r *http.Request, rows []T, err error, successStatus int) {
	if err != nil {
		wr.Error(w, r, err)
		return
	}
	if len(rows) == 0 && successStatus == http.StatusOK {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	wr.JSON(w, successStatus, rows)
}

// JSON codifica data com o status informado.
func (wr *Writer) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
		wr.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
	}
}

// Error traduz o erro para status HTTP e corpo domain.ErrorResponse.
// 5xx é registrado como erro; 4xx apenas em debug.
func (wr *Writer) Error(w http.ResponseWriter, r *http.Request, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		wr.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		wr.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	wr.JSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Details:  apperror.DetailsOf(err),
		Fields:   apperror.FieldsOf(err),
	})
}
