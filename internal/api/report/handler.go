package report

import (
	"context"
	"net/http"

	"gofinanceiro/internal/api/response"
	"gofinanceiro/internal/pkg/database"
)

// ReportService define o contrato que o Handler espera da camada de Serviço.
type ReportService interface {
	Run(ctx context.Context, name string, filters map[string]string) ([]database.Row, error)
}

// Handler expõe as views e funções de relatório do banco.
type Handler struct {
	Service ReportService
	Writer  *response.Writer
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Writer.
func NewHandler(svc ReportService, wr *response.Writer) *Handler {
	return &Handler{Service: svc, Writer: wr}
}

// Report devolve o handler GET de um relatório. Os filtros vêm da query string;
// resultado vazio responde 204.
func (h *Handler) Report(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := map[string]string{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				filters[key] = values[0]
			}
		}

		rows, err := h.Service.Run(r.Context(), name, filters)
		response.Rows(h.Writer, w, r, rows, err, http.StatusOK)
	}
}
