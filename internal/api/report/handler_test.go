package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gofinanceiro/internal/api/report"
	"gofinanceiro/internal/api/response"
	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Run(ctx context.Context, name string, filters map[string]string) ([]database.Row, error) {
	args := m.Called(name, filters)
	return args.Get(0).([]database.Row), args.Error(1)
}

func TestReport_ForwardsQueryFilters(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, response.NewWriter(logger.Nop()))

	svc.On("Run", "relatorio_financeiro", map[string]string{"data_inicio": "2025-01-01", "data_fim": "2025-06-01"}).
		Return([]database.Row{{"cliente_id": 1, "cliente_nome": "Ana", "total_pedidos": 2, "total_pago": "10.00", "total_pendente": "0.00", "pedidos_em_atraso": 0}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/functions/relatorio_financeiro?data_inicio=2025-01-01&data_fim=2025-06-01", nil)
	rec := httptest.NewRecorder()
	h.Report("relatorio_financeiro").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"cliente_id":1,"cliente_nome":"Ana","total_pedidos":2,"total_pago":"10.00","total_pendente":"0.00","pedidos_em_atraso":0}]`, rec.Body.String())
}

func TestReport_EmptyIs204(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, response.NewWriter(logger.Nop()))
	svc.On("Run", "clientes_vip", map[string]string{}).Return([]database.Row{}, nil)

	rec := httptest.NewRecorder()
	h.Report("clientes_vip").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view/clientes_vip", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReport_BadFilterIs400(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, response.NewWriter(logger.Nop()))
	svc.On("Run", "clientes_fieis", map[string]string{"min_pedidos": "x"}).
		Return([]database.Row(nil), apperror.NewFieldValidationError("filtros inválidos: min_pedidos", map[string]string{"min_pedidos": "int"}))

	rec := httptest.NewRecorder()
	h.Report("clientes_fieis").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/functions/clientes_fieis?min_pedidos=x", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"min_pedidos":"int"`)
}
