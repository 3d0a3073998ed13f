package reportservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gofinanceiro/internal/domain"
	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/repository/reportrepo"
)

// ReportRepository define o contrato que o Serviço de Relatórios espera da Persistência.
type ReportRepository interface {
	Run(ctx context.Context, report reportrepo.Report, args []interface{}) ([]database.Row, error)
}

// Service resolve o relatório pelo nome, converte os filtros e delega ao repositório.
type Service struct {
	repo   ReportRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Relatórios.
func NewService(repo ReportRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Run executa o relatório com os filtros recebidos na query string.
// Filtros omitidos seguem como NULL; filtros malformados resultam em ValidationError.
func (s *Service) Run(ctx context.Context, name string, filters map[string]string) ([]database.Row, error) {
	report, ok := reportrepo.Find(name)
	if !ok {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("relatório %q", name))
	}

	args, err := parseParams(report.Params, filters)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Executando relatório.", map[string]interface{}{"relatorio": name, "filtros": filters})

	rows, err := s.repo.Run(ctx, report, args)
	if err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewInternalError(fmt.Sprintf("Falha ao executar o relatório %s", name), err)
	}
	return rows, nil
}

func parseParams(params []reportrepo.Param, filters map[string]string) ([]interface{}, error) {
	args := make([]interface{}, len(params))
	invalid := map[string]string{}

	for i, p := range params {
		raw := strings.TrimSpace(filters[p.Name])
		if raw == "" {
			continue
		}
		switch p.Kind {
		case reportrepo.ParamDate:
			d, err := domain.ParseDate(raw)
			if err != nil {
				invalid[p.Name] = "date"
				continue
			}
			args[i] = d.String()
		case reportrepo.ParamInt:
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				invalid[p.Name] = "int"
				continue
			}
			args[i] = n
		}
	}

	if len(invalid) > 0 {
		names := make([]string, 0, len(invalid))
		for _, p := range params {
			if _, ok := invalid[p.Name]; ok {
				names = append(names, p.Name)
			}
		}
		return nil, apperror.NewFieldValidationError("filtros inválidos: "+strings.Join(names, ", "), invalid)
	}
	return args, nil
}
