package crudservice

import (
	"context"
	"fmt"

	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/pkg/validation"
)

// Repository define o contrato que o Serviço espera da camada de Persistência.
type Repository[T any, In any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) ([]T, error)
	FindBy(ctx context.Context, column string, value interface{}) ([]T, error)
	Create(ctx context.Context, in In) ([]T, error)
	Update(ctx context.Context, id int64, in In) ([]T, error)
	Delete(ctx context.Context, id int64) ([]T, error)
}

// Operation identifica a mutação em andamento para os ganchos de preparo.
type Operation int

const (
	OpCreate Operation = iota
	OpUpdate
)

// PrepareFunc ajusta ou rejeita o payload já validado antes de chegar ao SQL.
type PrepareFunc[In any] func(ctx context.Context, op Operation, in *In) error

// Option configura um Service.
type Option[In any] func(*options[In])

type options[In any] struct {
	prepare []PrepareFunc[In]
}

// WithPrepare registra um gancho executado após a validação das tags.
func WithPrepare[In any](fn PrepareFunc[In]) Option[In] {
	return func(o *options[In]) { o.prepare = append(o.prepare, fn) }
}

// Service é o serviço genérico de um recurso CRUD.
type Service[T any, In any] struct {
	resource string
	repo     Repository[T, In]
	logger   logger.Logger
	prepare  []PrepareFunc[In]
}

// NewService cria o serviço do recurso, injetando o Repositório e o Logger.
func NewService[T any, In any](resource string, repo Repository[T, In], log logger.Logger, opts ...Option[In]) *Service[T, In] {
	var o options[In]
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[T, In]{resource: resource, repo: repo, logger: log, prepare: o.prepare}
}

// Resource devolve o nome do recurso (e.g. "clientes").
func (s *Service[T, In]) Resource() string {
	return s.resource
}

// List devolve todas as linhas do recurso.
func (s *Service[T, In]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.wrap("listar", err)
	}
	return items, nil
}

// Get devolve zero ou uma linha.
func (s *Service[T, In]) Get(ctx context.Context, id int64) ([]T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	items, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrap("buscar", err)
	}
	return items, nil
}

// ListBy devolve as linhas filtradas por uma coluna de referência (e.g. id_pedido).
func (s *Service[T, In]) ListBy(ctx context.Context, column string, id int64) ([]T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	items, err := s.repo.FindBy(ctx, column, id)
	if err != nil {
		return nil, s.wrap("listar", err)
	}
	return items, nil
}

// Create valida o payload e insere o registro.
func (s *Service[T, In]) Create(ctx context.Context, in In) ([]T, error) {
	if err := s.validate(ctx, OpCreate, &in); err != nil {
		return nil, err
	}

	items, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, s.wrap("criar", err)
	}

	s.logger.Info("Registro criado com sucesso.", map[string]interface{}{"recurso": s.resource})
	return items, nil
}

// Update valida o payload e substitui os campos editáveis do registro.
func (s *Service[T, In]) Update(ctx context.Context, id int64, in In) ([]T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, OpUpdate, &in); err != nil {
		return nil, err
	}

	items, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, s.wrap("atualizar", err)
	}

	s.logger.Info("Registro atualizado com sucesso.", map[string]interface{}{"recurso": s.resource, "id": id})
	return items, nil
}

// Delete remove o registro.
func (s *Service[T, In]) Delete(ctx context.Context, id int64) ([]T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	items, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, s.wrap("excluir", err)
	}

	s.logger.Info("Registro excluído com sucesso.", map[string]interface{}{"recurso": s.resource, "id": id})
	return items, nil
}

func (s *Service[T, In]) validate(ctx context.Context, op Operation, in *In) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	for _, fn := range s.prepare {
		if err := fn(ctx, op, in); err != nil {
			return err
		}
	}
	return nil
}

// wrap preserva os erros já tipados e converte o resto em InternalError.
func (s *Service[T, In]) wrap(action string, err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternalError(fmt.Sprintf("Falha ao %s %s", action, s.resource), err)
}

func checkID(id int64) error {
	if id <= 0 {
		return apperror.NewFieldValidationError("o id deve ser um inteiro positivo", map[string]string{"id": "gt"})
	}
	return nil
}
