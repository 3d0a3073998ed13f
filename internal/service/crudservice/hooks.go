package crudservice

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gofinanceiro/internal/domain"
	apperror "gofinanceiro/internal/errors"
)

// DefaultPedidoStatus assume PENDENTE quando o status não é informado.
func DefaultPedidoStatus(_ context.Context, _ Operation, in *domain.PedidoInput) error {
	if in.Status == "" {
		in.Status = domain.StatusPendente
	}
	return nil
}

// DefaultContaStatus assume EM ABERTO quando o status não é informado.
func DefaultContaStatus(_ context.Context, _ Operation, in *domain.ContaReceberInput) error {
	if in.StatusPagamento == "" {
		in.StatusPagamento = domain.StatusEmAberto
	}
	return nil
}

// HashSenha exige a senha na criação e grava apenas o hash bcrypt.
// Na atualização, senha ausente ou vazia mantém a senha gravada.
func HashSenha(cost int) PrepareFunc[domain.UsuarioInput] {
	return func(_ context.Context, op Operation, in *domain.UsuarioInput) error {
		if in.Senha == nil || *in.Senha == "" {
			if op == OpCreate {
				return apperror.NewFieldValidationError("campos inválidos: senha", map[string]string{"senha": "required"})
			}
			in.Senha = nil
			return nil
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), cost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return apperror.NewFieldValidationError("campos inválidos: senha", map[string]string{"senha": "max"})
		}
		if err != nil {
			return apperror.NewInternalError("Falha ao gerar hash da senha.", err)
		}
		h := string(hashed)
		in.Senha = &h
		return nil
	}
}
