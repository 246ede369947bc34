package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound: operação sobre um id que não existe.
var ErrNotFound = errors.New("registro não encontrado")

// ErrNoData: lista vazia onde o chamador precisa de pelo menos um registro
// (ex: exportar relatório sem dados).
var ErrNoData = errors.New("não há dados")

// ValidationError: entrada malformada, campo obrigatório vazio ou valor
// numérico inválido/negativo. A operação nem chega no banco.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IOError: falha de acesso ao banco. O erro original fica em Err para o log;
// o cliente recebe só uma mensagem genérica.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// PartialConsistencyWarning: a entrega foi gravada mas a entrada de estoque
// derivada falhou (modo degradado, sem transação). O chamador precisa ser
// avisado para pedir a correção manual do estoque.
type PartialConsistencyWarning struct {
	DeliveryID string
	Err        error
}

func (e *PartialConsistencyWarning) Error() string {
	return fmt.Sprintf("entrega %s registrada, mas a atualização do estoque falhou: %v", e.DeliveryID, e.Err)
}

func (e *PartialConsistencyWarning) Unwrap() error { return e.Err }
