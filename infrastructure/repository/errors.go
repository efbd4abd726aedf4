package repository

import (
	"fmt"

	"github.com/pkg/errors"
)

// StorageError representa uma falha de persistência (I/O, constraint, scan)
type StorageError struct {
	Op  string // Operação do repositório que falhou
	Err error  // Erro original, com stack trace
}

// Error implementa a interface error
func (e *StorageError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *StorageError) Unwrap() error {
	return e.Err
}

func newStorageError(op string, err error, msg string) *StorageError {
	return &StorageError{
		Op:  op,
		Err: errors.Wrap(err, msg),
	}
}
