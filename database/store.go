package database

import (
	"context"
	"errors"

	"matricula/models"
)

// ErrNotFound is returned when no aluno matches the given filter.
var ErrNotFound = errors.New("aluno não encontrado")

// AlunoStore is the slice of the document store the controllers depend on:
// equality lookup by normalized CPF, insert with a store-assigned id, and
// partial update / delete by that id. Controllers receive an AlunoStore
// explicitly so tests can swap in the in-memory implementation.
type AlunoStore interface {
	// FindByCPF returns the single aluno whose stored cpf equals cpf,
	// or ErrNotFound.
	FindByCPF(ctx context.Context, cpf string) (*models.Aluno, error)

	// Insert stores a new aluno and returns the assigned matricula id.
	Insert(ctx context.Context, aluno *models.Aluno) (string, error)

	// Update applies a partial update; only the fields present in campos
	// change on the matched document.
	Update(ctx context.Context, id string, campos map[string]interface{}) error

	// Delete permanently removes the document with the given id.
	Delete(ctx context.Context, id string) error
}
