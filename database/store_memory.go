package database

import (
	"context"
	"fmt"
	"sync"

	"matricula/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryAlunoStore is an in-memory AlunoStore used by tests and local runs
// without a MongoDB instance. It mirrors the mongo store's behavior,
// including ErrNotFound on misses.
type MemoryAlunoStore struct {
	mu     sync.RWMutex
	alunos map[string]models.Aluno // keyed by the ObjectID hex
}

func NewMemoryAlunoStore() *MemoryAlunoStore {
	return &MemoryAlunoStore{alunos: make(map[string]models.Aluno)}
}

func (s *MemoryAlunoStore) FindByCPF(ctx context.Context, cpf string) (*models.Aluno, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, aluno := range s.alunos {
		if aluno.CPF == cpf {
			found := aluno
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAlunoStore) Insert(ctx context.Context, aluno *models.Aluno) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aluno.ID = primitive.NewObjectID()
	s.alunos[aluno.ID.Hex()] = *aluno
	return aluno.ID.Hex(), nil
}

func (s *MemoryAlunoStore) Update(ctx context.Context, id string, campos map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	aluno, ok := s.alunos[id]
	if !ok {
		return ErrNotFound
	}

	for campo, valor := range campos {
		switch campo {
		case "nome":
			nome, ok := valor.(string)
			if !ok {
				return fmt.Errorf("campo nome com tipo inválido %T", valor)
			}
			aluno.Nome = nome
		case "email":
			email, ok := valor.(string)
			if !ok {
				return fmt.Errorf("campo email com tipo inválido %T", valor)
			}
			aluno.Email = email
		case "cursos":
			cursos, ok := valor.([]string)
			if !ok {
				return fmt.Errorf("campo cursos com tipo inválido %T", valor)
			}
			aluno.Cursos = cursos
		}
	}

	s.alunos[id] = aluno
	return nil
}

func (s *MemoryAlunoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.alunos[id]; !ok {
		return ErrNotFound
	}
	delete(s.alunos, id)
	return nil
}

// Count reports how many alunos are stored.
func (s *MemoryAlunoStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alunos)
}
