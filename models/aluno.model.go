package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Aluno is a single enrollment record in the "alunos" collection.
// CPF is stored digits-only and is the lookup key; the store-assigned
// ObjectID is exposed to clients as the "matricula" hex string.
type Aluno struct {
	ID     primitive.ObjectID `json:"matricula" bson:"_id,omitempty"`
	CPF    string             `json:"cpf" bson:"cpf"`
	Nome   string             `json:"nome" bson:"nome"`
	Email  string             `json:"email" bson:"email"`
	Cursos []string           `json:"cursos" bson:"cursos"`
}

// NovoAluno carries the validated criar-aluno payload from the validator
// middleware to the controller. CPF is still raw here; the controller
// normalizes it before the uniqueness lookup.
type NovoAluno struct {
	Nome   string
	CPF    string
	Email  string
	Cursos []string
}
