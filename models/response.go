package models

// Envelope is the uniform response shape returned by every operation.
// Dados is only present on success responses.
type Envelope struct {
	Tool    string      `json:"tool"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Dados   interface{} `json:"dados,omitempty"`
}

// CriarAlunoRequest is the criar-aluno request body. Cursos stays untyped
// so a non-list value can be rejected with a validation error instead of
// failing the JSON decode.
type CriarAlunoRequest struct {
	Nome   string      `json:"nome" validate:"required"`
	CPF    string      `json:"cpf" validate:"required"`
	Email  string      `json:"email" validate:"required"`
	Cursos interface{} `json:"cursos" validate:"required"`
}

// EditarAlunoRequest is the editar-aluno request body. Every field is
// optional; omitted fields keep their stored values.
type EditarAlunoRequest struct {
	Nome   string      `json:"nome"`
	Email  string      `json:"email"`
	Cursos interface{} `json:"cursos"`
}
