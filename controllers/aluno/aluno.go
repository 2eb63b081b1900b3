package alunoController

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"matricula/database"
	"matricula/middleware"
	"matricula/models"
	"matricula/utils"

	"github.com/gofiber/fiber/v2"
)

// AlunoController handles the four enrollment operations over an injected
// AlunoStore, so tests can substitute the in-memory implementation.
type AlunoController struct {
	Store database.AlunoStore
}

func New(store database.AlunoStore) *AlunoController {
	return &AlunoController{Store: store}
}

// Ping is a liveness probe
func Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "pong",
	})
}

func (ctrl *AlunoController) ConsultarAluno(c *fiber.Ctx) error {
	cpf := c.Locals("cpf").(string)

	cpfLimpo := utils.CleanCPF(cpf)
	aluno, err := ctrl.Store.FindByCPF(c.Context(), cpfLimpo)
	if errors.Is(err, database.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "consulta-aluno", "error", "Não existe aluno para esse CPF.", nil)
	}
	if err != nil {
		log.Printf("Erro ao consultar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "consulta-aluno", "error", "Erro interno, por favor tente mais tarde.", nil)
	}

	matricula := aluno.ID.Hex()
	cursos := aluno.Cursos
	if cursos == nil {
		cursos = []string{}
	}

	message := fmt.Sprintf(
		"Consulta por %s realizada.\n\nmatricula: %s\ncpf: %s\nnome: %s\nemail: %s\ncursos: %s",
		aluno.Nome, matricula, aluno.CPF, aluno.Nome, aluno.Email, strings.Join(cursos, ","),
	)

	return middleware.JsonResponse(c, fiber.StatusOK, "consulta-aluno", "sucesso", message, fiber.Map{
		"matricula": matricula,
		"cpf":       aluno.CPF,
		"nome":      aluno.Nome,
		"email":     aluno.Email,
		"cursos":    cursos,
	})
}

func (ctrl *AlunoController) CriarAluno(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAluno").(*models.NovoAluno)

	cpfLimpo := utils.CleanCPF(reqData.CPF)

	// Check if this CPF is already enrolled. Read-then-write, so two
	// concurrent creates for the same CPF can still both pass.
	_, err := ctrl.Store.FindByCPF(c.Context(), cpfLimpo)
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "nova-matricula", "error", "Erro ao processar matrícula. Matrícula já realizada.", nil)
	}
	if !errors.Is(err, database.ErrNotFound) {
		log.Printf("Erro ao criar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "nova-matricula", "error", "Erro interno ao processar a matrícula. Tente novamente mais tarde", nil)
	}

	aluno := &models.Aluno{
		Nome:   reqData.Nome,
		CPF:    cpfLimpo,
		Email:  reqData.Email,
		Cursos: reqData.Cursos,
	}

	matricula, err := ctrl.Store.Insert(c.Context(), aluno)
	if err != nil {
		log.Printf("Erro ao criar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "nova-matricula", "error", "Erro interno ao processar a matrícula. Tente novamente mais tarde", nil)
	}

	utils.SendWelcomeEmail(reqData.Email, reqData.Nome, matricula)

	message := fmt.Sprintf("Bem vindo, %s! Sua matrícula %s foi registrada com sucesso.", reqData.Nome, matricula)
	return middleware.JsonResponse(c, fiber.StatusOK, "nova-matricula", "sucesso", message, fiber.Map{
		"matricula": matricula,
		"nome":      reqData.Nome,
		"cpf":       cpfLimpo,
		"email":     reqData.Email,
		"cursos":    reqData.Cursos,
	})
}

func (ctrl *AlunoController) EditarAluno(c *fiber.Ctx) error {
	cpf := c.Locals("cpf").(string)
	reqData := c.Locals("validatedEdicao").(*models.EditarAlunoRequest)

	cpfLimpo := utils.CleanCPF(cpf)
	aluno, err := ctrl.Store.FindByCPF(c.Context(), cpfLimpo)
	if errors.Is(err, database.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "editar-aluno", "error", "Aluno não encontrado.", nil)
	}
	if err != nil {
		log.Printf("Erro ao editar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "editar-aluno", "error", "Erro interno ao editar o aluno.", nil)
	}

	// Partial update: only supplied fields change
	atualizacoes := make(map[string]interface{})
	if reqData.Nome != "" {
		atualizacoes["nome"] = reqData.Nome
	}
	if reqData.Email != "" {
		atualizacoes["email"] = reqData.Email
	}

	var cursos []string
	if reqData.Cursos != nil {
		lista, ok := utils.StringList(reqData.Cursos)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "editar-aluno", "error", "O campo cursos deve ser uma lista.", nil)
		}
		cursos = lista
		atualizacoes["cursos"] = lista
	}

	matricula := aluno.ID.Hex()
	if err := ctrl.Store.Update(c.Context(), matricula, atualizacoes); err != nil {
		log.Printf("Erro ao editar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "editar-aluno", "error", "Erro interno ao editar o aluno.", nil)
	}

	// The confirmation falls back to the stored value for any field the
	// caller did not supply
	nome := reqData.Nome
	if nome == "" {
		nome = aluno.Nome
	}
	email := reqData.Email
	if email == "" {
		email = aluno.Email
	}
	cursosMsg := cursos
	if reqData.Cursos == nil {
		cursosMsg = aluno.Cursos
	}

	message := fmt.Sprintf(
		"Aluno %s atualizado com sucesso.\n\nmatricula: %s\ncpf: %s\nnome: %s\nemail: %s\ncursos: %s",
		nome, matricula, aluno.CPF, nome, email, strings.Join(cursosMsg, ","),
	)

	dados := fiber.Map{
		"matricula": matricula,
		"cpf":       cpf,
	}
	for campo, valor := range atualizacoes {
		dados[campo] = valor
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "editar-aluno", "sucesso", message, dados)
}

func (ctrl *AlunoController) DeletarAluno(c *fiber.Ctx) error {
	cpf := c.Locals("cpf").(string)

	cpfLimpo := utils.CleanCPF(cpf)
	aluno, err := ctrl.Store.FindByCPF(c.Context(), cpfLimpo)
	if errors.Is(err, database.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "deletar-aluno", "erro", "Aluno não encontrado.", nil)
	}
	if err != nil {
		log.Printf("Erro ao deletar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "deletar-aluno", "erro", "Erro interno ao tentar deletar o aluno.", nil)
	}

	if err := ctrl.Store.Delete(c.Context(), aluno.ID.Hex()); err != nil {
		log.Printf("Erro ao deletar aluno: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "deletar-aluno", "erro", "Erro interno ao tentar deletar o aluno.", nil)
	}

	// The confirmation echoes the caller-supplied CPF, not the normalized one
	message := fmt.Sprintf("Aluno %s, com CPF %s, deletado com sucesso.", aluno.Nome, cpf)
	return middleware.JsonResponse(c, fiber.StatusOK, "deletar-aluno", "sucesso", message, nil)
}
