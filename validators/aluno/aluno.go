package alunoValidator

import (
	"matricula/middleware"
	"matricula/models"
	"matricula/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ConsultarAluno validator middleware
func ConsultarAluno() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpf := c.Query("cpf")
		if cpf == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "consulta-aluno", "error", "O parâmetro CPF é obrigatório.", nil)
		}

		c.Locals("cpf", cpf)
		return c.Next()
	}
}

// CriarAluno validator middleware. All four fields are required and cursos
// must be a list of strings; anything else is rejected before the
// uniqueness lookup runs.
func CriarAluno() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CriarAlunoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "nova-matricula", "error", "Dados inválidos", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "nova-matricula", "error", "Dados inválidos", nil)
		}

		cursos, ok := utils.StringList(reqData.Cursos)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "nova-matricula", "error", "Dados inválidos", nil)
		}

		// Pass validated aluno to the controller
		c.Locals("validatedAluno", &models.NovoAluno{
			Nome:   reqData.Nome,
			CPF:    reqData.CPF,
			Email:  reqData.Email,
			Cursos: cursos,
		})
		return c.Next()
	}
}

// EditarAluno validator middleware. Requires the cpf query param and at
// least one updatable field. The cursos type check stays in the controller
// so an unknown aluno still answers 404 over a malformed cursos.
func EditarAluno() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpf := c.Query("cpf")
		if cpf == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "editar-aluno", "error", "O parâmetro CPF é obrigatório.", nil)
		}

		reqData := new(models.EditarAlunoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "editar-aluno", "error", "Informe ao menos um campo para atualização (nome, email ou cursos).", nil)
		}

		if reqData.Nome == "" && reqData.Email == "" && reqData.Cursos == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "editar-aluno", "error", "Informe ao menos um campo para atualização (nome, email ou cursos).", nil)
		}

		c.Locals("cpf", cpf)
		c.Locals("validatedEdicao", reqData)
		return c.Next()
	}
}

// DeletarAluno validator middleware
func DeletarAluno() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpf := c.Query("cpf")
		if cpf == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "deletar-aluno", "error", "O parâmetro CPF é obrigatório.", nil)
		}

		c.Locals("cpf", cpf)
		return c.Next()
	}
}
