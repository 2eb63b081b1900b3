package alunoRoutes

import (
	alunoController "matricula/controllers/aluno"
	validators "matricula/validators/aluno"

	"github.com/gofiber/fiber/v2"
)

// SetupAlunoRoutes sets up the enrollment endpoints under /api
func SetupAlunoRoutes(app *fiber.App, ctrl *alunoController.AlunoController) {
	api := app.Group("/api")

	api.Get("/ping", alunoController.Ping)

	api.Get("/consultar-aluno", validators.ConsultarAluno(), ctrl.ConsultarAluno)
	api.Post("/criar-aluno", validators.CriarAluno(), ctrl.CriarAluno)
	api.Put("/editar-aluno", validators.EditarAluno(), ctrl.EditarAluno)
	api.Delete("/deletar-aluno", validators.DeletarAluno(), ctrl.DeletarAluno)
}
