package controller

import (
	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/serverutils"
	"newsroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthorController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type authorController struct {
	authorService service.IAuthorService
}

func NewAuthorController(authorService service.IAuthorService) IAuthorController {
	return &authorController{
		authorService: authorService,
	}
}

func (c *authorController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/authors/v1")
	pub.Get("", c.List)
	pub.Get(":slug", c.Show)

	adm := r.Group("/admin/authors/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Post("", c.Create)
	adm.Put(":id", c.Update)
	adm.Delete(":id", c.Delete)
}

func (c *authorController) List(ctx *fiber.Ctx) error {
	res, err := c.authorService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list authors", res))
}

func (c *authorController) Show(ctx *fiber.Ctx) error {
	res, err := c.authorService.ShowBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "author not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show author", res))
}

func (c *authorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAuthorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authorService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create author", res))
}

func (c *authorController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid author id")
	}

	var req dto.UpdateAuthorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authorService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "author not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update author", res))
}

func (c *authorController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid author id")
	}

	if err := c.authorService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete author", nil))
}
