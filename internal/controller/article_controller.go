package controller

import (
	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/serverutils"
	"newsroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IArticleController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type articleController struct {
	articleService service.IArticleService
}

func NewArticleController(articleService service.IArticleService) IArticleController {
	return &articleController{
		articleService: articleService,
	}
}

func (c *articleController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/articles/v1")
	pub.Get("", c.List)
	pub.Get(":slug", c.Show)

	adm := r.Group("/admin/articles/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Post("", c.Create)
	adm.Get(":slug", c.Show)
	adm.Put(":id", c.Update)
	adm.Delete(":id", c.Delete)
}

func (c *articleController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.articleService.List(ctx.Context(), category, page, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list articles", res))
}

func (c *articleController) Show(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	// Editors see drafts and the raw body; readers only published articles.
	includeBody := ctx.Locals("user_id") != nil

	res, err := c.articleService.ShowBySlug(ctx.Context(), slug, includeBody)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "article not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show article", res))
}

func (c *articleController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create article", res))
}

func (c *articleController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid article id")
	}

	var req dto.UpdateArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "article not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update article", res))
}

func (c *articleController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid article id")
	}

	if err := c.articleService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete article", nil))
}
