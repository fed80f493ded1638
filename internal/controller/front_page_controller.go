package controller

import (
	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/serverutils"
	"newsroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFrontPageController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Set(ctx *fiber.Ctx) error
}

type frontPageController struct {
	frontPageService service.IFrontPageService
}

func NewFrontPageController(frontPageService service.IFrontPageService) IFrontPageController {
	return &frontPageController{
		frontPageService: frontPageService,
	}
}

func (c *frontPageController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/front-page/v1")
	pub.Get("", c.Get)

	adm := r.Group("/admin/front-page/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Put("", c.Set)
}

func (c *frontPageController) Get(ctx *fiber.Ctx) error {
	res, err := c.frontPageService.Get(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show front page", res))
}

func (c *frontPageController) Set(ctx *fiber.Ctx) error {
	var req dto.SetFrontPageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.frontPageService.Set(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update front page", res))
}
