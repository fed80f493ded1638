package controller

import (
	"newsroom-be/internal/pkg/serverutils"
	"newsroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Autocomplete(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Get("", c.Search)
	h.Get("autocomplete", c.Autocomplete)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")
	limit := ctx.QueryInt("limit", 20)

	res, err := c.searchService.Search(ctx.Context(), q, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search articles", res))
}

func (c *searchController) Autocomplete(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")
	limit := ctx.QueryInt("limit", 10)

	res, err := c.searchService.Autocomplete(ctx.Context(), q, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success autocomplete", res))
}
