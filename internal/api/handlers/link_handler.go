package handlers

import (
	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/pkg/shortlink"

	"github.com/gofiber/fiber/v2"
)

type (
	LinkHandler interface {
		GetLink(c *fiber.Ctx) error
		Redirect(c *fiber.Ctx) error
	}

	linkHandler struct {
		linkService shortlink.LinkService
	}
)

func NewLinkHandler(linkService shortlink.LinkService) LinkHandler {
	return &linkHandler{linkService: linkService}
}

func (h *linkHandler) GetLink(c *fiber.Ctx) error {
	token, err := h.linkService.GetOrCreateLink(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetLink, err)
	}
	return presenters.SuccessResponse(c, domain.ShortLinkResponse{
		ShortLink: c.BaseURL() + "/s/" + token + "/",
	}, fiber.StatusOK, domain.MessageSuccessGetLink)
}

// Redirect sends the browser to the recipe page behind a short link.
func (h *linkHandler) Redirect(c *fiber.Ctx) error {
	recipeID, err := h.linkService.Resolve(c.Context(), c.Params("token"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageNotFound, err)
	}
	return c.Redirect(c.BaseURL()+"/recipes/"+recipeID+"/", fiber.StatusFound)
}
