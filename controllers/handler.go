package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pos/billing"
	"pos/config"
	"pos/repo"
	"pos/store"
)

// Handler carries the wired dependencies for every route.
type Handler struct {
	Store   *store.Manager
	Repos   *repo.Repos
	Billing *billing.Service
	Cart    *billing.Cart
	Cfg     *config.Config
	Log     *zap.Logger
}

func New(m *store.Manager, repos *repo.Repos, svc *billing.Service, cart *billing.Cart, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{Store: m, Repos: repos, Billing: svc, Cart: cart, Cfg: cfg, Log: log}
}

// fail maps domain errors onto HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, billing.ErrInsufficientStock),
		errors.Is(err, billing.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
