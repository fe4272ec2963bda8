package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/config"
	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, nav *navbar.Renderer)
}
