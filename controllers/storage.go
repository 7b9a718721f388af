package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pos/store"
)

// GetStorageStatus reports which durable backend is active and whether it
// can be written to; the UI uses the writable flag to decide between
// in-place saves and the manual-export fallback.
func (h *Handler) GetStorageStatus(c *fiber.Ctx) error {
	capability := h.Store.Capability()
	return c.JSON(fiber.Map{
		"backend":  backendName(capability),
		"writable": capability == store.CapabilityReadWrite,
		"folder":   h.Store.Folder(),
	})
}

// SetStorageFolder designates the durable folder for this session. An empty
// path means the picker was dismissed: a no-op, not an error.
func (h *Handler) SetStorageFolder(c *fiber.Ctx) error {
	var input struct {
		Path string `json:"path"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if input.Path == "" {
		return c.JSON(fiber.Map{"message": "Folder selection cancelled"})
	}

	if err := h.Store.SetFolder(input.Path); err != nil {
		return fail(c, err)
	}
	h.Log.Info("durable folder designated", zap.String("folder", input.Path))
	return h.GetStorageStatus(c)
}

// ExportBundle downloads every store as one JSON document: the manual
// fallback when no writable folder is granted.
func (h *Handler) ExportBundle(c *fiber.Ctx) error {
	bundle := make(fiber.Map, 3)
	for _, name := range store.Names() {
		bundle[name] = h.Store.All(name)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pos-data.json"`)
	return c.JSON(bundle)
}

// ImportBundle replaces whole stores from an uploaded JSON document. Stores
// absent from the bundle are left alone.
func (h *Handler) ImportBundle(c *fiber.Ctx) error {
	var bundle map[string][]store.Record
	if err := c.BodyParser(&bundle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	replaced := make([]string, 0, len(bundle))
	for _, name := range store.Names() {
		recs, ok := bundle[name]
		if !ok {
			continue
		}
		if _, err := h.Store.ReplaceAll(name, recs); err != nil {
			return fail(c, err)
		}
		replaced = append(replaced, name)
	}
	return c.JSON(fiber.Map{"message": "Import complete", "stores": replaced})
}

func backendName(cap store.Capability) string {
	if cap == store.CapabilityReadWrite {
		return "folder"
	}
	return "bundled"
}
