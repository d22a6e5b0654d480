package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/scheduling-console/internal/console"
	"github.com/maheshrc27/scheduling-console/internal/models"
)

const savedAtLayout = "2006-01-02 15:04"

type AdminHandler struct {
	loc *time.Location
}

func NewAdminHandler(loc *time.Location) *AdminHandler {
	return &AdminHandler{loc: loc}
}

func (h *AdminHandler) Admin(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	ws.Admin.Mount(c.Context())
	return h.render(c, ws.Admin, fiber.StatusOK)
}

func (h *AdminHandler) SaveSecrets(c *fiber.Ctx) error {
	values, _ := formValues(c)
	submitted := make(map[string]string, len(models.SecretFields))
	for _, field := range models.SecretFields {
		if v, ok := firstValue(values, field.Name); ok {
			submitted[field.Name] = v
		}
	}

	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	status := fiber.StatusOK
	if err := ws.Admin.Save(c.Context(), submitted); err != nil {
		status = fiber.StatusBadGateway
	}
	return h.render(c, ws.Admin, status)
}

func (h *AdminHandler) DeleteSecrets(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	status := fiber.StatusOK
	if err := ws.Admin.Delete(c.Context()); err != nil {
		status = fiber.StatusBadGateway
	}
	return h.render(c, ws.Admin, status)
}

func (h *AdminHandler) render(c *fiber.Ctx, admin *console.AdminPage, status int) error {
	alerts, notices := admin.TakeMessages()

	savedAt := ""
	if created := admin.Form.CreatedAt(); created != nil {
		savedAt = created.In(h.loc).Format(savedAtLayout)
	}

	return c.Status(status).Render("admin", fiber.Map{
		"Title":   navTitle(c),
		"Alerts":  alerts,
		"Notices": notices,
		"Fields":  admin.Form.Fields(),
		"SavedAt": savedAt,
	}, layout)
}
