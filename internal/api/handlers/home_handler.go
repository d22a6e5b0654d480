package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/scheduling-console/internal/console"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
)

// datetime-local input format
const dateTimeLayout = "2006-01-02T15:04"

// an empty action is a form submitted with the Enter key
var composeActions = map[string]bool{
	"now":      true,
	"schedule": true,
	"submit":   true,
	"cancel":   true,
	"":         true,
}

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	ws.Home.Mount(c.Context())
	return h.render(c, ws.Home)
}

func (h *HomeHandler) OpenCompose(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	ws.Home.Compose.Open()
	return h.render(c, ws.Home)
}

// Compose applies the posted modal fields and then runs the requested
// action: now, schedule, submit or cancel.
func (h *HomeHandler) Compose(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	compose := ws.Home.Compose
	if !compose.IsOpen() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	values, media := formValues(c)
	action, _ := firstValue(values, "action")
	if !composeActions[action] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown compose action",
		})
	}
	if action == "cancel" {
		compose.Cancel()
		return h.render(c, ws.Home)
	}

	files, err := readMediaFiles(media)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read uploaded files",
		})
	}

	applyCompose(compose, values, ws.Home.Location())
	if len(files) > 0 {
		compose.AcceptFiles(files)
	}

	switch action {
	case "now":
		compose.SetImmediate(true)
	case "schedule":
		compose.SetImmediate(false)
	default:
		if err := ws.Home.SubmitCompose(c.Context()); err != nil {
			if _, ok := err.(*console.Alert); !ok {
				return err
			}
		}
	}

	return h.render(c, ws.Home)
}

func (h *HomeHandler) DeletePost(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post id",
		})
	}

	ws := GetWorkspace(c)
	ws.Lock()
	ws.Home.DeletePost(c.Context(), id)
	ws.Unlock()

	return c.Redirect("/", fiber.StatusSeeOther)
}

func applyCompose(compose *console.ComposeForm, values map[string][]string, loc *time.Location) {
	if text, ok := firstValue(values, "text"); ok {
		compose.SetText(text)
	}
	if raw, ok := firstValue(values, "datetime"); ok {
		compose.SetDateTime(parseDateTime(raw, loc))
	}
	if repeat, ok := firstValue(values, "repeat"); ok {
		compose.SetRepeat(repeat)
	}
	compose.SetSocial(values["social"])
}

func parseDateTime(raw string, loc *time.Location) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, raw, loc)
	if err != nil {
		slog.Info(err.Error())
		return nil
	}
	return &t
}

func (h *HomeHandler) render(c *fiber.Ctx, home *console.HomePage) error {
	table := home.Table()
	compose := home.Compose

	dateTime := ""
	if dt := compose.DateTime(); dt != nil {
		dateTime = dt.In(home.Location()).Format(dateTimeLayout)
	}

	return c.Render("home", fiber.Map{
		"Title":         navTitle(c),
		"Alerts":        home.TakeAlerts(),
		"Empty":         table.Empty(),
		"Rows":          table.Rows(c.Context()),
		"Compose":       compose,
		"DateTime":      dateTime,
		"Files":         compose.Files(),
		"RepeatOptions": transfer.RepeatOptions,
		"SocialOptions": transfer.SocialOptions,
	}, layout)
}
