package handlers

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/scheduling-console/internal/api/middleware"
	"github.com/maheshrc27/scheduling-console/internal/session"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
)

const (
	layout    = "layouts/main"
	homeTitle = "Social Media Scheduler"
	adminPath = "/admin"
)

func GetWorkspace(c *fiber.Ctx) *session.Workspace {
	return c.Locals(middleware.WorkspaceKey).(*session.Workspace)
}

// navTitle is the navigation bar title for the requested path.
func navTitle(c *fiber.Ctx) string {
	if strings.HasPrefix(c.Path(), adminPath) {
		return "Admin"
	}
	return homeTitle
}

// formValues returns the posted fields with every value of repeated keys,
// for both multipart and urlencoded bodies.
func formValues(c *fiber.Ctx) (map[string][]string, []*multipart.FileHeader) {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value, form.File["media"]
	}

	values := make(map[string][]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		values[k] = append(values[k], string(value))
	})
	return values, nil
}

func firstValue(values map[string][]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func readMediaFiles(headers []*multipart.FileHeader) ([]transfer.MediaFile, error) {
	files := make([]transfer.MediaFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, transfer.MediaFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
