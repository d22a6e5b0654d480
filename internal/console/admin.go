package console

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/scheduling-console/internal/service"
)

// AdminPage holds the secrets form for the current admin visit.
type AdminPage struct {
	Form *SecretsForm

	secrets service.SecretsService
	alerts  []string
	notices []string
}

func NewAdminPage(secrets service.SecretsService) *AdminPage {
	return &AdminPage{secrets: secrets, Form: NewSecretsForm(secrets)}
}

// Mount starts a new visit: a fresh form, loaded once from the backend.
func (a *AdminPage) Mount(ctx context.Context) {
	a.Form = NewSecretsForm(a.secrets)
	a.Form.Mount(ctx)
}

// Save applies the submitted inputs field by field and replaces the stored
// secrets with the result.
func (a *AdminPage) Save(ctx context.Context, values map[string]string) error {
	for name, value := range values {
		a.Form.Set(name, value)
	}

	if err := a.Form.Save(ctx); err != nil {
		slog.Error("failed to save integration secrets", "error", err)
		a.alerts = append(a.alerts, err.Error())
		return err
	}
	a.notices = append(a.notices, "Secrets saved.")
	return nil
}

func (a *AdminPage) Delete(ctx context.Context) error {
	if err := a.Form.Delete(ctx); err != nil {
		slog.Error("failed to delete integration secrets", "error", err)
		a.alerts = append(a.alerts, err.Error())
		return err
	}
	a.notices = append(a.notices, "Secrets deleted.")
	return nil
}

func (a *AdminPage) TakeMessages() (alerts, notices []string) {
	alerts, notices = a.alerts, a.notices
	a.alerts, a.notices = nil, nil
	return alerts, notices
}
