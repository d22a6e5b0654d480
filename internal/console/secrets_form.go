package console

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/maheshrc27/scheduling-console/internal/models"
	"github.com/maheshrc27/scheduling-console/internal/service"
)

type SecretFieldView struct {
	Name  string
	Label string
	Type  string
	Value string
}

// SecretsForm holds the nine credential inputs of the admin page.
type SecretsForm struct {
	secrets service.SecretsService
	values  models.IntegrationSecrets
	mounted bool
}

func NewSecretsForm(secrets service.SecretsService) *SecretsForm {
	return &SecretsForm{secrets: secrets}
}

// Mount loads the stored record once. A record replaces every field; an
// absent record or a failed read leaves the current values.
func (f *SecretsForm) Mount(ctx context.Context) {
	if f.mounted {
		return
	}
	f.mounted = true

	data, err := f.secrets.Get(ctx)
	if err != nil {
		slog.Error("failed to load integration secrets", "error", err)
		return
	}
	if data != nil {
		f.values = *data
	}
}

// Set changes a single field and reports whether name is a known field.
func (f *SecretsForm) Set(name, value string) bool {
	field := f.values.Field(name)
	if field == nil {
		return false
	}
	*field = value
	return true
}

func (f *SecretsForm) Values() models.IntegrationSecrets {
	return f.values
}

func (f *SecretsForm) CreatedAt() *time.Time {
	return f.values.CreatedAt
}

func (f *SecretsForm) Fields() []SecretFieldView {
	views := make([]SecretFieldView, 0, len(models.SecretFields))
	for _, sf := range models.SecretFields {
		inputType := "text"
		if sf.Sensitive {
			inputType = "password"
		}
		views = append(views, SecretFieldView{
			Name:  sf.Name,
			Label: sf.Label,
			Type:  inputType,
			Value: *f.values.Field(sf.Name),
		})
	}
	return views
}

// Save replaces the stored secrets with the current nine fields.
func (f *SecretsForm) Save(ctx context.Context) error {
	values := f.values
	return f.secrets.Create(ctx, &values)
}

// Delete removes the loaded record, or every record when none was loaded,
// and clears the form.
func (f *SecretsForm) Delete(ctx context.Context) error {
	id := ""
	if f.values.ID > 0 {
		id = strconv.FormatInt(f.values.ID, 10)
	}
	if err := f.secrets.Delete(ctx, id); err != nil {
		return err
	}
	f.values = models.IntegrationSecrets{}
	return nil
}
