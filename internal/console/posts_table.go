package console

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maheshrc27/scheduling-console/internal/models"
	"github.com/maheshrc27/scheduling-console/internal/service"
)

const (
	textPreviewLength = 30
	emptyCell         = "—"
	scheduleLayout    = "2006-01-02 15:04"
)

type PostRow struct {
	ID       int64
	Text     string
	FullText string
	Schedule string
	Repeat   string
	Socials  string
	Media    string
	MediaURL string
}

// PostsTable renders a list it is given; Refresh is called after every
// delete attempt.
type PostsTable struct {
	Posts   []*models.ScheduledPost
	Refresh func(ctx context.Context)

	service service.PostService
	assets  service.AssetService
	loc     *time.Location
}

func (t *PostsTable) Empty() bool {
	return len(t.Posts) == 0
}

func (t *PostsTable) Rows(ctx context.Context) []PostRow {
	rows := make([]PostRow, 0, len(t.Posts))
	for _, p := range t.Posts {
		row := PostRow{
			ID:       p.ID,
			Text:     truncate(p.Text, textPreviewLength),
			FullText: p.Text,
			Schedule: emptyCell,
			Repeat:   p.Repeat,
			Socials:  strings.Join(p.SocialNames(), ", "),
			Media:    emptyCell,
		}
		if p.Schedule != nil {
			row.Schedule = p.Schedule.In(t.location()).Format(scheduleLayout)
		}
		if len(p.Assets) > 0 {
			row.Media = p.Assets[0].FileName
			row.MediaURL = t.previewURL(ctx, p.Assets[0])
		}
		rows = append(rows, row)
	}
	return rows
}

func (t *PostsTable) previewURL(ctx context.Context, asset models.PostAsset) string {
	if t.assets == nil || !t.assets.Enabled() {
		return ""
	}
	link, err := t.assets.PreviewURL(ctx, asset)
	if err != nil {
		slog.Info("no preview link for asset", "key", asset.Key, "error", err)
		return ""
	}
	return link
}

func (t *PostsTable) location() *time.Location {
	if t.loc == nil {
		return time.Local
	}
	return t.loc
}

// Delete asks the backend to remove a post. Failures are only logged; the
// refresh callback runs exactly once either way.
func (t *PostsTable) Delete(ctx context.Context, id int64) {
	if _, err := t.service.Remove(ctx, id); err != nil {
		slog.Error("Error deleting item", "id", id, "error", err)
	}

	if t.Refresh != nil {
		t.Refresh(ctx)
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
