package console

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/scheduling-console/internal/models"
	"github.com/maheshrc27/scheduling-console/internal/service"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
)

// HomePage owns the fetched post list and the compose modal. It is the only
// writer of its list.
type HomePage struct {
	Compose *ComposeForm

	posts  service.PostService
	assets service.AssetService
	loc    *time.Location
	list   []*models.ScheduledPost
	alerts []string
}

func NewHomePage(posts service.PostService, assets service.AssetService, loc *time.Location) *HomePage {
	h := &HomePage{posts: posts, assets: assets, loc: loc}
	h.Compose = NewComposeForm(h.HandleSchedule)
	return h
}

func (h *HomePage) Mount(ctx context.Context) {
	h.Refresh(ctx)
}

// Refresh re-reads the post list; on failure the previous list stays.
func (h *HomePage) Refresh(ctx context.Context) {
	posts, err := h.posts.List(ctx)
	if err != nil {
		slog.Error("Error fetching scheduled posts", "error", err)
		return
	}
	h.list = posts
}

func (h *HomePage) Posts() []*models.ScheduledPost {
	return h.list
}

func (h *HomePage) Table() *PostsTable {
	return &PostsTable{
		Posts:   h.list,
		Refresh: h.Refresh,
		service: h.posts,
		assets:  h.assets,
		loc:     h.loc,
	}
}

// HandleSchedule sends a compose submission and refreshes the list when the
// backend accepts it.
func (h *HomePage) HandleSchedule(ctx context.Context, params transfer.ScheduleParameters) {
	slog.Info("Scheduled post data",
		"immediate", params.Immediate,
		"repeat", params.Repeat,
		"social", params.Social,
		"assets", len(params.Assets))

	if _, err := h.posts.Submit(ctx, &params); err != nil {
		slog.Error("Failed to schedule post", "error", err)
		h.Alert(err.Error())
		return
	}
	h.Refresh(ctx)
}

// SubmitCompose submits the compose modal and turns a validation failure
// into a page alert.
func (h *HomePage) SubmitCompose(ctx context.Context) error {
	err := h.Compose.Submit(ctx)
	if alert, ok := err.(*Alert); ok {
		h.Alert(alert.Message)
	}
	return err
}

func (h *HomePage) DeletePost(ctx context.Context, id int64) {
	h.Table().Delete(ctx, id)
}

func (h *HomePage) Alert(msg string) {
	h.alerts = append(h.alerts, msg)
}

// TakeAlerts returns pending alerts and clears them.
func (h *HomePage) TakeAlerts() []string {
	alerts := h.alerts
	h.alerts = nil
	return alerts
}

func (h *HomePage) Location() *time.Location {
	if h.loc == nil {
		return time.Local
	}
	return h.loc
}
