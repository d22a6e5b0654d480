package console

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/h2non/filetype"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
)

type ComposeState int

const (
	ComposeClosed ComposeState = iota
	ComposeOpenImmediate
	ComposeOpenScheduled
)

func (s ComposeState) String() string {
	switch s {
	case ComposeOpenImmediate:
		return "open-immediate"
	case ComposeOpenScheduled:
		return "open-scheduled"
	default:
		return "closed"
	}
}

const (
	alertTextRequired     = "Post text is required."
	alertDateTimeRequired = "Please choose a date/time or select Post Now."
	alertPlatformRequired = "Please select at least one social platform."
)

// ScheduleFunc receives a validated submission from the compose form.
type ScheduleFunc func(ctx context.Context, params transfer.ScheduleParameters)

// ComposeForm is the compose modal: closed, or open in "Post Now" or
// "Schedule" mode. It is not safe for concurrent use.
type ComposeForm struct {
	state      ComposeState
	text       string
	dateTime   *time.Time
	repeat     string
	social     []string
	files      []transfer.MediaFile
	immediate  bool
	onSchedule ScheduleFunc
	now        func() time.Time
	validate   *validator.Validate
}

func NewComposeForm(onSchedule ScheduleFunc) *ComposeForm {
	f := &ComposeForm{
		onSchedule: onSchedule,
		now:        time.Now,
		validate:   validator.New(),
	}
	f.reset()
	return f
}

func (f *ComposeForm) reset() {
	now := f.now()
	f.text = ""
	f.dateTime = &now
	f.repeat = transfer.RepeatNone
	f.social = nil
	f.files = nil
	f.immediate = false
}

func (f *ComposeForm) State() ComposeState { return f.state }

func (f *ComposeForm) IsOpen() bool { return f.state != ComposeClosed }

func (f *ComposeForm) Open() {
	if f.state != ComposeClosed {
		return
	}
	f.syncState()
}

// SetImmediate is the "Post Now" / "Schedule" toggle. It does nothing while
// the modal is closed.
func (f *ComposeForm) SetImmediate(immediate bool) {
	if f.state == ComposeClosed {
		return
	}
	f.immediate = immediate
	f.syncState()
}

func (f *ComposeForm) syncState() {
	if f.immediate {
		f.state = ComposeOpenImmediate
	} else {
		f.state = ComposeOpenScheduled
	}
}

func (f *ComposeForm) SetText(text string) { f.text = text }

func (f *ComposeForm) SetDateTime(t *time.Time) { f.dateTime = t }

func (f *ComposeForm) SetRepeat(repeat string) {
	if repeat == "" {
		repeat = transfer.RepeatNone
	}
	f.repeat = repeat
}

func (f *ComposeForm) SetSocial(social []string) {
	f.social = slices.Clone(social)
}

// AcceptFiles replaces the attachment list with the images and videos among
// files. Anything else is dropped.
func (f *ComposeForm) AcceptFiles(files []transfer.MediaFile) int {
	accepted := make([]transfer.MediaFile, 0, len(files))
	for _, file := range files {
		kind, err := filetype.Match(file.Data)
		if err != nil || !(filetype.IsImage(file.Data) || filetype.IsVideo(file.Data)) {
			slog.Info("rejected attachment", "file", file.Name)
			continue
		}
		if file.ContentType == "" || file.ContentType == "application/octet-stream" {
			file.ContentType = kind.MIME.Value
		}
		accepted = append(accepted, file)
	}
	f.files = accepted
	return len(accepted)
}

func (f *ComposeForm) Text() string { return f.text }
func (f *ComposeForm) DateTime() *time.Time { return f.dateTime }
func (f *ComposeForm) Repeat() string { return f.repeat }
func (f *ComposeForm) Social() []string { return slices.Clone(f.social) }
func (f *ComposeForm) Files() []transfer.MediaFile { return slices.Clone(f.files) }
func (f *ComposeForm) Immediate() bool { return f.immediate }
func (f *ComposeForm) HasSocial(platform string) bool { return slices.Contains(f.social, platform) }

func (f *ComposeForm) Title() string {
	if f.immediate {
		return "Post Now"
	}
	return "Schedule a Post"
}

func (f *ComposeForm) SubmitLabel() string {
	if f.immediate {
		return "Post"
	}
	return "Schedule"
}

// Submit checks text, then date/time, then platforms, and stops at the
// first failure with an *Alert. On success the schedule callback runs once
// and the form resets and closes.
func (f *ComposeForm) Submit(ctx context.Context) error {
	if f.state == ComposeClosed {
		return fmt.Errorf("compose form is closed")
	}
	if strings.TrimSpace(f.text) == "" {
		return alertf(alertTextRequired)
	}
	if !f.immediate && f.dateTime == nil {
		return alertf(alertDateTimeRequired)
	}
	if len(f.social) == 0 {
		return alertf(alertPlatformRequired)
	}

	params := transfer.ScheduleParameters{
		Text:      f.text,
		DateTime:  f.dateTime,
		Repeat:    f.repeat,
		Social:    slices.Clone(f.social),
		Assets:    f.files,
		Immediate: f.immediate,
	}
	if f.immediate {
		params.DateTime = nil
		params.Repeat = transfer.RepeatNone
	}

	if err := f.validate.Struct(params); err != nil {
		slog.Info(err.Error())
		return alertf("Invalid post: %s", validationMessage(err))
	}

	if f.onSchedule != nil {
		f.onSchedule(ctx, params)
	}

	f.reset()
	f.state = ComposeClosed
	return nil
}

// Cancel discards all input without submitting.
func (f *ComposeForm) Cancel() {
	f.reset()
	f.state = ComposeClosed
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "Repeat":
		return fmt.Sprintf("unknown repeat interval %q", fe.Value())
	case strings.HasPrefix(fe.Field(), "Social"):
		return fmt.Sprintf("unknown social platform %q", fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
