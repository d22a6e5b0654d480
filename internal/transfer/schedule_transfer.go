package transfer

import "time"

const (
	RepeatNone    = "none"
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
)

const (
	PlatformInstagram = "instagram"
	PlatformX         = "x"
	PlatformBluesky   = "bluesky"
)

type Option struct {
	Value string
	Label string
}

var RepeatOptions = []Option{
	{Value: RepeatNone, Label: "None"},
	{Value: RepeatDaily, Label: "Daily"},
	{Value: RepeatWeekly, Label: "Weekly"},
	{Value: RepeatMonthly, Label: "Monthly"},
}

var SocialOptions = []Option{
	{Value: PlatformInstagram, Label: "Instagram"},
	{Value: PlatformX, Label: "X (Twitter)"},
	{Value: PlatformBluesky, Label: "Bluesky"},
}

// ScheduleParameters is one compose submission. When Immediate is set,
// DateTime is nil and Repeat is "none".
type ScheduleParameters struct {
	Text      string      `validate:"required"`
	DateTime  *time.Time  `validate:"required_if=Immediate false"`
	Repeat    string      `validate:"oneof=none daily weekly monthly"`
	Social    []string    `validate:"min=1,dive,oneof=instagram x bluesky"`
	Assets    []MediaFile `validate:"-"`
	Immediate bool
}

// MediaFile is an attachment kept byte-for-byte as it was uploaded.
type MediaFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (m MediaFile) Size() int {
	return len(m.Data)
}
