package console

import "fmt"

// Alert is a blocking message shown to the user; the action that raised it
// was aborted.
type Alert struct {
	Message string
}

func (a *Alert) Error() string {
	return a.Message
}

func alertf(format string, args ...any) *Alert {
	return &Alert{Message: fmt.Sprintf(format, args...)}
}
