package urx

import "fmt"

// ErrorInfo is the payload carried on the error channel.
type ErrorInfo struct {
	Code int
	Text string
}

func (e ErrorInfo) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Text)
}
