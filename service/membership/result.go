package membership

import "fmt"

type Result int

const (
	ResultCheckFailed Result = iota
	ResultDenied
	ResultAllowed
)

func (r Result) String() (s string) {
	switch r {
	case ResultCheckFailed:
		s = "CheckFailed"
	case ResultDenied:
		s = "Denied"
	case ResultAllowed:
		s = "Allowed"
	default:
		s = fmt.Sprintf("Result(%d)", int(r))
	}
	return
}
