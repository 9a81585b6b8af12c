package prng

import (
	"os"

	"github.com/stvp/rollbar"
)

// SuppressErrorReporting is a global flag to prevent the client from sending
// unexpected errors to Rollbar.  Data is anonymous and consists only of a
// stack trace to identify the source of the problem.
var SuppressErrorReporting bool

// ErrorReporter sends unexpected errors to an external crash reporting
// service.  Caller errors such as an inverted range are never reported.
type ErrorReporter interface {
	ReportError(err error)
}

type errorService struct{}

func init() {
	switch env := os.Getenv("PRNG_ENVIRONMENT"); env {
	case "development":
		rollbar.Environment = "development"
	default:
		rollbar.Environment = "production"
	}
	rollbar.Token = os.Getenv("PRNG_ROLLBAR_TOKEN")
}

// ReportError will send the result of an unexpected error to Rollbar.
// Nothing is sent when no token is configured.
func (e errorService) ReportError(err error) {
	if SuppressErrorReporting || rollbar.Token == "" || err == nil {
		return
	}
	rollbar.Error(rollbar.ERR, err)
}

// Wait blocks until queued error reports are sent
func (e errorService) Wait() {
	rollbar.Wait()
}
