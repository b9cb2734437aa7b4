package errs

import (
	"errors"
	"fmt"

	pkgerr "github.com/pkg/errors"
)

var (
	NotConnected    = errors.New("client not connected")
	InvalidArgument = errors.New("invalid argument")

	BadRequest         = errors.New("bad request")
	Unauthorized       = errors.New("unauthorized")
	PaymentRequired    = errors.New("payment required")
	Forbidden          = errors.New("forbidden")
	NotFound           = errors.New("not found")
	Conflict           = errors.New("conflict")
	PreconditionFailed = errors.New("precondition failed")
	TooManyRequests    = errors.New("too many requests")
	ServerError        = errors.New("server error")
	HTTPError          = errors.New("http error")
)

// NewErr wrap constant error with an extra message
// use errors.Is(err1, NotConnected) to check if err belongs to any internal error
func NewErr(err error, format string, a ...any) error {
	return fmt.Errorf("%w; %s", err, fmt.Sprintf(format, a...))
}

func IsNotFoundError(err error) bool {
	return errors.Is(pkgerr.Cause(err), NotFound)
}

func IsUnauthorizedError(err error) bool {
	return errors.Is(pkgerr.Cause(err), Unauthorized)
}

func IsConnectError(err error) bool {
	var ce *ConnectError
	return errors.As(err, &ce)
}
