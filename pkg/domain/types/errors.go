package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrUserNotFound is returned only when the repository listing call reports that the user does not exist.
	ErrUserNotFound = goerr.New("user not found")

	// ErrUpstream covers every other failure of the upstream API: 4xx, 5xx, transport error or a body that can not be used.
	ErrUpstream = goerr.New("upstream API error")
)
