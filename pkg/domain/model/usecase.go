package model

import (
	"strings"

	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type ListUserRepositoriesInput struct {
	Username string
}

func (x *ListUserRepositoriesInput) Validate() error {
	if x.Username == "" {
		return goerr.Wrap(types.ErrInvalidOption, "username is empty")
	}
	// the username becomes a single path segment of the upstream URL
	if x.Username == "." || x.Username == ".." || strings.ContainsAny(x.Username, "/?#") {
		return goerr.Wrap(types.ErrInvalidOption, "username is not a valid path segment",
			goerr.V("username", x.Username),
		)
	}
	return nil
}
