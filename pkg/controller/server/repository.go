package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/branchscope/pkg/domain/interfaces"
	"github.com/m-mizutani/branchscope/pkg/domain/model"
	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/branchscope/pkg/utils/errutil"
	"github.com/m-mizutani/branchscope/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const upstreamErrorMessage = "Cannot realize request due to github api error, try later."

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func handleListUserRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username, err := usernameParam(r)
		if err != nil {
			code, msg := toErrorResponse(ctx, username, err)
			writeJSON(w, code, &errorResponse{Status: code, Message: msg})
			return
		}

		repos, err := uc.ListUserRepositories(ctx, &model.ListUserRepositoriesInput{
			Username: username,
		})
		if err != nil {
			code, msg := toErrorResponse(ctx, username, err)
			writeJSON(w, code, &errorResponse{Status: code, Message: msg})
			return
		}

		writeJSON(w, http.StatusOK, repos)
	}
}

// usernameParam returns the decoded username. chi gives the raw segment when the request path has escaped characters.
func usernameParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "username")
	username, err := url.PathUnescape(raw)
	if err != nil {
		return raw, goerr.Wrap(types.ErrInvalidOption, "failed to decode username",
			goerr.V("username", raw),
			goerr.V("error", err),
		)
	}
	return username, nil
}

// toErrorResponse decides status code and message. Upstream details are logged and never returned to the caller.
func toErrorResponse(ctx context.Context, username string, err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrUserNotFound):
		logging.From(ctx).Info("user not found", slog.String("username", username))
		return http.StatusNotFound, fmt.Sprintf("No user with username '%s', has been found!", username)

	case errors.Is(err, types.ErrInvalidOption):
		logging.From(ctx).Info("invalid request", slog.Any("error", err))
		return http.StatusBadRequest, "Invalid username"

	default:
		errutil.HandleError(ctx, "fail to list repositories of user", err)
		return http.StatusInternalServerError, upstreamErrorMessage
	}
}
