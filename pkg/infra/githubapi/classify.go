package githubapi

import (
	"net/http"

	"github.com/google/go-github/v53/github"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeNotFound
	outcomeUpstreamError
)

func (x outcome) String() string {
	switch x {
	case outcomeSuccess:
		return "success"
	case outcomeNotFound:
		return "not_found"
	default:
		return "upstream_error"
	}
}

// classify decides the outcome of one upstream call. statusCode is 0 when no response was received. decoded is false when the body was empty or null: an empty list must come as `[]`.
func classify(statusCode int, err error, decoded bool) outcome {
	switch {
	case statusCode == http.StatusNotFound:
		return outcomeNotFound
	case statusCode < 200 || statusCode >= 300:
		return outcomeUpstreamError
	case err != nil || !decoded:
		return outcomeUpstreamError
	default:
		return outcomeSuccess
	}
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
