package githubapi

import (
	"net/http"

	"github.com/m-mizutani/branchscope/pkg/domain/types"
)

const (
	apiVersion      = "2022-11-28"
	acceptMediaType = "application/vnd.github+json"
)

// headerTransport sets headers required by GitHub REST API on every request.
type headerTransport struct {
	base  http.RoundTripper
	token types.GitHubToken
}

func (x *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("Accept", acceptMediaType)
	if x.token != "" {
		req.Header.Set("Authorization", "Bearer "+string(x.token))
	}

	return x.base.RoundTrip(req)
}
