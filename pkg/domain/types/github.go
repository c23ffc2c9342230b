package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken  string
	GitHubAPIURL string
	RequestID    string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
