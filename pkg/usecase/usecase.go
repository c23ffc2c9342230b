package usecase

import (
	"github.com/m-mizutani/branchscope/pkg/infra"
)

const DefaultBranchConcurrency = 4

type UseCase struct {
	clients           *infra.Clients
	branchConcurrency int
}

type Option func(*UseCase)

// WithBranchConcurrency sets the maximum number of branch listing calls in flight for one request. 1 fetches branches sequentially.
func WithBranchConcurrency(n int) Option {
	return func(x *UseCase) {
		x.branchConcurrency = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:           clients,
		branchConcurrency: DefaultBranchConcurrency,
	}

	for _, opt := range options {
		opt(uc)
	}
	if uc.branchConcurrency < 1 {
		uc.branchConcurrency = 1
	}

	return uc
}
