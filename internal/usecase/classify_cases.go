package usecase

import (
	"context"

	"github.com/aalvaropc/cartlab/internal/domain"
	ucexpect "github.com/aalvaropc/cartlab/internal/usecase/expect"
)

type ClassifyCases struct{}

func NewClassifyCases() *ClassifyCases {
	return &ClassifyCases{}
}

// Execute classifies every case in order and applies its expectation, if any.
// Expectation failures are reported in the results, not as an error.
func (uc *ClassifyCases) Execute(ctx context.Context, cases []domain.Case) ([]domain.CaseResult, error) {
	out := make([]domain.CaseResult, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out = append(out, ucexpect.Evaluate(c))
	}
	return out, nil
}
