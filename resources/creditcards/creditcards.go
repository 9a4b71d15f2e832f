// Package creditcards compares business credit cards.
package creditcards

import (
	"context"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/resources"
)

// ToolCompare is the remote tool behind Compare.
const ToolCompare = "find_credit_cards"

// Resource is the credit cards API.
type Resource struct {
	base *resources.Base
}

// New returns a Resource calling tools through caller.
func New(caller resources.Caller, opts ...envelope.Option) *Resource {
	return &Resource{base: resources.NewBase(caller, opts...)}
}

// Compare validates req, then asks the service for matching cards.
func (r *Resource) Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	return resources.Compare[CompareResponse](ctx, r.base, ToolCompare, req)
}

// Validate checks req in order and reports the first violated rule.
func Validate(req CompareRequest) error {
	if req.CreditScore < 300 || req.CreditScore > 850 {
		return apierror.InvalidField("creditScore", "Valid credit score (300-850) is required")
	}
	if req.MonthlySpend == nil || !(*req.MonthlySpend >= 0) {
		return apierror.InvalidField("monthlySpend", "Monthly spend must be a positive number")
	}
	return nil
}
