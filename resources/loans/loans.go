// Package loans compares business loan offers and calculates payments.
package loans

import (
	"context"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/resources"
)

// Tool names.
const (
	ToolCompare   = "find_business_loan_options"
	ToolCalculate = "calculate_loan_payment"
)

// MinAmount is the smallest loan the service quotes.
const MinAmount = 5000

// Resource is the loans API.
type Resource struct {
	base *resources.Base
}

// New returns a Resource calling tools through caller.
func New(caller resources.Caller, opts ...envelope.Option) *Resource {
	return &Resource{base: resources.NewBase(caller, opts...)}
}

// Compare validates req, then asks the service for matching loan offers.
func (r *Resource) Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	return resources.Compare[CompareResponse](ctx, r.base, ToolCompare, req)
}

// Calculate computes payments for a loan. Inputs are not checked locally;
// the service validates them. No widget is attached.
func (r *Resource) Calculate(ctx context.Context, req CalculateRequest) (*CalculateResult, error) {
	result, _, err := resources.Invoke[CalculateResult](ctx, r.base, ToolCalculate, req)
	return result, err
}

// Validate checks req in order and reports the first violated rule.
func Validate(req CompareRequest) error {
	if !(req.Amount >= MinAmount) {
		return apierror.InvalidField("amount", "Loan amount must be at least $5,000")
	}
	if req.Purpose == "" {
		return apierror.InvalidField("purpose", "Loan purpose is required")
	}
	if req.Business == nil {
		return apierror.InvalidField("business", "Business information is required")
	}
	if req.Business.Revenue == nil || !(*req.Business.Revenue >= 0) {
		return apierror.InvalidField("business.revenue", "Valid business revenue is required")
	}
	if score := req.Business.CreditScore; score < 300 || score > 850 {
		return apierror.InvalidField("business.creditScore", "Credit score must be between 300 and 850")
	}
	return nil
}
