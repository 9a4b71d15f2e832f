// Package banking compares business checking and savings accounts.
package banking

import (
	"context"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/resources"
)

// ToolCompare is the remote tool behind Compare.
const ToolCompare = "find_banking_accounts"

// AccountType selects which accounts to compare.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountBoth     AccountType = "both"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountBoth:
		return true
	}
	return false
}

// Resource is the banking API.
type Resource struct {
	base *resources.Base
}

// New returns a Resource calling tools through caller.
func New(caller resources.Caller, opts ...envelope.Option) *Resource {
	return &Resource{base: resources.NewBase(caller, opts...)}
}

// Compare validates req, then asks the service for matching accounts.
func (r *Resource) Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	return resources.Compare[CompareResponse](ctx, r.base, ToolCompare, req)
}

// Validate checks req and reports the first violated rule.
func Validate(req CompareRequest) error {
	if req.AccountType == "" {
		return apierror.InvalidField("accountType", "Account type is required")
	}
	if !req.AccountType.Valid() {
		return apierror.InvalidField("accountType", "Invalid account type. Must be one of: checking, savings, both")
	}
	return nil
}
