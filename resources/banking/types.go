package banking

import "github.com/SecureLend/sdk/resources"

// AccountingSoftware the business uses, for integration matching.
type AccountingSoftware string

const (
	SoftwareQuickBooks AccountingSoftware = "quickbooks"
	SoftwareXero       AccountingSoftware = "xero"
	SoftwareFreshBooks AccountingSoftware = "freshbooks"
	SoftwareNone       AccountingSoftware = "none"
)

// CompareRequest is the input of find_banking_accounts.
type CompareRequest struct {
	AccountType         AccountType        `json:"accountType"`
	MonthlyRevenue      *float64           `json:"monthlyRevenue,omitempty"`
	MonthlyTransactions *int               `json:"monthlyTransactions,omitempty"`
	AverageBalance      *float64           `json:"averageBalance,omitempty"`
	FeaturesNeeded      []string           `json:"featuresNeeded,omitempty"`
	AccountingSoftware  AccountingSoftware `json:"accountingSoftware,omitempty"`
	MaxResults          int                `json:"maxResults,omitempty"`
}

// InterestRate of an account.
type InterestRate struct {
	APY *resources.Percentage `json:"apy,omitempty"`
}

// RatesAndFees of an account.
type RatesAndFees struct {
	InterestRate        *InterestRate    `json:"interestRate,omitempty"`
	MonthlyFee          *resources.Money `json:"monthlyFee,omitempty"`
	FeeWaiverConditions []string         `json:"feeWaiverConditions,omitempty"`
	MinimumBalance      *resources.Money `json:"minimumBalance,omitempty"`
}

// MobileApp availability and store rating.
type MobileApp struct {
	Available bool     `json:"available"`
	Rating    *float64 `json:"rating,omitempty"`
}

// Features of an account.
type Features struct {
	OnlineBanking          *bool      `json:"onlineBanking,omitempty"`
	MobileApp              *MobileApp `json:"mobileApp,omitempty"`
	AccountingIntegrations []string   `json:"accountingIntegrations,omitempty"`
}

// Matching is the server's fit assessment.
type Matching struct {
	MatchScore           *float64         `json:"matchScore,omitempty"`
	EstimatedMonthlyCost *resources.Money `json:"estimatedMonthlyCost,omitempty"`
	Pros                 []string         `json:"pros,omitempty"`
	Cons                 []string         `json:"cons,omitempty"`
}

// Account is one matched bank account.
type Account struct {
	AccountID    string                `json:"accountId"`
	Bank         resources.Institution `json:"bank"`
	Account      resources.Product     `json:"account"`
	RatesAndFees RatesAndFees          `json:"ratesAndFees"`
	Features     *Features             `json:"features,omitempty"`
	Matching     *Matching             `json:"matching,omitempty"`
}

// Summary aggregates the accounts.
type Summary struct {
	LowestMonthlyCost       float64 `json:"lowestMonthlyCost"`
	HighestAPY              float64 `json:"highestApy"`
	BestForHighTransactions string  `json:"bestForHighTransactions,omitempty"`
	BestForInterest         string  `json:"bestForInterest,omitempty"`
}

// CompareResponse is the result of Compare.
type CompareResponse struct {
	resources.WidgetField
	Accounts []Account `json:"accounts"`
	Summary  Summary   `json:"summary"`
}
