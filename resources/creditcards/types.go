package creditcards

import "github.com/SecureLend/sdk/resources"

// RewardsType is how a card pays rewards.
type RewardsType string

const (
	RewardsCashback RewardsType = "cashback"
	RewardsPoints   RewardsType = "points"
	RewardsMiles    RewardsType = "miles"
)

// SpendCategory is monthly spend in one category.
type SpendCategory struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Preferences narrow the results.
type Preferences struct {
	RewardsType  RewardsType `json:"rewardsType,omitempty"`
	AnnualFeeMax *float64    `json:"annualFeeMax,omitempty"`
	IntroAPR     *bool       `json:"introApr,omitempty"`
}

// CompareRequest is the input of find_credit_cards.
type CompareRequest struct {
	// CreditScore of the applicant, 300-850.
	CreditScore int `json:"creditScore"`
	// MonthlySpend in USD. Required; zero is a valid value.
	MonthlySpend    *float64        `json:"monthlySpend"`
	SpendCategories []SpendCategory `json:"spendCategories,omitempty"`
	Preferences     *Preferences    `json:"preferences,omitempty"`
	// Business is a partial business profile, passed through as given.
	Business   map[string]any `json:"business,omitempty"`
	MaxResults int            `json:"maxResults,omitempty"`
}

// BonusCategory earns Rate instead of the base rate.
type BonusCategory struct {
	Category string  `json:"category"`
	Rate     float64 `json:"rate"`
}

// Rewards of a card.
type Rewards struct {
	Type            RewardsType     `json:"type"`
	BaseRate        float64         `json:"baseRate"`
	BonusCategories []BonusCategory `json:"bonusCategories,omitempty"`
}

// Fees of a card.
type Fees struct {
	AnnualFee             resources.Money       `json:"annualFee"`
	ForeignTransactionFee *resources.Percentage `json:"foreignTransactionFee,omitempty"`
}

// APR of a card.
type APR struct {
	PurchaseAPR       resources.Percentage  `json:"purchaseApr"`
	IntroAPR          *resources.Percentage `json:"introApr,omitempty"`
	IntroPeriodMonths *int                  `json:"introPeriodMonths,omitempty"`
}

// Offer is one matched card.
type Offer struct {
	CardID                 string           `json:"cardId"`
	CardName               string           `json:"cardName"`
	Issuer                 string           `json:"issuer"`
	Rewards                Rewards          `json:"rewards"`
	Fees                   Fees             `json:"fees"`
	APR                    APR              `json:"apr"`
	EstimatedAnnualRewards *resources.Money `json:"estimatedAnnualRewards,omitempty"`
	ApprovalProbability    *float64         `json:"approvalProbability,omitempty"`
	ApplyURL               string           `json:"applyUrl"`
}

// CompareResponse is the result of Compare.
type CompareResponse struct {
	resources.WidgetField
	Cards []Offer `json:"cards"`
}
