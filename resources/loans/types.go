package loans

import "github.com/SecureLend/sdk/resources"

// Purpose is what the loan will fund.
type Purpose string

const (
	PurposeWorkingCapital      Purpose = "working_capital"
	PurposeEquipmentPurchase   Purpose = "equipment_purchase"
	PurposeRealEstate          Purpose = "real_estate"
	PurposeBusinessAcquisition Purpose = "business_acquisition"
	PurposeInventory           Purpose = "inventory"
	PurposeExpansion           Purpose = "expansion"
	PurposeDebtConsolidation   Purpose = "debt_consolidation"
	PurposePayroll             Purpose = "payroll"
	PurposeOther               Purpose = "other"
)

// Business describes the applicant.
type Business struct {
	// Revenue is annual revenue in USD. Required; zero is a valid value.
	Revenue *float64 `json:"revenue"`
	// CreditScore is the owner's score, 300-850. Required.
	CreditScore int `json:"creditScore"`
	// TimeInBusiness is in months.
	TimeInBusiness int                 `json:"timeInBusiness"`
	Industry       string              `json:"industry,omitempty"`
	EntityType     string              `json:"entityType,omitempty"`
	Location       *resources.Location `json:"location,omitempty"`
}

// CompareRequest is the input of find_business_loan_options.
type CompareRequest struct {
	// Amount requested in USD, at least 5000.
	Amount               float64   `json:"amount"`
	Purpose              Purpose   `json:"purpose"`
	Business             *Business `json:"business"`
	TermPreferenceMonths int       `json:"termPreferenceMonths,omitempty"`
	CollateralAvailable  *bool     `json:"collateralAvailable,omitempty"`
	MaxResults           int       `json:"maxResults,omitempty"`
}

// InterestRate of an offer.
type InterestRate struct {
	Type string               `json:"type"` // fixed or variable
	Rate resources.Percentage `json:"rate"`
	APR  resources.Percentage `json:"apr"`
}

// Payment is a recurring installment.
type Payment struct {
	Amount    resources.Money `json:"amount"`
	Frequency string          `json:"frequency"`
}

// Terms of an offer.
type Terms struct {
	Amount       resources.Money `json:"amount"`
	InterestRate InterestRate    `json:"interestRate"`
	TermMonths   int             `json:"termMonths"`
	Payment      *Payment        `json:"payment,omitempty"`
	TotalCost    resources.Money `json:"totalCost"`
}

// OriginationFee is given as an amount, a percentage, or both.
type OriginationFee struct {
	Amount     *resources.Money      `json:"amount,omitempty"`
	Percentage *resources.Percentage `json:"percentage,omitempty"`
}

// Fees of an offer.
type Fees struct {
	Origination *OriginationFee  `json:"origination,omitempty"`
	Processing  *resources.Money `json:"processing,omitempty"`
}

// Matching is the server's fit assessment for the applicant.
type Matching struct {
	ApprovalProbability float64  `json:"approvalProbability"`
	MatchScore          float64  `json:"matchScore"`
	MatchReasons        []string `json:"matchReasons,omitempty"`
}

// FundingSpeed describes how quickly funds arrive.
type FundingSpeed struct {
	Description string `json:"description"`
}

// Process describes how to apply.
type Process struct {
	ApplicationURL string        `json:"applicationUrl,omitempty"`
	FundingSpeed   *FundingSpeed `json:"fundingSpeed,omitempty"`
}

// Offer is one loan product matched to the applicant.
type Offer struct {
	OfferID  string                `json:"offerId"`
	Lender   resources.Institution `json:"lender"`
	Product  resources.Product     `json:"product"`
	Terms    Terms                 `json:"terms"`
	Fees     *Fees                 `json:"fees,omitempty"`
	Matching Matching              `json:"matching"`
	Process  *Process              `json:"process,omitempty"`
	// Details holds lender-specific data not modeled above.
	Details map[string]any `json:"details,omitempty"`
}

// Summary aggregates the offers.
type Summary struct {
	TotalOffers             int     `json:"totalOffers"`
	BestRate                float64 `json:"bestRate"`
	BestApprovalProbability float64 `json:"bestApprovalProbability"`
	FastestFunding          string  `json:"fastestFunding"`
}

// Metadata identifies the query server side.
type Metadata struct {
	QueryID   string `json:"queryId"`
	Timestamp string `json:"timestamp"`
}

// CompareResponse is the result of Compare.
type CompareResponse struct {
	resources.WidgetField
	Offers   []Offer  `json:"offers"`
	Summary  Summary  `json:"summary"`
	Metadata Metadata `json:"metadata"`
}

// CalculationFees are one-off fees included in the APR.
type CalculationFees struct {
	Origination float64 `json:"origination,omitempty"`
	Processing  float64 `json:"processing,omitempty"`
}

// CalculateRequest is the input of calculate_loan_payment.
type CalculateRequest struct {
	Amount     float64          `json:"amount"`
	Rate       float64          `json:"rate"`
	TermMonths int              `json:"termMonths"`
	Fees       *CalculationFees `json:"fees,omitempty"`
}

// AmortizationRow is one month of the schedule.
type AmortizationRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// CalculateResult is the result of Calculate.
type CalculateResult struct {
	MonthlyPayment       float64           `json:"monthlyPayment"`
	TotalInterest        float64           `json:"totalInterest"`
	TotalCost            float64           `json:"totalCost"`
	APR                  float64           `json:"apr"`
	AmortizationSchedule []AmortizationRow `json:"amortizationSchedule,omitempty"`
}
