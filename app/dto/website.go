package dto

type FeatureResponse struct {
	Key       string `json:"key"`
	Text      string `json:"text"`
	Included  bool   `json:"included"`
	Highlight bool   `json:"highlight,omitempty"`
}

type PlanQuoteResponse struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Popular           bool              `json:"popular"`
	Cycle             string            `json:"cycle"`
	MonthlyPrice      int64             `json:"monthly_price"`
	AnnualPrice       int64             `json:"annual_price"`
	DisplayedPrice    int64             `json:"displayed_price"`
	FormattedPrice    string            `json:"formatted_price"`
	SavingsPercent    *int64            `json:"savings_percent,omitempty"`
	SavingsLabel      string            `json:"savings_label,omitempty"`
	CTALabel          string            `json:"cta_label"`
	CTAHref           string            `json:"cta_href"`
	TopFeatures       []FeatureResponse `json:"top_features"`
	RemainingFeatures int               `json:"remaining_features"`
	Features          []FeatureResponse `json:"features"`
}

type ListPlanQuotesResponse struct {
	Cycle string              `json:"cycle"`
	Plans []PlanQuoteResponse `json:"plans"`
}

type PlanQuoteEnvelopeResponse struct {
	Plan PlanQuoteResponse `json:"plan"`
}

type ComparisonCellResponse struct {
	Plan     string `json:"plan"`
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

type ComparisonRowResponse struct {
	Key       string                   `json:"key"`
	Label     string                   `json:"label"`
	Highlight bool                     `json:"highlight"`
	Cells     []ComparisonCellResponse `json:"cells"`
}

type ComparisonResponse struct {
	Plans []string                `json:"plans"`
	Rows  []ComparisonRowResponse `json:"rows"`
}

type ContactReceiptResponse struct {
	ReferenceID string `json:"reference_id"`
	ReceivedAt  string `json:"received_at"`
	Message     string `json:"message"`
}

type ContactMessageResponse struct {
	ID          uint64  `json:"id"`
	ReferenceID string  `json:"reference_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     *string `json:"company,omitempty"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	RemoteIP    string  `json:"remote_ip"`
	CreatedAt   string  `json:"created_at"`
}

type ListContactMessagesResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
