package domain

import "github.com/shopspring/decimal"

// CampaignTotals aggregates the campaigns owned by one talent profile.
type CampaignTotals struct {
	Campaigns       int64           `json:"campaigns"`
	ActiveCampaigns int64           `json:"active_campaigns"`
	TotalRaised     decimal.Decimal `json:"total_raised"`
}

// ContributionTotals aggregates the contributions of one sponsor.
type ContributionTotals struct {
	Contributions    int64           `json:"contributions"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
}

// Dashboard is the summary shown to a signed-in user. Exactly one of
// Talent and Sponsor is set, depending on the profile role.
type Dashboard struct {
	Role            Role                `json:"role"`
	PendingRequests int64               `json:"pending_requests"`
	Talent          *CampaignTotals     `json:"talent,omitempty"`
	Sponsor         *ContributionTotals `json:"sponsor,omitempty"`
	Favorites       int64               `json:"favorites"`
}
