package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSponsorshipLifecycle(t *testing.T) {
	all := []SponsorshipStatus{SponsorshipPending, SponsorshipAccepted, SponsorshipRejected, SponsorshipCancelled}

	for _, from := range all {
		for _, to := range all {
			want := from == SponsorshipPending && to != SponsorshipPending
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		assert.Equal(t, from != SponsorshipPending, from.Terminal(), from)
	}
	assert.False(t, SponsorshipPending.CanTransitionTo("APPROVED"))
	assert.False(t, SponsorshipStatus("approved").Valid())
}

func TestEscrowFollowsStatus(t *testing.T) {
	assert.Equal(t, EscrowHeld, SponsorshipPending.Escrow())
	assert.Equal(t, EscrowReleased, SponsorshipAccepted.Escrow())
	assert.Equal(t, EscrowReturned, SponsorshipRejected.Escrow())
	assert.Equal(t, EscrowReturned, SponsorshipCancelled.Escrow())
}

func TestCampaignTransitions(t *testing.T) {
	cases := []struct {
		from, to CampaignStatus
		ok       bool
	}{
		{CampaignDraft, CampaignActive, true},
		{CampaignDraft, CampaignCancelled, true},
		{CampaignDraft, CampaignFunded, false},
		{CampaignActive, CampaignCompleted, true},
		{CampaignActive, CampaignCancelled, true},
		{CampaignActive, CampaignDraft, false},
		{CampaignActive, CampaignFunded, false},
		{CampaignFunded, CampaignCompleted, true},
		{CampaignFunded, CampaignCancelled, false},
		{CampaignCompleted, CampaignActive, false},
		{CampaignCancelled, CampaignActive, false},
		{CampaignActive, CampaignActive, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestGoalReached(t *testing.T) {
	c := Campaign{GoalAmount: decimal.NewFromInt(1000), CurrentFunding: decimal.RequireFromString("999.99")}
	assert.False(t, c.GoalReached())

	c.CurrentFunding = decimal.NewFromInt(1000)
	assert.True(t, c.GoalReached())
}

func TestPerkTierCapacity(t *testing.T) {
	two := 2
	tier := PerkTier{MaxSponsors: &two, CurrentSponsors: 1}
	assert.True(t, tier.HasCapacity())

	tier.CurrentSponsors = 2
	assert.False(t, tier.HasCapacity())

	tier.MaxSponsors = nil
	assert.True(t, tier.HasCapacity())
}
