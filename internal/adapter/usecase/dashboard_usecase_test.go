package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port/mocks"
)

func TestDashboardForTalent(t *testing.T) {
	stats := mocks.NewMockStatsRepository(t)
	profiles := mocks.NewMockProfileRepository(t)
	actor := uuid.New()

	profiles.EXPECT().GetProfile(mock.Anything, actor).Return(talent(actor), nil)
	stats.EXPECT().
		CountSponsorshipRequests(mock.Anything, domain.SponsorshipFilter{OwnerID: &actor, Status: domain.SponsorshipPending}).
		Return(3, nil)
	stats.EXPECT().CountFavorites(mock.Anything, actor).Return(1, nil)
	stats.EXPECT().CampaignTotals(mock.Anything, actor).
		Return(domain.CampaignTotals{Campaigns: 2, ActiveCampaigns: 1, TotalRaised: money("750")}, nil)

	d, err := NewDashboardUseCase(stats, profiles).GetDashboard(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAthlete, d.Role)
	assert.EqualValues(t, 3, d.PendingRequests)
	assert.EqualValues(t, 1, d.Favorites)
	require.NotNil(t, d.Talent)
	assert.EqualValues(t, 2, d.Talent.Campaigns)
	assert.Nil(t, d.Sponsor)
}

func TestDashboardForSponsor(t *testing.T) {
	stats := mocks.NewMockStatsRepository(t)
	profiles := mocks.NewMockProfileRepository(t)
	actor := uuid.New()

	profiles.EXPECT().GetProfile(mock.Anything, actor).Return(sponsor(actor), nil)
	stats.EXPECT().
		CountSponsorshipRequests(mock.Anything, domain.SponsorshipFilter{SponsorID: &actor, Status: domain.SponsorshipPending}).
		Return(0, nil)
	stats.EXPECT().CountFavorites(mock.Anything, actor).Return(4, nil)
	stats.EXPECT().ContributionTotals(mock.Anything, actor).
		Return(domain.ContributionTotals{Contributions: 5, TotalContributed: money("1200")}, nil)

	d, err := NewDashboardUseCase(stats, profiles).GetDashboard(context.Background(), actor)
	require.NoError(t, err)
	require.NotNil(t, d.Sponsor)
	assert.True(t, d.Sponsor.TotalContributed.Equal(money("1200")))
	assert.Nil(t, d.Talent)
}

func TestDashboardPropagatesErrors(t *testing.T) {
	stats := mocks.NewMockStatsRepository(t)
	profiles := mocks.NewMockProfileRepository(t)
	actor := uuid.New()
	boom := errors.New("boom")

	profiles.EXPECT().GetProfile(mock.Anything, actor).Return(sponsor(actor), nil)
	stats.EXPECT().CountSponsorshipRequests(mock.Anything, mock.Anything).Return(0, boom)
	stats.EXPECT().CountFavorites(mock.Anything, actor).Return(0, nil)
	stats.EXPECT().ContributionTotals(mock.Anything, actor).Return(domain.ContributionTotals{}, nil)

	_, err := NewDashboardUseCase(stats, profiles).GetDashboard(context.Background(), actor)
	assert.ErrorIs(t, err, boom)
}

func TestDashboardRequiresProfile(t *testing.T) {
	profiles := mocks.NewMockProfileRepository(t)
	actor := uuid.New()
	profiles.EXPECT().GetProfile(mock.Anything, actor).Return(nil, nil)

	_, err := NewDashboardUseCase(mocks.NewMockStatsRepository(t), profiles).GetDashboard(context.Background(), actor)
	assert.ErrorIs(t, err, domain.ErrProfileRequired)
}
