package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
	"sponsorhub/internal/core/port/mocks"
)

type campaignMocks struct {
	campaigns     *mocks.MockCampaignRepository
	tiers         *mocks.MockPerkTierRepository
	profiles      *mocks.MockProfileRepository
	contributions *mocks.MockContributionRepository
}

func newCampaignUseCase(t *testing.T) (*CampaignUseCase, campaignMocks) {
	m := campaignMocks{
		campaigns:     mocks.NewMockCampaignRepository(t),
		tiers:         mocks.NewMockPerkTierRepository(t),
		profiles:      mocks.NewMockProfileRepository(t),
		contributions: mocks.NewMockContributionRepository(t),
	}
	svc := NewCampaignUseCase(m.campaigns, m.tiers, m.profiles, m.contributions)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, m
}

func TestListCampaignsDefaults(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	m.campaigns.EXPECT().
		ListCampaigns(mock.Anything, domain.CampaignFilter{Status: domain.CampaignActive, Limit: 20, Query: "run"}).
		Return(nil, nil)

	list, err := svc.ListCampaigns(context.Background(), domain.CampaignFilter{Query: " run "})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListCampaignsAllStatuses(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	m.campaigns.EXPECT().
		ListCampaigns(mock.Anything, domain.CampaignFilter{Limit: 5, Offset: 10}).
		Return([]domain.Campaign{{Title: "a"}}, nil)

	list, err := svc.ListCampaigns(context.Background(), domain.CampaignFilter{Status: StatusAll, Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListCampaignsRejectsBadPaging(t *testing.T) {
	svc, _ := newCampaignUseCase(t)
	for _, f := range []domain.CampaignFilter{
		{Limit: 101},
		{Limit: -1},
		{Offset: -5},
		{Status: "OPEN"},
	} {
		_, err := svc.ListCampaigns(context.Background(), f)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", f)
	}
}

func TestCreateCampaignWithTiers(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	actor := uuid.New()

	m.profiles.EXPECT().GetProfile(mock.Anything, actor).Return(talent(actor), nil)
	m.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign"), mock.AnythingOfType("[]domain.PerkTier")).
		RunAndReturn(func(_ context.Context, c *domain.Campaign, tiers []domain.PerkTier) ([]domain.PerkTier, error) {
			for i := range tiers {
				tiers[i].CampaignID = c.ID
			}
			return tiers, nil
		})

	c, err := svc.CreateCampaign(context.Background(), actor, port.CreateCampaignReq{
		Title:      "Road to Paris",
		GoalAmount: money("1500.50"),
		PerkTiers: []port.PerkTierInput{
			{Name: "Bronze", Amount: money("50"), Perks: []string{" shout-out ", ""}},
			{Name: "Gold", Amount: money("500"), MaxSponsors: ptr(2), SortOrder: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, actor, c.OwnerID)
	assert.Equal(t, domain.CampaignActive, c.Status)
	assert.Equal(t, svc.now(), c.StartDate)

	want := []domain.PerkTier{
		{CampaignID: c.ID, Name: "Bronze", Amount: money("50"), Perks: []string{"shout-out"}},
		{CampaignID: c.ID, Name: "Gold", Amount: money("500"), MaxSponsors: ptr(2), Perks: []string{}, SortOrder: 1},
	}
	// decimal.Decimal and time.Time compare through their Equal methods
	if diff := cmp.Diff(want, c.PerkTiers, cmpopts.IgnoreFields(domain.PerkTier{}, "ID"), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("perk tiers mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateCampaignRejections(t *testing.T) {
	actor := uuid.New()
	valid := port.CreateCampaignReq{Title: "t", GoalAmount: money("100")}
	end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		profile *domain.Profile
		mutate  func(r *port.CreateCampaignReq)
		wantErr error
	}{
		{name: "no profile", profile: nil, wantErr: domain.ErrProfileRequired},
		{name: "sponsor role", profile: sponsor(actor), wantErr: domain.ErrForbidden},
		{name: "zero goal", profile: talent(actor), mutate: func(r *port.CreateCampaignReq) { r.GoalAmount = money("0") }, wantErr: domain.ErrInvalidInput},
		{name: "fractional cents", profile: talent(actor), mutate: func(r *port.CreateCampaignReq) { r.GoalAmount = money("10.001") }, wantErr: domain.ErrInvalidInput},
		{name: "funded status", profile: talent(actor), mutate: func(r *port.CreateCampaignReq) { r.Status = domain.CampaignFunded }, wantErr: domain.ErrInvalidInput},
		{name: "end before start", profile: talent(actor), mutate: func(r *port.CreateCampaignReq) { r.EndDate = &end }, wantErr: domain.ErrInvalidInput},
		{name: "bad tier cap", profile: talent(actor), mutate: func(r *port.CreateCampaignReq) {
			r.PerkTiers = []port.PerkTierInput{{Name: "x", Amount: money("1"), MaxSponsors: ptr(0)}}
		}, wantErr: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newCampaignUseCase(t)
			m.profiles.EXPECT().GetProfile(mock.Anything, actor).Return(tt.profile, nil)

			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			_, err := svc.CreateCampaign(context.Background(), actor, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateCampaignStatusTransitions(t *testing.T) {
	owner := uuid.New()
	tests := []struct {
		from, to domain.CampaignStatus
		wantErr  error
	}{
		{domain.CampaignDraft, domain.CampaignActive, nil},
		{domain.CampaignActive, domain.CampaignCompleted, nil},
		{domain.CampaignFunded, domain.CampaignCompleted, nil},
		{domain.CampaignActive, domain.CampaignActive, nil},
		{domain.CampaignActive, domain.CampaignFunded, domain.ErrInvalidTransition},
		{domain.CampaignCompleted, domain.CampaignActive, domain.ErrInvalidTransition},
		{domain.CampaignFunded, domain.CampaignCancelled, domain.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			svc, m := newCampaignUseCase(t)
			c := &domain.Campaign{ID: uuid.New(), OwnerID: owner, Status: tt.from, GoalAmount: money("10")}
			m.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
			if tt.wantErr == nil {
				m.campaigns.EXPECT().UpdateCampaign(mock.Anything, c).Return(nil)
			}

			got, err := svc.UpdateCampaign(context.Background(), owner, c.ID, port.UpdateCampaignReq{Status: &tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

func TestUpdateCampaignForbiddenForNonOwner(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	c := &domain.Campaign{ID: uuid.New(), OwnerID: uuid.New(), Status: domain.CampaignActive}
	m.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)

	_, err := svc.UpdateCampaign(context.Background(), uuid.New(), c.ID, port.UpdateCampaignReq{Title: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteCampaign(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	owner := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), OwnerID: owner}
	m.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	m.campaigns.EXPECT().DeleteCampaign(mock.Anything, c.ID).Return(domain.ErrConflict)

	err := svc.DeleteCampaign(context.Background(), owner, c.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGetCampaignNotFound(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	id := uuid.New()
	m.campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	_, err := svc.GetCampaign(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePerkTierCap(t *testing.T) {
	owner := uuid.New()
	campaignID := uuid.New()

	tests := []struct {
		name    string
		max     int
		want    *int
		wantErr error
	}{
		{name: "raise", max: 5, want: ptr(5)},
		{name: "remove cap", max: 0, want: nil},
		{name: "below current sponsors", max: 1, wantErr: domain.ErrConflict},
		{name: "negative", max: -1, wantErr: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newCampaignUseCase(t)
			tier := &domain.PerkTier{ID: uuid.New(), CampaignID: campaignID, Name: "Gold", Amount: money("10"), MaxSponsors: ptr(3), CurrentSponsors: 2}
			m.tiers.EXPECT().GetPerkTier(mock.Anything, tier.ID).Return(tier, nil)
			m.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&domain.Campaign{ID: campaignID, OwnerID: owner}, nil)
			if tt.wantErr == nil {
				m.tiers.EXPECT().UpdatePerkTier(mock.Anything, tier).Return(nil)
			}

			got, err := svc.UpdatePerkTier(context.Background(), owner, tier.ID, port.UpdatePerkTierReq{MaxSponsors: &tt.max})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.MaxSponsors)
		})
	}
}

func TestDeletePerkTierWithSponsors(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	owner := uuid.New()
	tier := &domain.PerkTier{ID: uuid.New(), CampaignID: uuid.New(), CurrentSponsors: 1}
	m.tiers.EXPECT().GetPerkTier(mock.Anything, tier.ID).Return(tier, nil)
	m.campaigns.EXPECT().GetCampaign(mock.Anything, tier.CampaignID).Return(&domain.Campaign{ID: tier.CampaignID, OwnerID: owner}, nil)

	err := svc.DeletePerkTier(context.Background(), owner, tier.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddPerkTierToClosedCampaign(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	owner := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), OwnerID: owner, Status: domain.CampaignCompleted}
	m.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)

	_, err := svc.AddPerkTier(context.Background(), owner, c.ID, port.PerkTierInput{Name: "x", Amount: money("1")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestListCampaignContributionsOwnerOnly(t *testing.T) {
	svc, m := newCampaignUseCase(t)
	c := &domain.Campaign{ID: uuid.New(), OwnerID: uuid.New()}
	m.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil).Times(2)
	m.contributions.EXPECT().ListContributionsByCampaign(mock.Anything, c.ID).Return(nil, nil)

	_, err := svc.ListCampaignContributions(context.Background(), uuid.New(), c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := svc.ListCampaignContributions(context.Background(), c.OwnerID, c.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
}
