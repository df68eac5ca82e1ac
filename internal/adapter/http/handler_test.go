package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
	"sponsorhub/internal/core/port/mocks"
)

const testToken = "good-token"

type testServer struct {
	handler      http.Handler
	profiles     *mocks.MockProfileUseCase
	campaigns    *mocks.MockCampaignUseCase
	sponsorships *mocks.MockSponsorshipUseCase
	favorites    *mocks.MockFavoriteUseCase
	dashboard    *mocks.MockDashboardUseCase
	verifier     *mocks.MockTokenVerifier
	user         uuid.UUID
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	s := &testServer{
		profiles:     mocks.NewMockProfileUseCase(t),
		campaigns:    mocks.NewMockCampaignUseCase(t),
		sponsorships: mocks.NewMockSponsorshipUseCase(t),
		favorites:    mocks.NewMockFavoriteUseCase(t),
		dashboard:    mocks.NewMockDashboardUseCase(t),
		verifier:     mocks.NewMockTokenVerifier(t),
		user:         uuid.New(),
	}
	svc := Services{
		Profiles:     s.profiles,
		Campaigns:    s.campaigns,
		Sponsorships: s.sponsorships,
		Favorites:    s.favorites,
		Dashboard:    s.dashboard,
		Verifier:     s.verifier,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = NewHandler(svc, opts, logger).Router()
	return s
}

// login makes testToken resolve to s.user.
func (s *testServer) login() {
	s.verifier.EXPECT().Verify(mock.Anything, testToken).
		Return(domain.Principal{UserID: s.user, Email: "user@example.com"}, nil).Maybe()
}

func (s *testServer) do(method, target, body string, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyReportsUnavailable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(Services{
		Verifier: mocks.NewMockTokenVerifier(t),
		Ready:    func(context.Context) error { return errors.New("connection refused") },
	}, Options{}, logger)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not ready", errorOf(t, rec))
}

func TestListCampaignsParsesQuery(t *testing.T) {
	s := newTestServer(t, Options{})
	owner := uuid.New()

	want := domain.CampaignFilter{
		Status:  domain.CampaignFunded,
		Sport:   "rowing",
		OwnerID: &owner,
		Query:   "olympic",
		Limit:   5,
		Offset:  10,
	}
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, want).Return([]domain.Campaign{}, nil)

	rec := s.do(http.MethodGet,
		fmt.Sprintf("/api/campaigns?status=funded&sport=rowing&owner_id=%s&q=olympic&limit=5&offset=10", owner), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListCampaignsRejectsBadQuery(t *testing.T) {
	s := newTestServer(t, Options{})

	for _, q := range []string{"limit=ten", "offset=x", "owner_id=nope"} {
		rec := s.do(http.MethodGet, "/api/campaigns?"+q, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestPublicRouteIgnoresInvalidToken(t *testing.T) {
	s := newTestServer(t, Options{})
	s.verifier.EXPECT().Verify(mock.Anything, "expired").Return(domain.Principal{}, domain.ErrUnauthorized)
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, domain.CampaignFilter{}).Return([]domain.Campaign{}, nil)

	rec := s.do(http.MethodGet, "/api/campaigns", "", "expired")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	s := newTestServer(t, Options{})
	s.verifier.EXPECT().Verify(mock.Anything, "expired").Return(domain.Principal{}, domain.ErrUnauthorized)
	s.verifier.EXPECT().Verify(mock.Anything, "unreachable").Return(domain.Principal{}, errors.New("dial tcp: timeout"))

	rec := s.do(http.MethodGet, "/api/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/profile", "", "expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/profile", "", "unreachable")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", errorOf(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("only sponsors: %w", domain.ErrForbidden), http.StatusForbidden},
		{domain.ErrProfileRequired, http.StatusForbidden},
		{fmt.Errorf("%w: title is required", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrInvalidTransition, http.StatusConflict},
		{domain.ErrTierFull, http.StatusConflict},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("pq: deadlock"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			s := newTestServer(t, Options{})
			id := uuid.New()
			s.campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(nil, tc.err)

			rec := s.do(http.MethodGet, "/api/campaigns/"+id.String(), "", "")
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, "internal error", errorOf(t, rec))
			} else {
				assert.Equal(t, tc.err.Error(), errorOf(t, rec))
			}
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()

	rec := s.do(http.MethodGet, "/api/campaigns/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/api/perk-tiers/123", "", testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCampaign(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()

	id := uuid.New()
	s.campaigns.EXPECT().CreateCampaign(mock.Anything, s.user, mock.MatchedBy(func(req port.CreateCampaignReq) bool {
		return req.Title == "Road to Paris" && req.GoalAmount.Equal(decimal.NewFromInt(5000)) && len(req.PerkTiers) == 1
	})).Return(&domain.Campaign{
		ID:         id,
		OwnerID:    s.user,
		Title:      "Road to Paris",
		GoalAmount: decimal.NewFromInt(5000),
		Status:     domain.CampaignActive,
	}, nil)

	body := `{"title":"Road to Paris","goal_amount":"5000","perk_tiers":[{"name":"Bronze","amount":"50"}]}`
	rec := s.do(http.MethodPost, "/api/campaigns", body, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id.String(), got["id"])
	assert.Equal(t, "5000", got["goal_amount"])
	assert.Equal(t, "0", got["current_funding"])
}

func TestCreateCampaignBadJSON(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()

	rec := s.do(http.MethodPost, "/api/campaigns", `{"title":`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCampaign(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	id := uuid.New()
	s.campaigns.EXPECT().DeleteCampaign(mock.Anything, s.user, id).Return(nil)

	rec := s.do(http.MethodDelete, "/api/campaigns/"+id.String(), "", testToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPerkTierRoutes(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	campaignID, tierID := uuid.New(), uuid.New()

	s.campaigns.EXPECT().ListPerkTiers(mock.Anything, campaignID).Return([]domain.PerkTier{{ID: tierID, Name: "Gold"}}, nil)
	s.campaigns.EXPECT().AddPerkTier(mock.Anything, s.user, campaignID, mock.MatchedBy(func(in port.PerkTierInput) bool {
		return in.Name == "Gold" && in.MaxSponsors != nil && *in.MaxSponsors == 3
	})).Return(&domain.PerkTier{ID: tierID}, nil)
	s.campaigns.EXPECT().UpdatePerkTier(mock.Anything, s.user, tierID, mock.MatchedBy(func(req port.UpdatePerkTierReq) bool {
		return req.Name == nil && req.MaxSponsors != nil && *req.MaxSponsors == 0
	})).Return(&domain.PerkTier{ID: tierID}, nil)
	s.campaigns.EXPECT().DeletePerkTier(mock.Anything, s.user, tierID).Return(domain.ErrConflict)

	rec := s.do(http.MethodGet, "/api/campaigns/"+campaignID.String()+"/perk-tiers", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/campaigns/"+campaignID.String()+"/perk-tiers",
		`{"name":"Gold","amount":"250","max_sponsors":3}`, testToken)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPatch, "/api/perk-tiers/"+tierID.String(), `{"max_sponsors":0}`, testToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/perk-tiers/"+tierID.String(), "", testToken)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateSponsorshipNormalisesStatus(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	id := uuid.New()
	s.sponsorships.EXPECT().UpdateRequestStatus(mock.Anything, s.user, id, domain.SponsorshipAccepted).
		Return(&domain.SponsorshipRequest{ID: id, Status: domain.SponsorshipAccepted, EscrowStatus: domain.EscrowReleased}, nil)

	rec := s.do(http.MethodPatch, "/api/sponsorship-requests/"+id.String(), `{"status":"accepted"}`, testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ACCEPTED", got["status"])
	assert.Equal(t, "RELEASED", got["escrow_status"])
}

func TestListSponsorships(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	s.sponsorships.EXPECT().ListRequests(mock.Anything, s.user, port.ListSponsorshipsReq{
		As:     port.AsTalent,
		Status: domain.SponsorshipPending,
	}).Return([]domain.SponsorshipRequest{}, nil)

	rec := s.do(http.MethodGet, "/api/sponsorship-requests?as=Talent&status=pending", "", testToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateSponsorship(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	campaignID := uuid.New()
	s.sponsorships.EXPECT().CreateRequest(mock.Anything, s.user, mock.MatchedBy(func(req port.CreateSponsorshipReq) bool {
		return req.CampaignID == campaignID && req.Amount.Equal(decimal.RequireFromString("99.50"))
	})).Return(nil, domain.ErrTierFull)

	body := fmt.Sprintf(`{"campaign_id":%q,"amount":"99.50"}`, campaignID)
	rec := s.do(http.MethodPost, "/api/sponsorship-requests", body, testToken)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.ErrTierFull.Error(), errorOf(t, rec))
}

func TestFavorites(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	campaignID := uuid.New()
	s.favorites.EXPECT().AddFavorite(mock.Anything, s.user, campaignID).Return(true, nil).Once()
	s.favorites.EXPECT().AddFavorite(mock.Anything, s.user, campaignID).Return(false, nil).Once()
	s.favorites.EXPECT().RemoveFavorite(mock.Anything, s.user, campaignID).Return(nil)

	body := fmt.Sprintf(`{"campaign_id":%q}`, campaignID)
	rec := s.do(http.MethodPost, "/api/favorites", body, testToken)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/favorites", body, testToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/favorites/"+campaignID.String(), "", testToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProfileAndDashboard(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	s.profiles.EXPECT().GetMyProfile(mock.Anything, s.user).Return(nil, domain.ErrNotFound)
	s.profiles.EXPECT().UpsertMyProfile(mock.Anything, s.user, port.UpsertProfileReq{
		Role:        domain.RoleSponsor,
		DisplayName: "Acme",
	}).Return(&domain.Profile{ID: s.user, Role: domain.RoleSponsor, DisplayName: "Acme"}, nil)
	s.dashboard.EXPECT().GetDashboard(mock.Anything, s.user).Return(nil, domain.ErrProfileRequired)

	rec := s.do(http.MethodGet, "/api/profile", "", testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/profile", `{"role":"sponsor","display_name":"Acme"}`, testToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/dashboard", "", testToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", errorOf(t, rec))

	rec = s.do(http.MethodPut, "/healthz", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, Options{AllowedOrigins: []string{"https://app.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/campaigns", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, Options{RateLimit: configs.RateLimit{RequestsPerSecond: 0.001, Burst: 1}})
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return([]domain.Campaign{}, nil).Once()

	rec := s.do(http.MethodGet, "/api/campaigns", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/campaigns", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// health checks are outside the limited group
	rec = s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampaignStatusIsCaseInsensitive(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	id := uuid.New()
	draft, cancelled := domain.CampaignDraft, domain.CampaignCancelled

	s.campaigns.EXPECT().CreateCampaign(mock.Anything, s.user, mock.MatchedBy(func(req port.CreateCampaignReq) bool {
		return req.Status == draft
	})).Return(&domain.Campaign{ID: id, Status: draft}, nil)
	s.campaigns.EXPECT().UpdateCampaign(mock.Anything, s.user, id, port.UpdateCampaignReq{Status: &cancelled}).
		Return(&domain.Campaign{ID: id, Status: cancelled}, nil)
	s.campaigns.EXPECT().UpdateCampaign(mock.Anything, s.user, id, port.UpdateCampaignReq{Title: ptr("Renamed")}).
		Return(&domain.Campaign{ID: id, Title: "Renamed"}, nil)
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, domain.CampaignFilter{Status: domain.CampaignFunded}).
		Return([]domain.Campaign{}, nil)

	rec := s.do(http.MethodPost, "/api/campaigns", `{"title":"Season","goal_amount":"100","status":"draft"}`, testToken)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPatch, "/api/campaigns/"+id.String(), `{"status":" cancelled "}`, testToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, "/api/campaigns/"+id.String(), `{"title":"Renamed"}`, testToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/campaigns?status=Funded", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCampaignsRejectsZeroLimit(t *testing.T) {
	s := newTestServer(t, Options{})
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, domain.CampaignFilter{}).Return([]domain.Campaign{}, nil)

	for _, q := range []string{"limit=0", "limit=-1", "limit="} {
		rec := s.do(http.MethodGet, "/api/campaigns?"+q, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}

	rec := s.do(http.MethodGet, "/api/campaigns", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSponsorshipsByCampaign(t *testing.T) {
	s := newTestServer(t, Options{})
	s.login()
	campaignID := uuid.New()
	s.sponsorships.EXPECT().ListRequests(mock.Anything, s.user, port.ListSponsorshipsReq{CampaignID: &campaignID}).
		Return([]domain.SponsorshipRequest{}, nil)

	rec := s.do(http.MethodGet, "/api/sponsorship-requests?campaign_id="+campaignID.String(), "", testToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/sponsorship-requests?campaign_id=abc", "", testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitIgnoresForwardedHeaders(t *testing.T) {
	s := newTestServer(t, Options{RateLimit: configs.RateLimit{RequestsPerSecond: 0.001, Burst: 1}})
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return([]domain.Campaign{}, nil).Once()

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, i)
	}
}

func TestRateLimitTrustsForwardedHeadersWhenConfigured(t *testing.T) {
	s := newTestServer(t, Options{
		RateLimit:         configs.RateLimit{RequestsPerSecond: 0.001, Burst: 1},
		TrustProxyHeaders: true,
	})
	s.campaigns.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return([]domain.Campaign{}, nil).Twice()

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, ip)
	}
}

func TestRateLimitRunsBeforeTokenVerification(t *testing.T) {
	s := newTestServer(t, Options{RateLimit: configs.RateLimit{RequestsPerSecond: 0.001, Burst: 1}})
	s.verifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(domain.Principal{}, domain.ErrUnauthorized).Once()

	rec := s.do(http.MethodGet, "/api/profile", "", "first")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/profile", "", "second")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func ptr[T any](v T) *T { return &v }
