package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedNamespace makes seeded ids stable so Seed can be re-run safely.
var seedNamespace = uuid.MustParse("6f1c1f7e-3a55-4d8e-9a56-5b3f1a1c2d00")

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s-%d", kind, n)))
}

// SeedStats reports how many rows Seed attempted to insert.
type SeedStats struct {
	Profiles  int
	Campaigns int
	PerkTiers int
	Requests  int
}

// Seed inserts demo marketplace data: talent and sponsor profiles,
// campaigns with perk tiers, and pending sponsorship requests. Existing
// rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) (SeedStats, error) {
	var stats SeedStats
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	sports := []string{"basketball", "football", "tennis", "athletics", "esports"}
	talentRoles := []string{"ATHLETE", "TEAM", "EVENT"}

	// talent profiles with one campaign each
	for i := 1; i <= 5; i++ {
		ownerID := seedID("talent", i)
		sport := sports[(i-1)%len(sports)]
		_, err := db.Exec(ctx, `INSERT INTO profiles
    (id, role, display_name, bio, location, sport)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			ownerID, talentRoles[(i-1)%len(talentRoles)], fmt.Sprintf("Talent %d", i),
			"Looking for partners for the upcoming season.", "Yerevan", sport)
		if err != nil {
			return stats, err
		}
		stats.Profiles++

		campaignID := seedID("campaign", i)
		goal := decimal.NewFromInt(int64(5000 * i))
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, title, description, sport, goal_amount, status, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6,'ACTIVE',$7,$8) ON CONFLICT DO NOTHING`,
			campaignID, ownerID, fmt.Sprintf("Road to the finals %d", i),
			"Travel, equipment and coaching for the season.", sport, goal,
			time.Now().AddDate(0, 0, -7), time.Now().AddDate(0, 2, 0))
		if err != nil {
			return stats, err
		}
		stats.Campaigns++

		tiers := []struct {
			name   string
			amount int64
			max    *int
			perks  []string
		}{
			{"Supporter", 100, nil, []string{"Thank-you post"}},
			{"Partner", 1000, intPtr(10), []string{"Logo on kit", "Social shout-out"}},
			{"Title sponsor", 5000, intPtr(1), []string{"Naming rights", "VIP tickets"}},
		}
		for j, tier := range tiers {
			_, err = db.Exec(ctx, `INSERT INTO perk_tiers
    (id, campaign_id, name, amount, max_sponsors, perks, sort_order)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
				seedID(fmt.Sprintf("tier-%d", i), j), campaignID, tier.name,
				decimal.NewFromInt(tier.amount), tier.max, tier.perks, j)
			if err != nil {
				return stats, err
			}
			stats.PerkTiers++
		}
	}

	// sponsor profiles with a few pending offers
	for i := 1; i <= 3; i++ {
		sponsorID := seedID("sponsor", i)
		_, err := db.Exec(ctx, `INSERT INTO profiles
    (id, role, display_name, company_name, website)
VALUES ($1,'SPONSOR',$2,$3,$4) ON CONFLICT DO NOTHING`,
			sponsorID, fmt.Sprintf("Sponsor %d", i), fmt.Sprintf("Acme %d LLC", i),
			fmt.Sprintf("https://sponsor%d.example.com", i))
		if err != nil {
			return stats, err
		}
		stats.Profiles++

		for k := 0; k < 2; k++ {
			campaign := r.Intn(5) + 1
			_, err = db.Exec(ctx, `INSERT INTO sponsorship_requests
    (id, campaign_id, perk_tier_id, sponsor_id, amount, message)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				seedID(fmt.Sprintf("request-%d", i), k), seedID("campaign", campaign),
				seedID(fmt.Sprintf("tier-%d", campaign), 0), sponsorID,
				decimal.NewFromInt(int64(100+r.Intn(400))), "Happy to support the season!")
			if err != nil {
				return stats, err
			}
			stats.Requests++
		}
	}
	return stats, nil
}

func intPtr(v int) *int { return &v }
