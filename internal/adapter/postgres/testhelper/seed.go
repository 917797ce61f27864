package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates a free-plan account with profile_limit 1.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return SeedAccountWithPlan(t, pool, domain.PlanFree, 1)
}

// SeedAccountWithPlan creates an account on the given plan and limit.
func SeedAccountWithPlan(t *testing.T, pool *pgxpool.Pool, plan domain.Plan, limit int) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	acc := domain.Account{
		ID:               uuid.New(),
		Email:            "account-" + suffix + "@example.com",
		FullName:         "Test Account " + suffix,
		SubscriptionPlan: plan,
		ProfileLimit:     limit,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, email, full_name, subscription_plan, profile_limit, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		acc.ID, acc.Email, acc.FullName, string(acc.SubscriptionPlan), acc.ProfileLimit, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return acc
}

// SeedRole assigns role to the account.
func SeedRole(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, role domain.Role) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`,
		userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRole: %v", err)
	}
}

// SeedProfile creates a person profile owned by ownerID and bumps the owner's
// profile_count the way the service does.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Type:        domain.ProfileTypePerson,
		Name:        "Jane Doe " + suffix,
		JobTitle:    "Engineer",
		Website:     "https://jane.example.com",
		BioNotes:    "Likes distributed systems.",
		SocialLinks: domain.SocialLinks{"https://x.com/jane" + suffix},
		Slug:        "jane-doe-" + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bio_profiles (id, owner_id, type, name, job_title, website, bio_notes, social_links, slug, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.OwnerID, string(p.Type), p.Name, p.JobTitle, p.Website, p.BioNotes, p.SocialLinks.JSON(), p.Slug, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	_, err = pool.Exec(ctx, `UPDATE accounts SET profile_count = profile_count + 1 WHERE id = $1`, ownerID)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile bump count: %v", err)
	}
	return p
}

// PublishProfile marks the profile as published.
func PublishProfile(t *testing.T, pool *pgxpool.Pool, profileID uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`UPDATE bio_profiles SET published = true WHERE id = $1`, profileID,
	); err != nil {
		t.Fatalf("testhelper: PublishProfile: %v", err)
	}
}

// SeedBiography stores a biography of the given kind with the given creation time.
func SeedBiography(t *testing.T, pool *pgxpool.Pool, profileID uuid.UUID, kind domain.BioType, content string, createdAt time.Time) domain.Biography {
	t.Helper()

	b := domain.Biography{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Type:        kind,
		Tone:        domain.ToneProfessional,
		Content:     content,
		GeneratedAt: createdAt,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO biographies (id, profile_id, bio_type, tone, content, generated_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.ProfileID, string(b.Type), string(b.Tone), b.Content, b.GeneratedAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBiography: %v", err)
	}
	return b
}

// SeedPressKit creates a press kit for the profile with default settings.
func SeedPressKit(t *testing.T, pool *pgxpool.Pool, p domain.Profile, published bool) domain.PressKit {
	t.Helper()

	kit := domain.PressKit{
		ID:               uuid.New(),
		ProfileID:        p.ID,
		Slug:             domain.PressKitSlug(p.Slug),
		PressKitSettings: domain.DefaultPressKitSettings(),
		IsPublished:      published,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO press_kits (id, profile_id, slug, is_published) VALUES ($1, $2, $3, $4)`,
		kit.ID, kit.ProfileID, kit.Slug, kit.IsPublished,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPressKit: %v", err)
	}
	return kit
}

// CountRows returns the number of rows in table matching the profile.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, profileID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE profile_id = $1`, profileID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
