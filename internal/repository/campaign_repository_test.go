package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

var campaignRowColumns = []string{
	"id", "business_name", "business_type", "platform", "review_link",
	"language", "tone", "brand_voice", "trigger_type", "send_delay_hours",
	"follow_up_enabled", "follow_up_delay_days", "frequency_cap_days",
	"quiet_start", "quiet_end", "created_at", "updated_at",
}

func campaignRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(campaignRowColumns).AddRow(
		"11111111-1111-1111-1111-111111111111",
		"Mario's Pizzeria", "restaurant", "google",
		"https://g.page/marios/review", "en", "friendly", "",
		"after_service", 24, true, 3, 30, "21:00", "08:00",
		now, now,
	)
}

func TestCreateCampaignAssignsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs(
			"Mario's Pizzeria", "restaurant", "google",
			"https://g.page/marios/review", "en", "friendly", "",
			models.TriggerAfterService, 24, true, 3, 30, "21:00", "08:00",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("11111111-1111-1111-1111-111111111111", now, now))

	campaign := &models.Campaign{
		BusinessName: "Mario's Pizzeria",
		BusinessType: "restaurant",
		Platform:     "google",
		ReviewLink:   "https://g.page/marios/review",
		Language:     "en",
		Tone:         "friendly",
		Rules: models.CampaignRules{
			TriggerType:       models.TriggerAfterService,
			SendDelayHours:    24,
			FollowUpEnabled:   true,
			FollowUpDelayDays: 3,
			FrequencyCapDays:  30,
			QuietHours:        models.QuietHours{Start: "21:00", End: "08:00"},
		},
	}

	if err := repo.Create(context.Background(), campaign); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if campaign.ID == "" {
		t.Fatalf("expected id assigned from RETURNING")
	}
	if campaign.CreatedAt.IsZero() || campaign.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps assigned, got %+v", campaign)
	}
}

func TestGetCampaignByIDScansRules(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM campaigns WHERE id").
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnRows(campaignRow(now))

	campaign, err := repo.GetByID(context.Background(), "11111111-1111-1111-1111-111111111111")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if campaign.Rules.TriggerType != models.TriggerAfterService {
		t.Fatalf("expected trigger scanned, got %q", campaign.Rules.TriggerType)
	}
	if campaign.Rules.QuietHours.Start != "21:00" || campaign.Rules.QuietHours.End != "08:00" {
		t.Fatalf("expected quiet hours scanned, got %+v", campaign.Rules.QuietHours)
	}
}

func TestGetCampaignByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM campaigns WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows got %v", err)
	}
}

func TestListCampaignsAppliesPlatformFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM campaigns WHERE 1=1 AND platform = (.+) ORDER BY created_at DESC LIMIT").
		WithArgs("google", 50).
		WillReturnRows(campaignRow(now))

	campaigns, err := repo.List(context.Background(), interfaces.CampaignFilter{Platform: "google", Limit: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("expected 1 campaign got %d", len(campaigns))
	}
}

func TestDeleteCampaignNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepository(db)

	mock.ExpectExec("DELETE FROM campaigns WHERE id").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows got %v", err)
	}
}
