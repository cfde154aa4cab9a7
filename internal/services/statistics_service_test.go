package services

import (
	"context"
	"testing"
	"time"

	"holiday-api/internal/repositories"
	"holiday-api/internal/testutil"
)

func TestStatistics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewStatisticsService(repositories.NewStatisticsRepository(db))
	ctx := context.Background()

	paul := testutil.CreateParticipant(t, db, "Paul")
	gina := testutil.CreateParticipant(t, db, "Gina")
	pia := testutil.CreateParticipant(t, db, "Pia")

	monaco := testutil.CreateHoliday(t, db, paul, "Monaco 2024")
	testutil.Invite(t, db, monaco, gina, true)
	testutil.Invite(t, db, monaco, pia, false)

	stats, err := svc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}
	if stats.ActiveParticipants != 3 {
		t.Errorf("Expected 3 participants, got %d", stats.ActiveParticipants)
	}

	during, err := svc.GetStatisticsForDate(ctx, testutil.Date(2024, time.July, 4))
	if err != nil {
		t.Fatalf("GetStatisticsForDate returned error: %v", err)
	}
	if len(during) != 1 || during[0].Country != "Monaco" || during[0].ParticipantsByCountry != 2 {
		t.Errorf("Expected 2 accepted members in Monaco, got %+v", during)
	}

	after, err := svc.GetStatisticsForDate(ctx, testutil.Date(2024, time.August, 1))
	if err != nil {
		t.Fatalf("GetStatisticsForDate returned error: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("Expected no statistics after the holiday, got %+v", after)
	}
}
