package repositories

import (
	"context"
	"testing"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/testutil"
)

func TestParticipateRepository_DeleteByParticipantInHoliday(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewParticipateRepository(db)
	ctx := context.Background()

	alice := testutil.CreateParticipant(t, db, "Alice")
	bob := testutil.CreateParticipant(t, db, "Bob")
	lisbon := testutil.CreateHoliday(t, db, alice, "Lisbon")
	porto := testutil.CreateHoliday(t, db, alice, "Porto")
	testutil.Invite(t, db, lisbon, bob, true)

	tram := testutil.CreateActivity(t, db, lisbon, "Tram 28")
	belem := testutil.CreateActivity(t, db, lisbon, "Belem")
	cellar := testutil.CreateActivity(t, db, porto, "Port cellar")
	testutil.Join(t, db, tram, alice)
	testutil.Join(t, db, belem, alice)
	testutil.Join(t, db, cellar, alice)
	testutil.Join(t, db, tram, bob)

	if err := repo.DeleteByParticipantInHoliday(ctx, alice.ID, lisbon.ID); err != nil {
		t.Fatalf("DeleteByParticipantInHoliday returned error: %v", err)
	}

	if c := testutil.Count(t, db, &db_models.Participate{}, "participant_id = ?", alice.ID); c != 1 {
		t.Errorf("Expected Alice to keep only her Porto signup, found %d", c)
	}
	if c := testutil.Count(t, db, &db_models.Participate{}, "participant_id = ?", bob.ID); c != 1 {
		t.Errorf("Expected Bob's signup untouched, found %d", c)
	}
}

func TestParticipateRepository_AddRemove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewParticipateRepository(db)
	ctx := context.Background()

	alice := testutil.CreateParticipant(t, db, "Alice")
	h := testutil.CreateHoliday(t, db, alice, "Lisbon")
	a := testutil.CreateActivity(t, db, h, "Tram 28")

	if err := repo.Insert(ctx, &db_models.Participate{ActivityID: a.ID, ParticipantID: alice.ID}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := repo.Insert(ctx, &db_models.Participate{ActivityID: a.ID, ParticipantID: alice.ID}); err == nil {
		t.Error("Expected duplicate (activity, participant) insert to fail")
	}

	participants, err := repo.FindParticipantsByActivity(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindParticipantsByActivity returned error: %v", err)
	}
	if len(participants) != 1 || participants[0].ID != alice.ID {
		t.Fatalf("Expected Alice only, got %+v", participants)
	}

	n, err := repo.DeleteByActivityAndParticipant(ctx, a.ID, alice.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteByActivityAndParticipant: affected=%d err=%v", n, err)
	}
	n, err = repo.DeleteByActivityAndParticipant(ctx, a.ID, alice.ID)
	if err != nil || n != 0 {
		t.Errorf("Second delete: affected=%d err=%v", n, err)
	}
}
