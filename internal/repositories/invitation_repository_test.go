package repositories

import (
	"context"
	"testing"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/testutil"
)

func TestInvitationRepository_UniquePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	guest := testutil.CreateParticipant(t, db, "Gabriel")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")

	if err := repo.Insert(ctx, &db_models.Invitation{HolidayID: h.ID, ParticipantID: guest.ID}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := repo.Insert(ctx, &db_models.Invitation{HolidayID: h.ID, ParticipantID: guest.ID}); err == nil {
		t.Error("Expected duplicate (holiday, participant) insert to fail")
	}
}

func TestInvitationRepository_FindPendingByParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	guest := testutil.CreateParticipant(t, db, "Gabriel")
	pendingHoliday := testutil.CreateHoliday(t, db, owner, "Lisbon")
	acceptedHoliday := testutil.CreateHoliday(t, db, owner, "Porto")
	testutil.Invite(t, db, pendingHoliday, guest, false)
	testutil.Invite(t, db, acceptedHoliday, guest, true)

	pending, err := repo.FindPendingByParticipant(ctx, guest.ID)
	if err != nil {
		t.Fatalf("FindPendingByParticipant returned error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("Expected 1 pending invitation, got %d", len(pending))
	}
	if pending[0].Holiday.Name != "Lisbon" {
		t.Errorf("Expected Lisbon, got %q", pending[0].Holiday.Name)
	}
	if pending[0].Holiday.Location.Locality != "Monaco" {
		t.Errorf("Expected holiday location to be loaded, got %+v", pending[0].Holiday.Location)
	}
	if pending[0].Participant.ID != guest.ID {
		t.Error("Expected participant to be loaded")
	}

	none, err := repo.FindPendingByParticipant(ctx, owner.ID)
	if err != nil {
		t.Fatalf("FindPendingByParticipant returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected empty list, got %d", len(none))
	}
}

func TestInvitationRepository_HasAcceptedParticipants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	guest := testutil.CreateParticipant(t, db, "Gabriel")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")
	testutil.Invite(t, db, h, guest, false)

	has, err := repo.HasAcceptedParticipants(ctx, h.ID)
	if err != nil || !has {
		t.Fatalf("Expected accepted participants, got %v (err=%v)", has, err)
	}

	if _, err := repo.DeleteByHolidayAndParticipant(ctx, h.ID, owner.ID); err != nil {
		t.Fatalf("delete owner invitation: %v", err)
	}

	has, err = repo.HasAcceptedParticipants(ctx, h.ID)
	if err != nil {
		t.Fatalf("HasAcceptedParticipants returned error: %v", err)
	}
	if has {
		t.Error("A pending invitation must not count as a remaining participant")
	}
}

func TestInvitationRepository_MarkAcceptedAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	guest := testutil.CreateParticipant(t, db, "Gabriel")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")
	inv := testutil.Invite(t, db, h, guest, false)

	for i := 0; i < 2; i++ {
		n, err := repo.MarkAccepted(ctx, inv.ID)
		if err != nil || n != 1 {
			t.Fatalf("MarkAccepted #%d: affected=%d err=%v", i+1, n, err)
		}
	}

	member, err := repo.IsAcceptedMember(ctx, h.ID, guest.ID)
	if err != nil || !member {
		t.Fatalf("Expected guest to be an accepted member, got %v (err=%v)", member, err)
	}

	n, err := repo.DeleteById(ctx, inv.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteById: affected=%d err=%v", n, err)
	}
	n, err = repo.DeleteById(ctx, inv.ID)
	if err != nil || n != 0 {
		t.Errorf("Second DeleteById: affected=%d err=%v", n, err)
	}

	found, err := repo.FindById(ctx, inv.ID)
	if err != nil || found != nil {
		t.Errorf("Expected nil, nil for deleted invitation, got %v, %v", found, err)
	}
}
