package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"holiday-api/internal/testutil"
	"holiday-api/pkg/utils"
)

func TestAddParticipate(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	pending := testutil.CreateParticipant(t, f.db, "Pia")
	stranger := testutil.CreateParticipant(t, f.db, "Sam")
	h := f.createHoliday(t, owner)
	testutil.Invite(t, f.db, h, pending, false)
	a := testutil.CreateActivity(t, f.db, h, "Casino Night")
	ctx := context.Background()

	tests := []struct {
		name        string
		activity    uuid.UUID
		participant uuid.UUID
		wantErr     error
	}{
		{"member joins", a.ID, owner.ID, nil},
		{"twice", a.ID, owner.ID, utils.ErrParticipationAlreadyExists},
		{"pending invitation", a.ID, pending.ID, utils.ErrNotHolidayMember},
		{"not invited", a.ID, stranger.ID, utils.ErrNotHolidayMember},
		{"unknown activity", uuid.New(), owner.ID, utils.ErrActivityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.participates.AddParticipate(ctx, tt.activity, tt.participant)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	joined, err := f.participates.GetParticipantsByActivity(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetParticipantsByActivity returned error: %v", err)
	}
	if len(joined) != 1 || joined[0].ID != owner.ID {
		t.Errorf("Expected only the owner, got %+v", joined)
	}
}

func TestRemoveParticipate(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	h := f.createHoliday(t, owner)
	a := testutil.CreateActivity(t, f.db, h, "Casino Night")
	testutil.Join(t, f.db, a, owner)
	ctx := context.Background()

	if err := f.participates.RemoveParticipate(ctx, a.ID, owner.ID); err != nil {
		t.Fatalf("RemoveParticipate returned error: %v", err)
	}
	if err := f.participates.RemoveParticipate(ctx, a.ID, owner.ID); !errors.Is(err, utils.ErrParticipateNotFound) {
		t.Errorf("Expected ErrParticipateNotFound, got %v", err)
	}
}

func TestGetParticipantsNotInActivity(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	guest := testutil.CreateParticipant(t, f.db, "Gina")
	h := f.createHoliday(t, owner)
	testutil.Invite(t, f.db, h, guest, true)
	a := testutil.CreateActivity(t, f.db, h, "Casino Night")
	testutil.Join(t, f.db, a, owner)

	others, err := f.participates.GetParticipantsNotInActivity(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetParticipantsNotInActivity returned error: %v", err)
	}
	for _, p := range others {
		if p.ID == owner.ID {
			t.Error("Owner already joined and must not be listed")
		}
	}
	found := false
	for _, p := range others {
		if p.ID == guest.ID {
			found = true
		}
	}
	if !found {
		t.Error("Expected guest to be listed")
	}
}

func TestDeleteParticipatesForParticipantInHoliday(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	h := f.createHoliday(t, owner)
	other := f.createHoliday(t, owner)
	a := testutil.CreateActivity(t, f.db, h, "Casino Night")
	b := testutil.CreateActivity(t, f.db, other, "Hike")
	testutil.Join(t, f.db, a, owner)
	testutil.Join(t, f.db, b, owner)
	ctx := context.Background()

	if err := f.participates.DeleteParticipatesForParticipantInHoliday(ctx, owner.ID, h.ID); err != nil {
		t.Fatalf("DeleteParticipatesForParticipantInHoliday returned error: %v", err)
	}

	inA, _ := f.participates.GetParticipantsByActivity(ctx, a.ID)
	inB, _ := f.participates.GetParticipantsByActivity(ctx, b.ID)
	if len(inA) != 0 || len(inB) != 1 {
		t.Errorf("Expected only the first holiday cleared, got %d and %d", len(inA), len(inB))
	}

	if err := f.participates.DeleteParticipatesForActivity(ctx, b.ID); err != nil {
		t.Fatalf("DeleteParticipatesForActivity returned error: %v", err)
	}
	inB, _ = f.participates.GetParticipantsByActivity(ctx, b.ID)
	if len(inB) != 0 {
		t.Errorf("Expected no participants left, got %d", len(inB))
	}
}
