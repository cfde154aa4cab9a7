package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/testutil"
	"holiday-api/pkg/utils"
)

func TestCreateInvitations_InvitesAndMails(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	a := testutil.CreateParticipant(t, f.db, "Ana")
	b := testutil.CreateParticipant(t, f.db, "Ben")
	h := f.createHoliday(t, owner)

	err := f.invitations.CreateInvitations(context.Background(), h.ID, owner.ID, []uuid.UUID{a.ID, b.ID, a.ID})
	if err != nil {
		t.Fatalf("CreateInvitations returned error: %v", err)
	}

	if n := testutil.Count(t, f.db, &db_models.Invitation{}, "holiday_id = ? AND is_accepted = ?", h.ID, false); n != 2 {
		t.Errorf("Expected 2 pending invitations, got %d", n)
	}
	if want := []string{a.Email, b.Email}; !reflect.DeepEqual(f.mail.sent, want) {
		t.Errorf("Expected mails to %v, got %v", want, f.mail.sent)
	}
}

func TestCreateInvitations_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	a := testutil.CreateParticipant(t, f.db, "Ana")
	b := testutil.CreateParticipant(t, f.db, "Ben")
	h := f.createHoliday(t, owner)
	testutil.Invite(t, f.db, h, b, false)
	ctx := context.Background()

	tests := []struct {
		name    string
		inviter uuid.UUID
		ids     []uuid.UUID
		wantErr error
	}{
		{"already invited", owner.ID, []uuid.UUID{a.ID, b.ID}, utils.ErrInvitationAlreadyExists},
		{"unknown participant", owner.ID, []uuid.UUID{a.ID, uuid.New()}, utils.ErrParticipantNotFound},
		{"inviter not a member", a.ID, []uuid.UUID{a.ID}, utils.ErrNotHolidayMember},
		{"empty list", owner.ID, nil, utils.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.Snapshot(t, f.db)
			err := f.invitations.CreateInvitations(ctx, h.ID, tt.inviter, tt.ids)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if after := testutil.Snapshot(t, f.db); !reflect.DeepEqual(before, after) {
				t.Error("Failed invite must not store anything")
			}
		})
	}

	if err := f.invitations.CreateInvitations(ctx, uuid.New(), owner.ID, []uuid.UUID{a.ID}); !errors.Is(err, utils.ErrHolidayNotFound) {
		t.Errorf("Expected ErrHolidayNotFound, got %v", err)
	}
	if len(f.mail.sent) != 0 {
		t.Errorf("No mail expected, got %v", f.mail.sent)
	}
}

func TestCreateInvitations_MailFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	a := testutil.CreateParticipant(t, f.db, "Ana")
	h := f.createHoliday(t, owner)
	f.mail.err = errors.New("smtp down")

	if err := f.invitations.CreateInvitations(context.Background(), h.ID, owner.ID, []uuid.UUID{a.ID}); err != nil {
		t.Fatalf("CreateInvitations returned error: %v", err)
	}
	if n := testutil.Count(t, f.db, &db_models.Invitation{}, "participant_id = ?", a.ID); n != 1 {
		t.Errorf("Expected the invitation to be stored, got %d", n)
	}
}

func TestAcceptInvitation(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	guest := testutil.CreateParticipant(t, f.db, "Gina")
	h := f.createHoliday(t, owner)
	inv := testutil.Invite(t, f.db, h, guest, false)
	ctx := context.Background()

	if err := f.invitations.AcceptInvitation(ctx, inv.ID, owner.ID); !errors.Is(err, utils.ErrInvitationNotFound) {
		t.Errorf("Accepting someone else's invitation must fail, got %v", err)
	}
	if err := f.invitations.AcceptInvitation(ctx, inv.ID, guest.ID); err != nil {
		t.Fatalf("AcceptInvitation returned error: %v", err)
	}
	if err := f.invitations.AcceptInvitation(ctx, inv.ID, guest.ID); err != nil {
		t.Errorf("Accepting twice should be a no-op, got %v", err)
	}
	if err := f.holidays.EnsureMember(ctx, h.ID, guest.ID); err != nil {
		t.Errorf("Guest should now be a member, got %v", err)
	}

	pending, err := f.invitations.GetInvitationsByParticipant(ctx, guest.ID)
	if err != nil {
		t.Fatalf("GetInvitationsByParticipant returned error: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("Expected no pending invitations, got %d", len(pending))
	}
}

func TestRefuseInvitation(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	guest := testutil.CreateParticipant(t, f.db, "Gina")
	h := f.createHoliday(t, owner)
	inv := testutil.Invite(t, f.db, h, guest, false)
	ctx := context.Background()

	pending, err := f.invitations.GetInvitationsByParticipant(ctx, guest.ID)
	if err != nil {
		t.Fatalf("GetInvitationsByParticipant returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].Holiday.Name != "Monaco 2024" || pending[0].Holiday.Location.Locality != "Monaco" {
		t.Fatalf("Expected one pending invitation with its holiday loaded, got %+v", pending)
	}

	if err := f.invitations.RefuseInvitation(ctx, inv.ID, guest.ID); err != nil {
		t.Fatalf("RefuseInvitation returned error: %v", err)
	}
	if err := f.invitations.RefuseInvitation(ctx, inv.ID, guest.ID); !errors.Is(err, utils.ErrInvitationNotFound) {
		t.Errorf("Expected ErrInvitationNotFound on second refuse, got %v", err)
	}
	if n := testutil.Count(t, f.db, &db_models.Holiday{}, "id = ?", h.ID); n != 1 {
		t.Error("Refusing must not touch the holiday")
	}
}

func TestDeleteInvitationByParticipant(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	guest := testutil.CreateParticipant(t, f.db, "Gina")
	h := f.createHoliday(t, owner)
	testutil.Invite(t, f.db, h, guest, true)
	ctx := context.Background()

	if err := f.invitations.DeleteInvitationByParticipant(ctx, h.ID, guest.ID); err != nil {
		t.Fatalf("DeleteInvitationByParticipant returned error: %v", err)
	}
	if err := f.invitations.DeleteInvitationByParticipant(ctx, h.ID, guest.ID); !errors.Is(err, utils.ErrInvitationNotFound) {
		t.Errorf("Expected ErrInvitationNotFound, got %v", err)
	}

	has, err := f.invitations.HasRemainingAcceptedParticipants(ctx, h.ID)
	if err != nil || !has {
		t.Errorf("Owner still accepted, got has=%v err=%v", has, err)
	}

	if err := f.invitations.DeleteInvitations(ctx, h.ID); err != nil {
		t.Fatalf("DeleteInvitations returned error: %v", err)
	}
	has, err = f.invitations.HasRemainingAcceptedParticipants(ctx, h.ID)
	if err != nil || has {
		t.Errorf("Expected no accepted participants, got has=%v err=%v", has, err)
	}
}
