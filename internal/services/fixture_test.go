package services

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/repositories"
	"holiday-api/internal/testutil"
	"holiday-api/pkg/utils"
)

const (
	stockHoliday  = "defaultImg/logoTravel3.png"
	stockActivity = "defaultImg/activity.png"
)

type stubValidator struct {
	valid bool
	err   error
	calls int
}

func (v *stubValidator) IsAddressValid(ctx context.Context, address string) (bool, error) {
	v.calls++
	return v.valid, v.err
}

type fakePictureStore struct {
	mu       sync.Mutex
	stored   []string
	deleted  []string
	storeErr error
}

func (f *fakePictureStore) Store(ctx context.Context, pic *Picture) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return "", f.storeErr
	}
	p := "images/" + uuid.NewString() + strings.ToLower(filepath.Ext(pic.Filename))
	f.stored = append(f.stored, p)
	return p, nil
}

func (f *fakePictureStore) Delete(ctx context.Context, p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, p)
	return nil
}

func (f *fakePictureStore) IsDefault(p string) bool {
	return strings.HasPrefix(p, "defaultImg/")
}

type fakeMail struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMail) SendInvitation(ctx context.Context, to, inviteeName, holidayName, inviterName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return m.err
}

type fixture struct {
	db           *gorm.DB
	validator    *stubValidator
	pictures     *fakePictureStore
	mail         *fakeMail
	holidays     HolidayServiceInterface
	invitations  InvitationServiceInterface
	activities   ActivityServiceInterface
	participates ParticipateServiceInterface
	messages     *MessageService
	participants ParticipantServiceInterface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)

	holidayRepo := repositories.NewHolidayRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	participateRepo := repositories.NewParticipateRepository(db)
	activityRepo := repositories.NewActivityRepository(db, participateRepo)
	messageRepo := repositories.NewMessageRepository(db)
	participantRepo := repositories.NewParticipantRepository(db)

	f := &fixture{
		db:        db,
		validator: &stubValidator{valid: true},
		pictures:  &fakePictureStore{},
		mail:      &fakeMail{},
	}
	f.holidays = NewHolidayService(db, holidayRepo, invitationRepo, activityRepo, participateRepo,
		messageRepo, participantRepo, f.validator, f.pictures, stockHoliday)
	f.invitations = NewInvitationService(db, invitationRepo, holidayRepo, participantRepo, f.mail)
	f.activities = NewActivityService(activityRepo, holidayRepo, f.validator, f.pictures, stockActivity)
	f.participates = NewParticipateService(participateRepo, activityRepo, invitationRepo, participantRepo)
	f.messages = NewMessageService(messageRepo, holidayRepo, participantRepo)
	f.participants = NewParticipantService(participantRepo, utils.NewJWTManager("test-secret", time.Hour))
	return f
}

func monacoInput() HolidayInput {
	return HolidayInput{
		Name:      "Monaco 2024",
		StartDate: testutil.Date(2024, time.July, 1),
		EndDate:   testutil.Date(2024, time.July, 8),
		Location:  testutil.NewLocation("Monaco", "Monaco", "98000"),
	}
}

func casinoInput(holidayID uuid.UUID) ActivityInput {
	return ActivityInput{
		HolidayID: holidayID,
		Name:      "Casino Night",
		Price:     50,
		StartDate: time.Date(2024, time.July, 3, 21, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.July, 4, 2, 0, 0, 0, time.UTC),
		Location:  testutil.NewLocation("Monte Carlo", "Monaco", "98000"),
	}
}

func (f *fixture) createHoliday(t *testing.T, creator *db_models.Participant) *db_models.Holiday {
	t.Helper()
	h, err := f.holidays.CreateHoliday(context.Background(), creator.ID, monacoInput(), nil)
	if err != nil {
		t.Fatalf("CreateHoliday returned error: %v", err)
	}
	return h
}

func pngPicture(name string) *Picture {
	return &Picture{Filename: name, Size: 1, Content: strings.NewReader("png")}
}
