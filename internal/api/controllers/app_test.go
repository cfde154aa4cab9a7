package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/repositories"
	"holiday-api/internal/services"
	"holiday-api/internal/testutil"
	"holiday-api/pkg/middleware"
	"holiday-api/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *utils.JWTManager
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	tokens := utils.NewJWTManager("controller-secret", time.Hour)

	holidayRepo := repositories.NewHolidayRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	participateRepo := repositories.NewParticipateRepository(db)
	activityRepo := repositories.NewActivityRepository(db, participateRepo)
	messageRepo := repositories.NewMessageRepository(db)
	participantRepo := repositories.NewParticipantRepository(db)

	validator := services.AcceptAllValidator{}
	pictures := services.NewLocalPictureStore(t.TempDir(), "images", "defaultImg", 1<<20)

	holidaySvc := services.NewHolidayService(db, holidayRepo, invitationRepo, activityRepo, participateRepo,
		messageRepo, participantRepo, validator, pictures, "defaultImg/logoTravel3.png")
	invitationSvc := services.NewInvitationService(db, invitationRepo, holidayRepo, participantRepo, services.NewNoopMailService())
	activitySvc := services.NewActivityService(activityRepo, holidayRepo, validator, pictures, "defaultImg/activity.png")
	participateSvc := services.NewParticipateService(participateRepo, activityRepo, invitationRepo, participantRepo)
	messageSvc := services.NewMessageService(messageRepo, holidayRepo, participantRepo)
	participantSvc := services.NewParticipantService(participantRepo, tokens)
	statisticsSvc := services.NewStatisticsService(repositories.NewStatisticsRepository(db))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	RegisterRoutes(r, middleware.JWTAuthMiddleware(tokens), Handlers{
		Participants: NewParticipantController(participantSvc),
		Holidays:     NewHolidayController(holidaySvc, participantSvc, messageSvc),
		Invitations:  NewInvitationController(invitationSvc),
		Activities:   NewActivityController(activitySvc, participateSvc, holidaySvc),
		Statistics:   NewStatisticsController(statisticsSvc),
		Chat:         NewChatController(services.NewChatHub(messageSvc, nil), tokens, holidaySvc, participantSvc),
	})

	return &testApp{db: db, router: r, tokens: tokens}
}

// login creates a participant and returns it with a bearer token.
func (a *testApp) login(t *testing.T, firstName string) (*db_models.Participant, string) {
	t.Helper()
	p := testutil.CreateParticipant(t, a.db, firstName)
	token, err := a.tokens.CreateToken(p.ID)
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	return p, token
}

func (a *testApp) do(t *testing.T, method, path, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q", method, path, w.Body.String())
	}
	return w, env
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(data)
	}
	return a.do(t, method, path, token, body, "application/json")
}

func (a *testApp) doForm(t *testing.T, method, path, token string, fields map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return a.do(t, method, path, token, &buf, mw.FormDataContentType())
}

func monacoForm() map[string]string {
	return map[string]string{
		"name":        "Monaco 2024",
		"start_date":  "2024-07-01",
		"end_date":    "2024-07-08",
		"locality":    "Monaco",
		"postal_code": "98000",
		"country":     "Monaco",
	}
}

func decode(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("Failed to decode data %s: %v", env.Data, err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
