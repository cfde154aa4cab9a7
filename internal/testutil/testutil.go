// Package testutil holds the in-memory store and fixtures shared by tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"holiday-api/internal/infra"
	"holiday-api/internal/models/db_models"
)

// SetupTestDB opens a fresh in-memory SQLite database with foreign keys on
// and the full schema migrated. Each call gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := infra.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// FailOn makes every delete against table fail while *armed is true.
func FailOn(t *testing.T, db *gorm.DB, table string, armed *bool) {
	t.Helper()

	name := "testutil:fail_delete_" + table + "_" + uuid.NewString()
	err := db.Callback().Delete().Before("gorm:delete").Register(name, failWhen(table, armed))
	if err != nil {
		t.Fatalf("Failed to register fault callback: %v", err)
	}
}

// FailOnCreate is FailOn for inserts.
func FailOnCreate(t *testing.T, db *gorm.DB, table string, armed *bool) {
	t.Helper()

	name := "testutil:fail_create_" + table + "_" + uuid.NewString()
	err := db.Callback().Create().Before("gorm:create").Register(name, failWhen(table, armed))
	if err != nil {
		t.Fatalf("Failed to register fault callback: %v", err)
	}
}

func failWhen(table string, armed *bool) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if *armed && tx.Statement.Table == table {
			tx.AddError(fmt.Errorf("simulated fault on %s", table))
		}
	}
}

// Snapshot lists the row ids of every table, ordered.
func Snapshot(t *testing.T, db *gorm.DB) map[string][]string {
	t.Helper()

	out := make(map[string][]string)
	for _, model := range db_models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			t.Fatalf("Failed to parse model: %v", err)
		}

		var ids []string
		if err := db.Model(model).Order("id").Pluck("id", &ids).Error; err != nil {
			t.Fatalf("Failed to list %s: %v", stmt.Schema.Table, err)
		}
		out[stmt.Schema.Table] = ids
	}
	return out
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func CreateParticipant(t *testing.T, db *gorm.DB, firstName string) *db_models.Participant {
	t.Helper()

	p := &db_models.Participant{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     fmt.Sprintf("%s-%s@example.com", firstName, uuid.NewString()[:8]),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to create participant: %v", err)
	}
	return p
}

func NewLocation(locality, country, postalCode string) db_models.Location {
	return db_models.Location{
		Locality:   locality,
		Country:    country,
		PostalCode: postalCode,
	}
}

// CreateHoliday inserts a holiday row and an accepted invitation for its creator.
func CreateHoliday(t *testing.T, db *gorm.DB, creator *db_models.Participant, name string) *db_models.Holiday {
	t.Helper()

	h := &db_models.Holiday{
		Name:        name,
		HolidayPath: "defaultImg/logoTravel3.png",
		StartDate:   Date(2024, time.July, 1),
		EndDate:     Date(2024, time.July, 8),
		CreatorID:   creator.ID,
		Location:    NewLocation("Monaco", "Monaco", "98000"),
	}
	if err := db.Omit("Creator", "Activities").Create(h).Error; err != nil {
		t.Fatalf("Failed to create holiday: %v", err)
	}
	Invite(t, db, h, creator, true)
	return h
}

func Invite(t *testing.T, db *gorm.DB, h *db_models.Holiday, p *db_models.Participant, accepted bool) *db_models.Invitation {
	t.Helper()

	inv := &db_models.Invitation{HolidayID: h.ID, ParticipantID: p.ID, IsAccepted: accepted}
	if err := db.Omit(clause.Associations).Create(inv).Error; err != nil {
		t.Fatalf("Failed to create invitation: %v", err)
	}
	return inv
}

func CreateActivity(t *testing.T, db *gorm.DB, h *db_models.Holiday, name string) *db_models.Activity {
	t.Helper()

	a := &db_models.Activity{
		Name:         name,
		ActivityPath: "defaultImg/activity.png",
		Price:        25,
		StartDate:    h.StartDate.Add(20 * time.Hour),
		EndDate:      h.StartDate.Add(23 * time.Hour),
		HolidayID:    h.ID,
		Location:     NewLocation("Monte Carlo", "Monaco", "98000"),
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}
	return a
}

func Join(t *testing.T, db *gorm.DB, a *db_models.Activity, p *db_models.Participant) *db_models.Participate {
	t.Helper()

	pa := &db_models.Participate{ActivityID: a.ID, ParticipantID: p.ID}
	if err := db.Omit(clause.Associations).Create(pa).Error; err != nil {
		t.Fatalf("Failed to create participate: %v", err)
	}
	return pa
}

func CreateMessage(t *testing.T, db *gorm.DB, h *db_models.Holiday, p *db_models.Participant, content string, at time.Time) *db_models.Message {
	t.Helper()

	m := &db_models.Message{HolidayID: h.ID, ParticipantID: p.ID, Content: content, SendAt: at}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		t.Fatalf("Failed to create message: %v", err)
	}
	return m
}

// Count returns the number of rows of model matching the optional condition.
func Count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
