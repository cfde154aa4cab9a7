package repositories

import (
	"context"
	"testing"

	"holiday-api/internal/models/db_models"
	"holiday-api/internal/testutil"
)

func TestActivityRepository_DeleteRemovesParticipatesAndLocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewActivityRepository(db, NewParticipateRepository(db))
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")
	a := testutil.CreateActivity(t, db, h, "Fado night")
	testutil.Join(t, db, a, owner)

	n, err := repo.Delete(ctx, a.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete: affected=%d err=%v", n, err)
	}

	if c := testutil.Count(t, db, &db_models.Participate{}, "activity_id = ?", a.ID); c != 0 {
		t.Errorf("Expected participates removed, found %d", c)
	}
	if c := testutil.Count(t, db, &db_models.Location{}, "id = ?", a.LocationID); c != 0 {
		t.Errorf("Expected activity location removed, found %d", c)
	}

	n, err = repo.Delete(ctx, a.ID)
	if err != nil || n != 0 {
		t.Errorf("Second Delete: affected=%d err=%v", n, err)
	}
}

func TestActivityRepository_DeleteFailsWhenParticipateCleanupFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewActivityRepository(db, NewParticipateRepository(db))
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")
	a := testutil.CreateActivity(t, db, h, "Fado night")
	testutil.Join(t, db, a, owner)

	armed := true
	testutil.FailOn(t, db, "participates", &armed)

	if _, err := repo.Delete(ctx, a.ID); err == nil {
		t.Fatal("Expected Delete to fail")
	}
	armed = false

	if c := testutil.Count(t, db, &db_models.Activity{}, "id = ?", a.ID); c != 1 {
		t.Errorf("Expected activity to survive, found %d", c)
	}
	if c := testutil.Count(t, db, &db_models.Participate{}, "activity_id = ?", a.ID); c != 1 {
		t.Errorf("Expected participate to survive, found %d", c)
	}
}

func TestActivityRepository_DeleteByHolidayIsAllOrNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewActivityRepository(db, NewParticipateRepository(db))
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")
	other := testutil.CreateHoliday(t, db, owner, "Porto")
	a1 := testutil.CreateActivity(t, db, h, "Tram 28")
	a2 := testutil.CreateActivity(t, db, h, "Belem")
	kept := testutil.CreateActivity(t, db, other, "Port cellar")
	testutil.Join(t, db, a1, owner)
	testutil.Join(t, db, a2, owner)
	testutil.Join(t, db, kept, owner)

	armed := true
	testutil.FailOn(t, db, "activities", &armed)
	if err := repo.DeleteByHoliday(ctx, h.ID); err == nil {
		t.Fatal("Expected DeleteByHoliday to fail")
	}
	armed = false

	if c := testutil.Count(t, db, &db_models.Participate{}, ""); c != 3 {
		t.Fatalf("Expected rollback to keep 3 participates, found %d", c)
	}

	if err := repo.DeleteByHoliday(ctx, h.ID); err != nil {
		t.Fatalf("DeleteByHoliday returned error: %v", err)
	}
	if c := testutil.Count(t, db, &db_models.Activity{}, "holiday_id = ?", h.ID); c != 0 {
		t.Errorf("Expected no activities left, found %d", c)
	}
	if c := testutil.Count(t, db, &db_models.Participate{}, ""); c != 1 {
		t.Errorf("Expected only the other holiday's participate, found %d", c)
	}
	if c := testutil.Count(t, db, &db_models.Activity{}, "id = ?", kept.ID); c != 1 {
		t.Error("Activity of another holiday must not be touched")
	}
}

func TestActivityRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewActivityRepository(db, NewParticipateRepository(db))
	ctx := context.Background()

	owner := testutil.CreateParticipant(t, db, "Olivia")
	h := testutil.CreateHoliday(t, db, owner, "Lisbon")
	a := testutil.CreateActivity(t, db, h, "Fado night")

	loaded, err := repo.FindById(ctx, a.ID)
	if err != nil || loaded == nil {
		t.Fatalf("FindById: %v, %v", loaded, err)
	}
	loaded.Name = "Fado at Alfama"
	loaded.Price = 0
	loaded.Location.Locality = "Lisboa"

	if err := repo.Update(ctx, loaded); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	again, err := repo.FindById(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindById returned error: %v", err)
	}
	if again.Name != "Fado at Alfama" || again.Price != 0 {
		t.Errorf("Expected updated fields, got name=%q price=%v", again.Name, again.Price)
	}
	if again.Location.Locality != "Lisboa" {
		t.Errorf("Expected updated locality, got %q", again.Location.Locality)
	}
}
