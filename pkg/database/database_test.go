package database

import (
	"testing"

	"github.com/sefazor/galbi-backend/internal/models"
)

func TestOpenTest_MigratesTables(t *testing.T) {
	db, err := OpenTest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, table := range []interface{}{&models.User{}, &models.Creation{}, &models.UploadedImage{}, &models.Payment{}} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table for %T was not created", table)
		}
	}
}

func TestOpenTest_IsolatedDatabases(t *testing.T) {
	a, err := OpenTest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := OpenTest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.Create(&models.User{Username: "alice", Password: "x", Email: "a@example.com"}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	var count int64
	b.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("second database sees %d users, want 0", count)
	}
}
