// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"

	"ateliercms/internal/database"
	"ateliercms/internal/models"
)

// testDB connects to the test database, running migrations once. Tests
// are skipped entirely when PostgreSQL is not reachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "ateliercms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "ateliercms_test")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, name)
	db, err := database.Connect(dsn)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("postgres not available: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestSiteSettings(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	// Before any write, defaults are visible.
	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if all[models.SettingBusinessName] == "" {
		t.Error("default business name missing")
	}

	if err := s.SetMany(map[string]string{
		models.SettingBusinessName: "Test Atelier",
		models.SettingPhone:        "+212 522 000 000",
	}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM site_settings WHERE key IN ($1, $2)`,
			models.SettingBusinessName, models.SettingPhone)
	})

	all, err = s.All()
	if err != nil {
		t.Fatalf("All after SetMany: %v", err)
	}
	if all[models.SettingBusinessName] != "Test Atelier" {
		t.Errorf("business_name = %q", all[models.SettingBusinessName])
	}

	// Upsert overwrites.
	if err := s.SetMany(map[string]string{models.SettingBusinessName: "Renamed"}); err != nil {
		t.Fatalf("SetMany upsert: %v", err)
	}
	got, err := s.Get(models.SettingBusinessName, "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Renamed" {
		t.Errorf("Get = %q after upsert", got)
	}
}

func TestProjectLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	p, err := s.Create(&models.Project{
		Title:       models.LocalizedText{"en": "Test project", "fr": "Projet test"},
		Description: models.LocalizedText{"en": "Description"},
		Category:    "machining",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatal("Create did not assign an id")
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM projects WHERE id = $1`, p.ID) })

	found, err := s.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Title.Get("fr") != "Projet test" {
		t.Errorf("FindByID = %+v", found)
	}

	if err := s.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}

	found, err = s.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Error("project still found after delete")
	}
}

func TestJobStatusGating(t *testing.T) {
	db := testDB(t)
	s := NewJobStore(db)

	job, err := s.Create(&models.JobListing{
		Title:       models.LocalizedText{"en": "CNC operator"},
		Description: models.LocalizedText{"en": "Operate the machines."},
		Department:  "production",
		Location:    "Casablanca",
		JobType:     "full-time",
		Status:      models.JobStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM job_listings WHERE id = $1`, job.ID) })

	published, err := s.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	for _, j := range published {
		if j.ID == job.ID {
			t.Fatal("draft listing visible in published list")
		}
	}

	if err := s.UpdateStatus(job.ID, models.JobStatusPublished); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	published, err = s.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	seen := false
	for _, j := range published {
		if j.ID == job.ID {
			seen = true
		}
	}
	if !seen {
		t.Error("published listing missing from published list")
	}

	// Archiving removes it from the public board again.
	if err := s.UpdateStatus(job.ID, models.JobStatusArchived); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	published, _ = s.ListPublished()
	for _, j := range published {
		if j.ID == job.ID {
			t.Error("archived listing visible in published list")
		}
	}
}

func TestApplicationSurvivesJobDeletion(t *testing.T) {
	db := testDB(t)
	jobs := NewJobStore(db)
	apps := NewApplicationStore(db)

	job, err := jobs.Create(&models.JobListing{
		Title:       models.LocalizedText{"en": "Welder"},
		Description: models.LocalizedText{"en": "Weld things."},
		Department:  "production",
		Location:    "Casablanca",
		JobType:     "full-time",
		Status:      models.JobStatusPublished,
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	a, err := apps.Create(&models.Application{
		JobID: job.ID,
		Name:  "Jordan Smith",
		Email: "jordan@example.com",
		Phone: "+212600000000",
	})
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM applications WHERE id = $1`, a.ID)
		db.Exec(`DELETE FROM job_listings WHERE id = $1`, job.ID)
	})

	if a.Status != models.ApplicationStatusNew {
		t.Errorf("new application status = %s, want NEW", a.Status)
	}

	// Deleting the listing must not cascade to applications.
	if err := jobs.Delete(job.ID); err != nil {
		t.Fatalf("delete job: %v", err)
	}

	list, err := apps.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, got := range list {
		if got.ID == a.ID {
			found = true
			if got.JobTitle.Get("en") != "" {
				t.Errorf("orphaned application still carries a job title: %q", got.JobTitle.Get("en"))
			}
		}
	}
	if !found {
		t.Error("application disappeared with its job listing")
	}
}

func TestApplicationStatusFlow(t *testing.T) {
	db := testDB(t)
	jobs := NewJobStore(db)
	apps := NewApplicationStore(db)

	job, err := jobs.Create(&models.JobListing{
		Title:       models.LocalizedText{"en": "Machinist"},
		Description: models.LocalizedText{"en": "Run the lathe."},
		Department:  "production",
		Location:    "Casablanca",
		JobType:     "full-time",
		Status:      models.JobStatusPublished,
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	a, err := apps.Create(&models.Application{
		JobID: job.ID,
		Name:  "Sam Lee",
		Email: "sam@example.com",
		Phone: "+212600000001",
	})
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM applications WHERE id = $1`, a.ID)
		db.Exec(`DELETE FROM job_listings WHERE id = $1`, job.ID)
	})

	if err := apps.UpdateStatus(a.ID, models.ApplicationStatusInterview); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	counts, err := apps.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts[models.ApplicationStatusInterview] < 1 {
		t.Errorf("interview count = %d", counts[models.ApplicationStatusInterview])
	}

	if err := apps.UpdateStatus(uuid.New(), models.ApplicationStatusHired); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus(unknown id) = %v, want ErrNotFound", err)
	}
}

func TestQuoteLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewQuoteStore(db)

	q, err := s.Create(&models.QuoteRequest{
		Name:        "Jordan Smith",
		Email:       "jordan@example.com",
		Phone:       "+212600000000",
		Description: "A custom steel frame for an industrial conveyor.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM quote_requests WHERE id = $1`, q.ID) })

	if q.Status != models.QuoteStatusPending {
		t.Errorf("new quote status = %s, want PENDING", q.Status)
	}

	if err := s.UpdateStatus(q.ID, models.QuoteStatusContacted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := s.Delete(q.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(q.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestUserAuthentication(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := fmt.Sprintf("test-%s@example.com", uuid.NewString()[:8])
	user, err := s.Create(email, "s3cret-pass", "Test Admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM users WHERE id = $1`, user.ID) })

	found, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil {
		t.Fatal("FindByEmail returned nil for an existing user")
	}
	if !s.CheckPassword(found, "s3cret-pass") {
		t.Error("CheckPassword rejected the correct password")
	}
	if s.CheckPassword(found, "wrong") {
		t.Error("CheckPassword accepted a wrong password")
	}

	missing, err := s.FindByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("FindByEmail(missing): %v", err)
	}
	if missing != nil {
		t.Error("FindByEmail returned a user for an unknown email")
	}
}

func TestMessageLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewMessageStore(db)

	m, err := s.Create(&models.ContactMessage{
		Name:    "Jordan Smith",
		Email:   "jordan@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Saturday afternoons for pickups?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM contact_messages WHERE id = $1`, m.ID) })

	if err := s.Delete(m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}
