package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/util"
)

// stubStorageProvider records uploads without touching a filesystem.
type stubStorageProvider struct {
	uploaded []string
}

func (p *stubStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	p.uploaded = append(p.uploaded, filename)
	return "http://files.test/" + filename, nil
}

func (p *stubStorageProvider) Delete(ctx context.Context, filename string) error { return nil }

func (p *stubStorageProvider) GetURL(filename string) string { return "http://files.test/" + filename }

func newTestApplicationService() (*ApplicationService, *stubStorageProvider) {
	storage := &stubStorageProvider{}
	return NewApplicationService(
		repository.NewMemoryApplicationStore(),
		repository.NewMemoryDisbursementStore(),
		&StorageService{Provider: storage},
		NewQuizService(nil),
	), storage
}

func validApplication() *model.Application {
	return &model.Application{
		FullName:     "Rifkatu Dung",
		Email:        "rifkatu.dung@example.com",
		Phone:        "+2348031234567",
		Gender:       model.Female,
		DateOfBirth:  time.Date(2001, 4, 12, 0, 0, 0, 0, time.UTC),
		Address:      "14 Bauchi Road, Jos",
		LGA:          "Jos North",
		Institution:  "University of Jos",
		Course:       "Computer Science",
		Level:        "300",
		MatricNumber: "UJ/2021/CS/0412",
		QuizScore:    5,
	}
}

func TestApplicationCreateThenGet(t *testing.T) {
	svc, _ := newTestApplicationService()

	app := validApplication()
	if err := svc.Create(context.Background(), app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if app.ID == "" {
		t.Fatal("Create() did not assign an ID")
	}
	if app.Status != model.StatusPending {
		t.Errorf("Status = %q, want %q", app.Status, model.StatusPending)
	}

	got, err := svc.Get(app.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.FullName != app.FullName || got.Email != app.Email || got.MatricNumber != app.MatricNumber {
		t.Errorf("Get() = %+v, want the created record", got)
	}
	if got.QuizScore != 5 {
		t.Errorf("QuizScore = %d, want 5", got.QuizScore)
	}
}

func TestApplicationCreateNormalizesEmail(t *testing.T) {
	svc, _ := newTestApplicationService()

	app := validApplication()
	app.Email = "  Rifkatu.Dung@Example.COM "
	if err := svc.Create(context.Background(), app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if app.Email != "rifkatu.dung@example.com" {
		t.Errorf("Email = %q, want lowercased and trimmed", app.Email)
	}
}

func TestApplicationCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Application)
	}{
		{"missing full name", func(a *model.Application) { a.FullName = "" }},
		{"blank matric number", func(a *model.Application) { a.MatricNumber = "   " }},
		{"zero date of birth", func(a *model.Application) { a.DateOfBirth = time.Time{} }},
		{"unknown gender", func(a *model.Application) { a.Gender = "unspecified" }},
		{"lga outside plateau", func(a *model.Application) { a.LGA = "Eti-Osa" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestApplicationService()
			app := validApplication()
			tt.mutate(app)

			err := svc.Create(context.Background(), app)
			if !errors.Is(err, util.ErrValidation) {
				t.Fatalf("Create() error = %v, want ErrValidation", err)
			}

			apps, _ := svc.List("")
			if len(apps) != 0 {
				t.Errorf("rejected create still persisted %d records", len(apps))
			}
		})
	}
}

func TestApplicationFinancialFieldsOptional(t *testing.T) {
	svc, _ := newTestApplicationService()

	app := validApplication()
	if err := svc.Create(context.Background(), app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	got, err := svc.Get(app.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.BankName != "" || got.AccountNumber != "" || got.ScholarshipAmount != 0 {
		t.Error("financial fields should stay empty until awarded")
	}
}

func TestApplicationListFilter(t *testing.T) {
	svc, _ := newTestApplicationService()
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		app := validApplication()
		app.Email = NormalizeEmail(strings.Replace(app.Email, "@", string(rune('a'+i))+"@", 1))
		if err := svc.Create(ctx, app); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
		ids = append(ids, app.ID)
	}

	if _, err := svc.UpdateStatus(ids[1], model.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus() unexpected error: %v", err)
	}

	approved, err := svc.List(string(model.StatusApproved))
	if err != nil {
		t.Fatalf("List(approved) unexpected error: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != ids[1] {
		t.Errorf("List(approved) returned %d records, want exactly the approved one", len(approved))
	}

	pending, err := svc.List(string(model.StatusPending))
	if err != nil {
		t.Fatalf("List(pending) unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("List(pending) returned %d records, want 2", len(pending))
	}

	all, err := svc.List("")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List() returned %d records, want 3", len(all))
	}
}

func TestApplicationListRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestApplicationService()
	if _, err := svc.List("archived"); !errors.Is(err, util.ErrInvalidStatus) {
		t.Fatalf("List(archived) error = %v, want ErrInvalidStatus", err)
	}
}

func TestApplicationUpdateStatus(t *testing.T) {
	svc, _ := newTestApplicationService()

	app := validApplication()
	if err := svc.Create(context.Background(), app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	// Invalid target leaves the record untouched.
	if _, err := svc.UpdateStatus(app.ID, "archived"); !errors.Is(err, util.ErrInvalidStatus) {
		t.Fatalf("UpdateStatus(archived) error = %v, want ErrInvalidStatus", err)
	}
	got, _ := svc.Get(app.ID)
	if got.Status != model.StatusPending {
		t.Errorf("Status after rejected transition = %q, want pending", got.Status)
	}

	// Validation runs before existence: unknown status on a missing record
	// still reports the status error.
	if _, err := svc.UpdateStatus("no-such-id", "archived"); !errors.Is(err, util.ErrInvalidStatus) {
		t.Fatalf("UpdateStatus(missing, archived) error = %v, want ErrInvalidStatus", err)
	}

	// Any-to-any between valid statuses, including reversing a decision.
	if _, err := svc.UpdateStatus(app.ID, model.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus(approved) unexpected error: %v", err)
	}
	if _, err := svc.UpdateStatus(app.ID, model.StatusRejected); err != nil {
		t.Fatalf("UpdateStatus(rejected) unexpected error: %v", err)
	}
	got, _ = svc.Get(app.ID)
	if got.Status != model.StatusRejected {
		t.Errorf("Status = %q, want rejected", got.Status)
	}
}

func TestApplicationPartialUpdate(t *testing.T) {
	svc, _ := newTestApplicationService()

	app := validApplication()
	if err := svc.Create(context.Background(), app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	newPhone := "+2349098765432"
	newEmail := "New.Address@Example.com"
	updated, err := svc.Update(app.ID, &ApplicationUpdate{
		Phone: &newPhone,
		Email: &newEmail,
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if updated.Phone != newPhone {
		t.Errorf("Phone = %q, want %q", updated.Phone, newPhone)
	}
	if updated.Email != "new.address@example.com" {
		t.Errorf("Email = %q, want normalized", updated.Email)
	}
	if updated.FullName != app.FullName {
		t.Errorf("FullName changed to %q on a partial update", updated.FullName)
	}

	badLGA := "Eti-Osa"
	if _, err := svc.Update(app.ID, &ApplicationUpdate{LGA: &badLGA}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("Update(bad lga) error = %v, want ErrValidation", err)
	}
}

func TestApplicationAttachDocument(t *testing.T) {
	svc, storage := newTestApplicationService()
	ctx := context.Background()

	app := validApplication()
	if err := svc.Create(ctx, app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	content := strings.NewReader("pdf bytes")
	url, err := svc.AttachDocument(ctx, app.ID, "indigeneForm", "form.pdf", content, int64(content.Len()), "application/pdf")
	if err != nil {
		t.Fatalf("AttachDocument() unexpected error: %v", err)
	}
	if url == "" {
		t.Fatal("AttachDocument() returned an empty URL")
	}

	got, _ := svc.Get(app.ID)
	if got.IndigeneFormUrl != url {
		t.Errorf("IndigeneFormUrl = %q, want %q", got.IndigeneFormUrl, url)
	}
	if len(storage.uploaded) != 1 || !strings.HasPrefix(storage.uploaded[0], "applications/"+app.ID+"/indigeneForm/") {
		t.Errorf("uploaded object name = %v, want applications/<id>/indigeneForm/ prefix", storage.uploaded)
	}

	if _, err := svc.AttachDocument(ctx, app.ID, "transcript", "t.pdf", strings.NewReader("x"), 1, "application/pdf"); !errors.Is(err, util.ErrUnknownDocumentType) {
		t.Fatalf("AttachDocument(transcript) error = %v, want ErrUnknownDocumentType", err)
	}
	if _, err := svc.AttachDocument(ctx, "no-such-id", "indigeneForm", "f.pdf", strings.NewReader("x"), 1, "application/pdf"); !errors.Is(err, util.ErrApplicationNotFound) {
		t.Fatalf("AttachDocument(missing app) error = %v, want ErrApplicationNotFound", err)
	}
	if len(storage.uploaded) != 1 {
		t.Errorf("rejected attachments still uploaded: %v", storage.uploaded)
	}
}

func TestApplicationDelete(t *testing.T) {
	svc, _ := newTestApplicationService()
	ctx := context.Background()

	app := validApplication()
	if err := svc.Create(ctx, app); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	d := &model.Disbursement{ApplicationID: app.ID, Amount: 50000, Date: time.Now(), Status: model.DisbursementPending}
	if err := svc.Disbursements.Create(d); err != nil {
		t.Fatalf("disbursement Create() unexpected error: %v", err)
	}

	if err := svc.Delete(app.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	if _, err := svc.Get(app.ID); !errors.Is(err, util.ErrApplicationNotFound) {
		t.Fatalf("Get(deleted) error = %v, want ErrApplicationNotFound", err)
	}
	ds, _ := svc.Disbursements.ListByApplication(app.ID)
	if len(ds) != 0 {
		t.Errorf("delete left %d disbursement rows behind", len(ds))
	}

	if err := svc.Delete(app.ID); !errors.Is(err, util.ErrApplicationNotFound) {
		t.Fatalf("Delete(deleted) error = %v, want ErrApplicationNotFound", err)
	}
}

func TestApplicationListOrdering(t *testing.T) {
	svc, _ := newTestApplicationService()
	ctx := context.Background()

	first := validApplication()
	if err := svc.Create(ctx, first); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	second := validApplication()
	second.Email = "second@example.com"
	if err := svc.Create(ctx, second); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	apps, err := svc.List("")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(apps))
	}
	if apps[0].ID != second.ID {
		t.Errorf("List()[0].ID = %s, want the newest record %s", apps[0].ID, second.ID)
	}
}
