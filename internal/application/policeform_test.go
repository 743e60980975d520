package application

import (
	"errors"
	"testing"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

func policeFormFixture(t *testing.T) (*Store, *PoliceFormService, int) {
	t.Helper()
	s := newTestStore()
	m := NewStateMachine(s)
	svc := NewPoliceFormService(s, m)

	b := s.AddBooking(1, time.Now())
	stay := s.AddStay(b.ID, StayInput{
		RoomID:          1,
		ReservationType: domain.ReservationOvernight,
		CheckIn:         time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC),
	})
	return s, svc, stay.ID
}

func validForm() domain.PoliceForm {
	return domain.PoliceForm{
		FirstName: "Awa",
		LastName:  "Diallo",
		IDType:    "passport",
		IDNumber:  "SN1234567",
	}
}

func TestValidateFormChecksStayIn(t *testing.T) {
	s, svc, stayID := policeFormFixture(t)

	form := svc.Open(stayID, validForm())
	if form.Status != domain.PoliceFormDraft {
		t.Fatalf("status = %s, want draft", form.Status)
	}

	validated, err := svc.Validate(form.ID)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if validated.Status != domain.PoliceFormValidated {
		t.Errorf("status = %s, want validated", validated.Status)
	}
	if validated.ValidatedAt == nil {
		t.Error("ValidatedAt not set")
	}

	stay, _ := s.Stay(stayID)
	if stay.Status != domain.StayCheckedIn {
		t.Errorf("stay = %s, validation should check in", stay.Status)
	}
}

func TestValidateFormRejectsInvalidIdentity(t *testing.T) {
	_, svc, stayID := policeFormFixture(t)

	form := svc.Open(stayID, domain.PoliceForm{FirstName: "Awa"})
	if _, err := svc.Validate(form.ID); err == nil {
		t.Fatal("form without last name and document should not validate")
	}
	if form.Status != domain.PoliceFormDraft {
		t.Errorf("rejected form moved to %s", form.Status)
	}
}

func TestValidateFormTwiceFails(t *testing.T) {
	_, svc, stayID := policeFormFixture(t)
	form := svc.Open(stayID, validForm())

	if _, err := svc.Validate(form.ID); err != nil {
		t.Fatalf("first Validate() error: %v", err)
	}
	if _, err := svc.Validate(form.ID); err == nil {
		t.Fatal("second Validate() should fail, form is no longer a draft")
	}
}

func TestValidateFormStandsWhenStayCannotCheckIn(t *testing.T) {
	s, svc, stayID := policeFormFixture(t)
	m := NewStateMachine(s)
	m.UpdateStayStatus(stayID, domain.StayCancelled)

	form := svc.Open(stayID, validForm())
	validated, err := svc.Validate(form.ID)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if validated.Status != domain.PoliceFormValidated {
		t.Errorf("validation should stand even when the stay transition is rejected, got %s", validated.Status)
	}
	stay, _ := s.Stay(stayID)
	if stay.Status != domain.StayCancelled {
		t.Errorf("cancelled stay changed to %s", stay.Status)
	}
}

func TestValidateUnknownForm(t *testing.T) {
	_, svc, _ := policeFormFixture(t)
	_, err := svc.Validate("no-such-form")
	if !errors.Is(err, domain.ErrUnknownPoliceForm) {
		t.Fatalf("error = %v, want ErrUnknownPoliceForm", err)
	}
}

func TestArchiveLifecycle(t *testing.T) {
	_, svc, stayID := policeFormFixture(t)
	form := svc.Open(stayID, validForm())

	if _, err := svc.Archive(form.ID); err == nil {
		t.Fatal("draft should not archive")
	}

	if _, err := svc.Validate(form.ID); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	archived, err := svc.Archive(form.ID)
	if err != nil {
		t.Fatalf("Archive() error: %v", err)
	}
	if archived.Status != domain.PoliceFormArchived {
		t.Errorf("status = %s, want archived", archived.Status)
	}
	if archived.ArchivedAt == nil {
		t.Error("ArchivedAt not set")
	}

	if _, err := svc.Archive(form.ID); err == nil {
		t.Fatal("archiving twice should fail")
	}
}

func TestIdentityValidator(t *testing.T) {
	var v IdentityValidator

	tests := []struct {
		name    string
		form    domain.PoliceForm
		wantErr int
	}{
		{"complete", validForm(), 0},
		{"missing everything", domain.PoliceForm{}, 4},
		{"short name", domain.PoliceForm{FirstName: "A", LastName: "Diallo", IDType: "cni", IDNumber: "1234"}, 1},
		{"bad document", domain.PoliceForm{FirstName: "Awa", LastName: "Diallo", IDType: "cni", IDNumber: "12!"}, 1},
		{"accented name accepted", domain.PoliceForm{FirstName: "Aïssatou", LastName: "Ndiaye", IDType: "cni", IDNumber: "987654"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidatePoliceForm(tt.form)
			if len(errs) != tt.wantErr {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErr)
			}
		})
	}
}
