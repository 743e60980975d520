package application

import (
	"fmt"
	"log"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

// PoliceFormService manages the police registration forms attached to stays.
// Validating a form is what checks the occupant in: the reception flow fills
// the form first, then the stay transitions.
type PoliceFormService struct {
	store     *Store
	machine   *StateMachine
	validator IdentityValidator
}

// NewPoliceFormService creates a police form service
func NewPoliceFormService(store *Store, machine *StateMachine) *PoliceFormService {
	return &PoliceFormService{store: store, machine: machine}
}

// Open creates a draft form for a stay
func (s *PoliceFormService) Open(stayID int, form domain.PoliceForm) *domain.PoliceForm {
	return s.store.AddPoliceForm(stayID, form)
}

// Validate marks a draft form as validated and checks the stay in. A stay
// that cannot legally transition to checked_in (already checked in, or
// cancelled) does not undo the validation; the rejection is logged.
func (s *PoliceFormService) Validate(id string) (*domain.PoliceForm, error) {
	form, ok := s.store.PoliceForm(id)
	if !ok {
		return nil, fmt.Errorf("validate police form %s: %w", id, domain.ErrUnknownPoliceForm)
	}
	if form.Status != domain.PoliceFormDraft {
		return nil, fmt.Errorf("police form %s is %s, only drafts can be validated", id, form.Status)
	}
	if errs := s.validator.ValidatePoliceForm(*form); len(errs) > 0 {
		return nil, fmt.Errorf("police form %s has invalid identity data: %s", id, s.validator.FormatValidationErrors(errs))
	}

	now := time.Now()
	form.Status = domain.PoliceFormValidated
	form.ValidatedAt = &now

	if !s.machine.UpdateStayStatus(form.StayID, domain.StayCheckedIn) {
		log.Printf("policeform: stay %d not checked in after validating form %s", form.StayID, id)
	}
	return form, nil
}

// Archive moves a validated form to the archive
func (s *PoliceFormService) Archive(id string) (*domain.PoliceForm, error) {
	form, ok := s.store.PoliceForm(id)
	if !ok {
		return nil, fmt.Errorf("archive police form %s: %w", id, domain.ErrUnknownPoliceForm)
	}
	if form.Status != domain.PoliceFormValidated {
		return nil, fmt.Errorf("police form %s is %s, only validated forms can be archived", id, form.Status)
	}

	now := time.Now()
	form.Status = domain.PoliceFormArchived
	form.ArchivedAt = &now
	return form, nil
}
