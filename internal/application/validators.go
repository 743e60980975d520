package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

var (
	nameRegex = regexp.MustCompile(`^[\p{L}\s\-']+$`)
	docRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// IdentityValidator checks the occupant identity data of a police form
type IdentityValidator struct{}

// ValidateName checks that a name field is present and well formed
func (v *IdentityValidator) ValidateName(name, fieldName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if len(name) < 2 {
		return fmt.Errorf("%s must have at least 2 characters", fieldName)
	}
	if len(name) > 50 {
		return fmt.Errorf("%s must not exceed 50 characters", fieldName)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}
	return nil
}

// ValidateDocumentNumber checks the identity document number
func (v *IdentityValidator) ValidateDocumentNumber(docNumber string) error {
	if docNumber == "" {
		return fmt.Errorf("document number is required")
	}

	cleanDoc := strings.ReplaceAll(docNumber, " ", "")
	cleanDoc = strings.ReplaceAll(cleanDoc, "-", "")

	if len(cleanDoc) < 4 || len(cleanDoc) > 20 {
		return fmt.Errorf("document number must have between 4 and 20 characters")
	}
	if !docRegex.MatchString(cleanDoc) {
		return fmt.Errorf("document number may only contain letters and digits")
	}
	return nil
}

// ValidatePoliceForm validates the identity fields a police registration
// requires before the form can be validated
func (v *IdentityValidator) ValidatePoliceForm(form domain.PoliceForm) []error {
	var errs []error

	if err := v.ValidateName(form.FirstName, "first name"); err != nil {
		errs = append(errs, err)
	}
	if err := v.ValidateName(form.LastName, "last name"); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(form.IDType) == "" {
		errs = append(errs, fmt.Errorf("document type is required"))
	}
	if err := v.ValidateDocumentNumber(form.IDNumber); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// FormatValidationErrors joins a list of validation errors into one message
func (v *IdentityValidator) FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errors))
	for _, err := range errors {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
