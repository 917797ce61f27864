package account

import (
	"strings"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// UpdateSettingsInput holds the editable account fields. Nil means unchanged.
type UpdateSettingsInput struct {
	FullName    *string
	CompanyName *string
}

// Validate trims the fields and checks their length.
func (i *UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName != nil {
		v := strings.TrimSpace(*i.FullName)
		i.FullName = &v
		if len(v) > 200 {
			errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
		}
	}
	if i.CompanyName != nil {
		v := strings.TrimSpace(*i.CompanyName)
		i.CompanyName = &v
		if len(v) > 200 {
			errs = append(errs, domain.FieldError{Field: "company_name", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
