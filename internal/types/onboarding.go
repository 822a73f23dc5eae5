package types

import (
	"github.com/go-playground/validator/v10"
)

// SaveInterestsRequest is the body of POST /onboarding/interests.
type SaveInterestsRequest struct {
	Interests []string `json:"interests" validate:"required,max=50,dive,required,max=64"`
}

// SaveSituationRequest is the body of POST /onboarding/situation.
type SaveSituationRequest struct {
	CurrentSituation string `json:"currentSituation" validate:"required,oneof=student_school student_tertiary working looking_for_work taking_a_break other"`
}

// SelectAppsRequest is the body of POST /onboarding/select-apps.
type SelectAppsRequest struct {
	SelectedAppIDs []string `json:"selectedAppIds" validate:"max=50,dive,required"`
}

// Validate validates the SaveInterestsRequest using the validator.
func (r *SaveInterestsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveSituationRequest using the validator.
func (r *SaveSituationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SelectAppsRequest using the validator.
func (r *SelectAppsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
