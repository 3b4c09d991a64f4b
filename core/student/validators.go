package student

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"courseboard/core"
)

var (
	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = "password must contain at least 8 characters"

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to student attributes"
)

func init() {
	core.Validate.RegisterStructValidation(studentStructValidation, NewStudent{}, ChangePassword{})
	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

type (
	// NewStudent is the create payload.
	NewStudent struct {
		StudentID string `json:"student_id" validate:"required"`
		Name      string `json:"name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required"`
	}

	// UpdateStudent is the partial update payload; only non-nil fields are applied.
	UpdateStudent struct {
		StudentID string  `json:"student_id" validate:"required"`
		Name      *string `json:"name" validate:"omitempty"`
		Email     *string `json:"email" validate:"omitempty,email"`
	}

	ChangePassword struct {
		StudentID       string `json:"student_id" validate:"required"`
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required"`
	}
)

func (ns *NewStudent) Validate() error {
	ns.StudentID = core.Sanitize(ns.StudentID)
	ns.Name = core.Sanitize(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

func (us *UpdateStudent) Validate() error {
	us.StudentID = core.Sanitize(us.StudentID)
	if us.Name != nil {
		*us.Name = core.Sanitize(*us.Name)
	}
	if us.Email != nil {
		*us.Email = core.CleanString(*us.Email, true /* lower */)
	}
	if err := core.Validate.Struct(us); err != nil {
		return err
	}
	if us.Name == nil && us.Email == nil {
		return core.NewValidationError(ErrNoFieldsToUpdate)
	}
	return nil
}

func (cp *ChangePassword) Validate() error {
	cp.StudentID = core.Sanitize(cp.StudentID)
	return core.Validate.Struct(cp)
}

// studentStructValidation applies the password policy to NewStudent and
// ChangePassword payloads.
func studentStructValidation(sl validator.StructLevel) {
	switch data := sl.Current().Interface().(type) {
	case NewStudent:
		validatePassword(sl, data.Password, "password", "Password", data.StudentID, data.Name, data.Email)
	case ChangePassword:
		validatePassword(sl, data.NewPassword, "new_password", "NewPassword", data.StudentID)
	}
}

// validatePassword applies the password policy:
// - minLen: 8
// - no whitespace
// - not entirely numeric
// - no similarity with the student's own attributes
func validatePassword(sl validator.StructLevel, pwd, name, structName string, attrs ...string) {
	if pwd == "" {
		return // `required` handles this
	}
	reportErr := func(tag string) {
		sl.ReportError(pwd, name, structName, tag, "")
	}

	if len(pwd) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == len(pwd) {
		reportErr(pwdNotAllNumTag)
		return
	}

	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		ratio := difflib.NewMatcher(strings.Split(pwd, ""), strings.Split(attr, "")).QuickRatio()
		if ratio >= pwdMaxSim {
			reportErr(pwdAttrSimTag)
			return
		}
	}
}
