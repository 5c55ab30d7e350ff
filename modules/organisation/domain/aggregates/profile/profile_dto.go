package profile

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lumenhr/orgadmin/pkg/constants"
)

type CreateDTO struct {
	FullName string  `json:"full_name" validate:"required"`
	Location *string `json:"location"`
}

type UpdateDTO struct {
	FullName string  `json:"full_name" validate:"required"`
	Location *string `json:"location"`
	Status   string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (d *CreateDTO) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Location = normalizeLocation(d.Location)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *CreateDTO) ToEntity() Profile {
	return New(d.FullName, d.Location)
}

func (d *UpdateDTO) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Location = normalizeLocation(d.Location)
	d.Status = strings.TrimSpace(d.Status)
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *UpdateDTO) Apply(p Profile) Profile {
	out := p.WithFullName(d.FullName).WithLocation(d.Location)
	if d.Status != "" {
		out = out.WithStatus(Status(d.Status))
	}
	return out
}

func validateStruct(v interface{}) (map[string]string, bool) {
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return map[string]string{}, true
	}
	out := make(map[string]string)
	for _, fieldErr := range errs.(validator.ValidationErrors) {
		out[fieldErr.Field()] = fmt.Sprintf("%s failed validation on '%s'", fieldErr.Field(), fieldErr.Tag())
	}
	return out, false
}
