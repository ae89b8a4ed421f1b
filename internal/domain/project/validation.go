package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTitleLength = 200
	maxDescLength  = 2000
)

func validateCreate(req CreateRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Desc, validation.Required, validation.Length(1, maxDescLength)),
	)
}

func validateUpdate(req UpdateRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Desc, validation.Required, validation.Length(1, maxDescLength)),
	)
}
