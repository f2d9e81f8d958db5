package util

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance used for config structs.
var Validate = validator.New()
