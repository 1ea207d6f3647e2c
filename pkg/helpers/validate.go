package helpers

import (
	"context"
	"reflect"
	"strings"

	"github.com/evannetwork/vc-engine/pkg/logger"
	"github.com/evannetwork/vc-engine/pkg/model"
	"github.com/evannetwork/vc-engine/pkg/trace"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a new validator that names fields after their json tag
func NewValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return validate, nil
}

// Check validates s, tracing the call under the engine's tracer
func Check(ctx context.Context, cfg *model.Cfg, s any, log *logger.Log) error {
	tp, err := trace.New(ctx, cfg, log, "vc-engine", "configuration")
	if err != nil {
		return err
	}

	_, span := tp.Start(ctx, "helpers:check")
	defer span.End()

	return CheckSimple(s)
}

// CheckSimple validates s without requiring a tracer
func CheckSimple(s any) error {
	validate, err := NewValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		return NewErrorFromError(err)
	}

	return nil
}
