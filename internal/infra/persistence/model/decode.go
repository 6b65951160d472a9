// Package model maps documents of the realtime store to domain entities.
// Documents are schemaless: numbers may arrive as strings and optional fields
// may be missing, so every read goes through decode, which coerces and then
// validates the document.
package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

//nolint:gochecknoglobals
var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func documentValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

// decode coerces raw into out, a pointer to a document struct, and validates
// it. Failures are *domainerrors.DecodeError.
func decode(collection, id string, raw json.RawMessage, out any) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domainerrors.NewDecodeError(collection, id, "", "invalid json")
	}
	fields, ok := doc.(map[string]any)
	if !ok {
		return domainerrors.NewDecodeError(collection, id, "", "not an object")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "create document decoder")
	}
	if err := dec.Decode(fields); err != nil {
		return domainerrors.NewDecodeError(collection, id, "", err.Error())
	}

	if err := documentValidator().Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return domainerrors.NewDecodeError(collection, id, verrs[0].Field(), failedRule(verrs[0]))
		}

		return domainerrors.NewDecodeError(collection, id, "", err.Error())
	}

	return nil
}

func failedRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// IsDecodeError reports whether err is a document decode failure.
func IsDecodeError(err error) bool {
	var de *domainerrors.DecodeError

	return errors.As(err, &de)
}
