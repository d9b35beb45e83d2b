package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/stendrelay/pkg/api"
)

// maxBodyBytes предел размера тела запроса
const maxBodyBytes = 64 << 10

// formDecodable запрос, который умеет заполняться из url-encoded формы
type formDecodable interface {
	decodeForm(values url.Values) error
}

// newValidator создает validator, который называет поля по json тегам
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody разбирает JSON или url-encoded тело в dst и проверяет его.
// Пустое тело дает нулевую структуру: отсутствие полей проверяет сервисный слой.
func decodeBody(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any, form formDecodable) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("invalid form body: %w", err)
		}
		if err := form.decodeForm(r.PostForm); err != nil {
			return err
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return describeJSONError(err)
		}
	}

	if err := v.Struct(dst); err != nil {
		return describeValidationError(err)
	}
	return nil
}

func describeJSONError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Errorf("%s must be a %s", typeErr.Field, jsonTypeName(typeErr.Type.Kind()))
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body is larger than %d bytes", maxErr.Limit)
	}
	return fmt.Errorf("invalid JSON body: %w", err)
}

func jsonTypeName(k reflect.Kind) string {
	switch k {
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "whole number"
	case reflect.String:
		return "string"
	default:
		return k.String()
	}
}

func describeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "max":
		return fmt.Errorf("%s is too long (max %s)", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

func formString(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	s := values.Get(key)
	return &s
}

func formFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}

// formMinutes разбирает число минут, дробные и слишком большие значения допустимы
func formMinutes(values url.Values, key string) (*api.Minutes, error) {
	f, err := formFloat(values, key)
	if err != nil || f == nil {
		return nil, err
	}
	m := api.MinutesFromFloat(*f)
	return &m, nil
}
