// Package bind decodes json request bodies and validates them with struct tags
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	perr "yamlgate/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody is the default request body limit
const MaxBody = 1 << 20

type engine struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	once sync.Once
	eng  engine
)

// repoName matches owner/name repository slugs
var repoName = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

func get() engine {
	once.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			switch name {
			case "":
				return f.Name
			case "-":
				return ""
			}
			return name
		})
		_ = entrans.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterValidation("repo", func(fl validator.FieldLevel) bool {
			return repoName.MatchString(fl.Field().String())
		})

		short := map[string]string{
			"min":  "{0} must be at least {1}",
			"max":  "{0} must be at most {1}",
			"repo": "{0} must look like owner/name",
		}
		for tag, text := range short {
			_ = v.RegisterTranslation(tag, trans,
				func(t ut.Translator) error { return t.Add(tag, text, true) },
				func(t ut.Translator, fe validator.FieldError) string {
					msg, _ := t.T(tag, fe.Field(), fe.Param())
					return msg
				},
			)
		}
		eng = engine{v: v, trans: trans}
	})
	return eng
}

// ParseJSON decodes the body of r into T and validates it
// unknown fields, trailing data and bodies over limit bytes are json errors
func ParseJSON[T any](r *http.Request, limit int64) (T, error) {
	var dst T
	if limit <= 0 {
		limit = MaxBody
	}
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dst, perr.JSONErrf("empty body")
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, Validate(dst)
}

// Validate runs the struct tags of v and returns the first failure translated
func Validate(v any) error {
	e := get()
	err := e.v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(e.trans)), fe.Namespace())
	}
	return perr.Wrap(err, perr.ErrorCodeValidation, "validation error")
}
