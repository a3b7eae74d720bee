package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

// custom tags and their messages
var customTags = map[string]string{
	"alphanum_":      "may only contain letters, digits and underscores",
	"category":       "must be one of Programming, Database, Networking, Security, Electives",
	"subject_status": "must be one of Pending, Ongoing, Completed",
	"priority":       "must be one of Low, Moderate, High",
	"project_status": "must be one of NOT_STARTED, IN_PROGRESS, COMPLETED",
}

func init() {
	validate = validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("alphanum_", alphanumUnderscore)
	_ = validate.RegisterValidation("category", stringCheck(models.IsValidCategory))
	_ = validate.RegisterValidation("subject_status", stringCheck(models.IsValidSubjectStatus))
	_ = validate.RegisterValidation("priority", stringCheck(models.IsValidPriority))
	_ = validate.RegisterValidation("project_status", stringCheck(models.IsValidProjectStatus))

	noop := func(ut.Translator) error { return nil }
	for tag := range customTags {
		_ = validate.RegisterTranslation(tag, translator, noop, translateCustomTag)
	}
}

func translateCustomTag(_ ut.Translator, fe validator.FieldError) string {
	return fe.Field() + " " + customTags[fe.Tag()]
}

func alphanumUnderscore(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func stringCheck(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags. It
// writes the 400 response itself and reports whether the handler may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	return validateRequest(w, dst)
}

func validateRequest(w http.ResponseWriter, dst interface{}) bool {
	err := validate.Struct(dst)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Translate(translator)
	}

	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   http.StatusText(http.StatusBadRequest),
		"message": "Validation failed",
		"fields":  fields,
	})
	return false
}
