package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/pathkit/pkg/util"
	"go.uber.org/zap"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
}

func translateError(err error) []string {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []string{err.Error()}
	}
	errs := make([]string, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, e.Translate(trans))
	}
	return errs
}

type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	code := err
	var wrapped *util.Error
	if errors.As(err, &wrapped) {
		code = wrapped.Code()
	}

	switch {
	case errors.Is(code, util.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(code, util.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (api *RoutingAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := envelope{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		api.log.Error("writing error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *RoutingAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, translateError(err))
}

func (api *RoutingAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := getStatusCode(err)
	if status == http.StatusInternalServerError {
		api.log.Error("internal error", zap.Error(err))
		api.errorResponse(w, r, status, "the server encountered a problem and could not process your request")
		return
	}
	api.errorResponse(w, r, status, err.Error())
}
