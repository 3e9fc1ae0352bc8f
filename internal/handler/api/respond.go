package api

import (
	"encoding/json"
	"io"
	"net/http"

	reqdto "event-reservation/internal/handler/dto/request"
	"event-reservation/internal/handler/httperr"
	"event-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const (
	msgInvalidData   = "The given data was invalid."
	msgUnauthorized  = "This action is unauthorized."
	msgNotFound      = "Not found"
	msgMalformed     = "Invalid request"
	msgInternalError = "Internal server error"
)

var errMalformedBody = errs.New("malformed request body")

type normalizer interface {
	Normalize()
}

// bindRequest decodes the JSON body, treats empty optional strings as absent,
// then runs the binding rules. An empty body decodes to the zero request.
// A value of the wrong JSON type is reported on its field together with the
// binding failures.
func bindRequest(c *gin.Context, req normalizer) error {
	v := errs.NewValidationError()
	if c.Request.Body != nil {
		err := json.NewDecoder(c.Request.Body).Decode(req)
		var typeErr *json.UnmarshalTypeError
		switch {
		case err == nil, errs.Is(err, io.EOF):
		case errs.As(err, &typeErr) && typeErr.Field != "":
			key, msg := reqdto.TypeError(typeErr)
			v.Add(key, msg)
		default:
			return errs.Mark(errs.Wrap(err, "decode request"), errMalformedBody)
		}
	}
	req.Normalize()
	if err := binding.Validator.ValidateStruct(req); err != nil {
		fields, ok := reqdto.FieldErrors(err)
		if !ok {
			return errs.Mark(err, errMalformedBody)
		}
		for k, msg := range fields {
			v.Add(k, msg)
		}
	}
	return v.OrNil()
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

type validationDetail struct {
	Errors map[string]string `json:"errors"`
	Old    any               `json:"old,omitempty"`
}

// respondError maps usecase error kinds to statuses. old is echoed back with
// validation failures so the form can be refilled.
func respondError(c *gin.Context, err error, old any) {
	if v, ok := errs.AsValidation(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgInvalidData,
			validationDetail{Errors: v.Fields, Old: old})
		return
	}

	switch {
	case errs.Is(err, errMalformedBody):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMalformed, nil)
	case errs.Is(err, errs.ErrAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgUnauthorized, nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgNotFound, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
	}
}
