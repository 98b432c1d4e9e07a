package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// BodyField names the request body itself in field errors
const BodyField = "body"

// BindJSON decodes the request body into obj. An empty body decodes as an
// empty object. Decoding failures come back as *apperrors.ValidationError so
// they share the validation envelope; every mistyped member is listed.
// Members that decoded cleanly are left set on obj.
func BindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		if body, ok := c.Get(gin.BodyBytesKey); ok {
			if raw, ok := body.([]byte); ok {
				return memberTypeErrors(raw, obj, err)
			}
		}
	}
	return bindingError(err)
}

// memberTypeErrors decodes each top-level member on its own so that one
// mistyped member does not hide the others.
func memberTypeErrors(body []byte, obj interface{}, first error) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return bindingError(err)
	}

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	verr := apperrors.NewValidationError()
	for _, key := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{key: members[key]})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(single, obj); err != nil {
			verr.Merge(bindingError(err))
		}
	}

	if !verr.HasErrors() {
		return bindingError(first)
	}
	return verr
}

func bindingError(err error) error {
	verr := apperrors.NewValidationError()

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			verr.Add(BodyField, "body must be a JSON object")
			break
		}
		verr.Add(field, field+" must be a "+jsonKind(typeErr.Type.Kind().String()))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		verr.Add(BodyField, "body is not valid JSON")
	default:
		verr.Add(BodyField, "body could not be read")
	}
	return verr
}

// jsonKind names a Go kind the way a JSON client would
func jsonKind(kind string) string {
	switch {
	case kind == "string":
		return "string"
	case kind == "bool":
		return "boolean"
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"), strings.HasPrefix(kind, "float"):
		return "number"
	case kind == "slice", kind == "array":
		return "array"
	default:
		return "object"
	}
}
