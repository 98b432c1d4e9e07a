package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Rule binds an input field to a validator tag expression, e.g. "required,notblank".
type Rule struct {
	Field string
	Tag   string
}

// RuleSet is an ordered constraint table; violations are reported in this order.
type RuleSet []Rule

// Engine evaluates rule sets with go-playground/validator.
type Engine struct {
	validate *validator.Validate
	messages map[string]string
}

// NewEngine creates an engine with the "notblank" tag registered
func NewEngine() *Engine {
	e := &Engine{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		messages: map[string]string{},
	}
	e.MustRegisterTag("notblank", func(s string) bool {
		return strings.TrimSpace(s) != ""
	}, "must not be blank")
	return e
}

// MustRegisterTag is like RegisterTag but panics if the tag cannot be registered
func (e *Engine) MustRegisterTag(tag string, fn func(string) bool, message string) {
	if err := e.RegisterTag(tag, fn, message); err != nil {
		panic(err)
	}
}

// RegisterTag adds a string predicate under tag. message completes "<field> ...".
func (e *Engine) RegisterTag(tag string, fn func(string) bool, message string) error {
	err := e.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("register validation tag %q: %w", tag, err)
	}
	e.messages[tag] = message
	return nil
}

// Check validates values against rules. With partial set, fields missing from
// values (or nil) are skipped; otherwise they are validated as "".
// Returns nil or a *apperrors.ValidationError naming every violated field.
func (e *Engine) Check(rules RuleSet, values map[string]*string, partial bool) error {
	verr := apperrors.NewValidationError()
	for _, rule := range rules {
		value := values[rule.Field]
		if value == nil {
			if partial {
				continue
			}
			empty := ""
			value = &empty
		}

		if err := e.validate.Var(*value, rule.Tag); err != nil {
			verr.Add(rule.Field, e.formatError(rule.Field, err))
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// formatError creates a human-readable validation error message
func (e *Engine) formatError(field string, err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return field + " is invalid"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	}
	if msg, ok := e.messages[fe.Tag()]; ok {
		return field + " " + msg
	}
	return field + " validation failed: " + fe.Tag()
}
