package entities

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates a referenced account, item or user does not exist.
var ErrNotFound = errors.New("not found")

// InsufficientFundsError is returned when a debit would take a balance
// negative. It is an expected business outcome, not a storage failure.
type InsufficientFundsError struct {
	Currency CurrencyKind
	Have     int64
	Need     int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s balance: have %d, need %d", e.Currency, e.Have, e.Need)
}

// IsInsufficientFunds reports whether err is an InsufficientFundsError
func IsInsufficientFunds(err error) bool {
	var target *InsufficientFundsError
	return errors.As(err, &target)
}

// OnCooldownError is returned when an action is still gated by its cooldown window.
type OnCooldownError struct {
	Action    ActionKind
	Remaining time.Duration
}

func (e *OnCooldownError) Error() string {
	return fmt.Sprintf("%s is on cooldown for %s", e.Action, e.Remaining.Round(time.Second))
}

// IsOnCooldown reports whether err is an OnCooldownError
func IsOnCooldown(err error) bool {
	var target *OnCooldownError
	return errors.As(err, &target)
}

// ValidationError indicates malformed or out-of-range caller input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation error with a formatted reason
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// LimitExceededError indicates a business limit was hit (shop max quantity,
// transfer ceiling).
type LimitExceededError struct {
	Reason string
}

func (e *LimitExceededError) Error() string {
	return e.Reason
}

// IsLimitExceeded reports whether err is a LimitExceededError
func IsLimitExceeded(err error) bool {
	var target *LimitExceededError
	return errors.As(err, &target)
}
