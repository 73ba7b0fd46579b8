package game

import (
	"errors"
	"fmt"
)

// GameError is a rule violation or unplayable condition raised by the
// engine. Codes split into fatal conditions (configuration, empty catalog)
// and recoverable guess rejections (duplicate, unknown entity, finished
// session) that leave the session untouched.
type GameError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// PlayerID identifies the offending guess (for guess rejections).
	PlayerID string
}

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates bad epoch/date arithmetic.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// ErrCodeNoPuzzles indicates an empty puzzle catalog.
	ErrCodeNoPuzzles ErrorCode = "NO_PUZZLES_AVAILABLE"

	// ErrCodeDuplicateGuess indicates the player id was already guessed.
	ErrCodeDuplicateGuess ErrorCode = "DUPLICATE_GUESS"

	// ErrCodeUnknownEntity indicates a guess outside the player catalog.
	ErrCodeUnknownEntity ErrorCode = "UNKNOWN_ENTITY"

	// ErrCodeSessionComplete indicates a guess against a finished session.
	ErrCodeSessionComplete ErrorCode = "SESSION_COMPLETE"
)

// Error implements the error interface.
func (e *GameError) Error() string {
	if e.PlayerID != "" {
		return fmt.Sprintf("%s: %s (player=%s)", e.Code, e.Message, e.PlayerID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigurationError reports whether err is a configuration error.
// Uses errors.As to handle wrapped errors.
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsNoPuzzlesError reports whether err signals an empty catalog.
func IsNoPuzzlesError(err error) bool {
	return hasCode(err, ErrCodeNoPuzzles)
}

// IsDuplicateGuessError reports whether err is a duplicate-guess rejection.
func IsDuplicateGuessError(err error) bool {
	return hasCode(err, ErrCodeDuplicateGuess)
}

// IsUnknownEntityError reports whether err is an unknown-entity rejection.
func IsUnknownEntityError(err error) bool {
	return hasCode(err, ErrCodeUnknownEntity)
}

// IsSessionCompleteError reports whether err is a finished-session rejection.
func IsSessionCompleteError(err error) bool {
	return hasCode(err, ErrCodeSessionComplete)
}

func hasCode(err error, code ErrorCode) bool {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}

// NewConfigurationError creates a GameError for bad date/epoch input.
func NewConfigurationError(format string, args ...any) *GameError {
	return &GameError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewNoPuzzlesError creates a GameError for an empty catalog.
func NewNoPuzzlesError() *GameError {
	return &GameError{
		Code:    ErrCodeNoPuzzles,
		Message: "puzzle catalog is empty",
	}
}

// NewDuplicateGuessError creates a GameError for a repeated guess.
func NewDuplicateGuessError(playerID string) *GameError {
	return &GameError{
		Code:     ErrCodeDuplicateGuess,
		Message:  "player already guessed this session",
		PlayerID: playerID,
	}
}

// NewUnknownEntityError creates a GameError for a guess outside the catalog.
func NewUnknownEntityError(playerID string) *GameError {
	return &GameError{
		Code:     ErrCodeUnknownEntity,
		Message:  "player not in reference catalog",
		PlayerID: playerID,
	}
}

// NewSessionCompleteError creates a GameError for a guess after the game
// ended.
func NewSessionCompleteError() *GameError {
	return &GameError{
		Code:    ErrCodeSessionComplete,
		Message: "session already finished",
	}
}
