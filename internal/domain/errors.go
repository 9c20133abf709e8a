package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors (для бизнес-логики консоли)
var (
	// Validation errors
	ErrValidation        = errors.New("validation failed")
	ErrInvalidStatus     = errors.New("invalid member status")
	ErrInvalidSkillLevel = errors.New("invalid skill level")
	ErrInvalidBirthDate  = errors.New("invalid birth date")
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidFilters    = errors.New("invalid filters")
	ErrInvalidEmail      = errors.New("invalid email")

	// User errors
	ErrUserNotFound         = errors.New("user not found")
	ErrSelfAction           = errors.New("action not allowed on own account")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrUnsavedChanges       = errors.New("unsaved changes")
	ErrActionNotAllowed     = errors.New("action not allowed for user status")

	// Instrument errors
	ErrInstrumentAlreadyAdded = errors.New("instrument already added")
	ErrInstrumentNotFound     = errors.New("instrument not found")

	// Role errors
	ErrRoleNotFound = errors.New("role not found")
	ErrRoleFull     = errors.New("role has no spots left")

	// Badge errors
	ErrBadgeAlreadyAssigned = errors.New("badge already assigned")
	ErrBadgeNotFound        = errors.New("badge not found")

	// Wizard / draft errors
	ErrDraftNotFound     = errors.New("draft not found")
	ErrNotOnReviewStep   = errors.New("submission is only possible from the review step")
	ErrPhotoUploadFailed = errors.New("photo upload failed")
	ErrUnsupportedPhoto  = errors.New("unsupported photo format")
	ErrPhotoTooLarge     = errors.New("photo too large")

	// Newsletter errors
	ErrAlreadySubscribed = errors.New("already subscribed")

	// Listing errors
	ErrUnknownTab = errors.New("unknown tab")
)

// ValidationError несёт ошибки по полям формы.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// Is позволяет сравнивать через errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UpstreamError: ответ ISEP Bands API с кодом не 2xx ({error, details?}).
type UpstreamError struct {
	Status  int
	Message string
	Details string
}

func (e *UpstreamError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("upstream %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// HTTPError для ответов консоли
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrValidation:             {Code: "VALIDATION_FAILED", Message: "some fields are invalid"},
	ErrInvalidStatus:          {Code: "INVALID_STATUS", Message: "unknown member status"},
	ErrInvalidSkillLevel:      {Code: "INVALID_LEVEL", Message: "unknown skill level"},
	ErrInvalidBirthDate:       {Code: "INVALID_BIRTH_DATE", Message: "birth date must be YYYY-MM-DD"},
	ErrUnknownField:           {Code: "UNKNOWN_FIELD", Message: "unknown form field"},
	ErrUnknownAction:          {Code: "UNKNOWN_ACTION", Message: "unknown action type"},
	ErrInvalidFilters:         {Code: "INVALID_FILTERS", Message: "invalid list filters"},
	ErrInvalidEmail:           {Code: "INVALID_EMAIL", Message: "email is invalid"},
	ErrUserNotFound:           {Code: "NOT_FOUND", Message: "user not found"},
	ErrSelfAction:             {Code: "SELF_ACTION", Message: "you cannot do this on your own account"},
	ErrConfirmationRequired:   {Code: "CONFIRMATION_REQUIRED", Message: "this action must be confirmed"},
	ErrUnsavedChanges:         {Code: "UNSAVED_CHANGES", Message: "there are unsaved changes"},
	ErrActionNotAllowed:       {Code: "NOT_ALLOWED", Message: "action not allowed for this user"},
	ErrInstrumentAlreadyAdded: {Code: "INSTRUMENT_EXISTS", Message: "instrument already in the list"},
	ErrInstrumentNotFound:     {Code: "NOT_FOUND", Message: "instrument not in the list"},
	ErrRoleNotFound:           {Code: "NOT_FOUND", Message: "role not found"},
	ErrRoleFull:               {Code: "ROLE_FULL", Message: "role has no spots left"},
	ErrBadgeAlreadyAssigned:   {Code: "BADGE_EXISTS", Message: "badge already assigned"},
	ErrBadgeNotFound:          {Code: "NOT_FOUND", Message: "badge not found"},
	ErrDraftNotFound:          {Code: "NOT_FOUND", Message: "draft not found or expired"},
	ErrNotOnReviewStep:        {Code: "NOT_ON_REVIEW_STEP", Message: "finish the wizard before submitting"},
	ErrPhotoUploadFailed:      {Code: "UPLOAD_FAILED", Message: "photo upload failed"},
	ErrUnsupportedPhoto:       {Code: "UNSUPPORTED_PHOTO", Message: "photo must be jpeg, png, webp or gif"},
	ErrPhotoTooLarge:          {Code: "PHOTO_TOO_LARGE", Message: "photo exceeds the size limit"},
	ErrAlreadySubscribed:      {Code: "ALREADY_SUBSCRIBED", Message: "already subscribed recently"},
	ErrUnknownTab:             {Code: "NOT_FOUND", Message: "unknown tab"},
}

// ToHTTPError преобразует domain ошибку (в том числе обёрнутую) в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	if httpErr, exists := ErrorMapping[err]; exists {
		return httpErr, true
	}
	for target, httpErr := range ErrorMapping {
		if errors.Is(err, target) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
