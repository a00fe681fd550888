package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrDescriptionTooLong = errors.New("description is too long")

	ErrInvalidBoardSize   = errors.New("board height and width must be positive")
	ErrEmptyYouID         = errors.New("youId is required")
	ErrYouSnakeNotOnBoard = errors.New("youId must reference a snake on the board")
	ErrInvalidMove        = errors.New("expected safe moves may only contain up, down, left, right")
	ErrInvalidTurn        = errors.New("turn cannot be negative")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmptyClientID    = errors.New("clientId is required")
	ErrEmptyIDToken     = errors.New("idToken is required")

	ErrEmptyTestID   = errors.New("testId is required")
	ErrEmptyTestIDs  = errors.New("testIds cannot be empty")
	ErrTooManyTests  = errors.New("too many tests in one batch")
	ErrEmptyUserID   = errors.New("userId is required")
	ErrInvalidStatus = errors.New("invalid test status")
)
