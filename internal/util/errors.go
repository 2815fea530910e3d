package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrAccountNotApproved = errors.New("account pending approval")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrQuizNotFound       = errors.New("quiz not found or inactive")
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrClubNotFound       = errors.New("club not found")
	ErrAlreadyMember      = errors.New("already a club member")
	ErrTutorQuotaReached  = errors.New("daily tutor question limit reached")
)
