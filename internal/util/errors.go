package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrNameTaken          = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrTagNotFound         = errors.New("tag not found")
	ErrInvalidLevel        = errors.New("invalid category level")
	ErrCategoryExists      = errors.New("category already exists")
	ErrInvalidCategoryName = errors.New("category name must contain letters or digits")

	ErrSetNotFound       = errors.New("flashcard set not found")
	ErrSetExists         = errors.New("flashcard set already exists")
	ErrInvalidSetStatus  = errors.New("invalid flashcard set status")
	ErrInvalidSetName    = errors.New("name must be between 1 and 96 characters")
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrFlashcardExists   = errors.New("flashcard already exists")
	ErrEmptyFlashcard    = errors.New("front and back must not be empty")

	ErrAlreadyRated = errors.New("you have already rated this set")
	ErrInvalidRate  = errors.New("rate must be between 1 and 5")

	ErrInsufficientFlashcards = errors.New("not enough flashcards in set")
	ErrIncompleteSubmission   = errors.New("not all questions have been answered")
	ErrQuizNotFound           = errors.New("quiz not found")
)
