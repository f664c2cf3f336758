package game

import "errors"

var (
	ErrInvalidDieSides      = errors.New("number of die sides must be at least 1")
	ErrInvalidFreeDiceCount = errors.New("number of free dice cannot be negative")
	ErrInvalidHandSize      = errors.New("hand size cannot be negative")
	ErrInvalidFace          = errors.New("die face out of range")
	ErrNoFaces              = errors.New("cannot draw from an empty face list")
)
