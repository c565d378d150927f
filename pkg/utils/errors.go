package utils

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCount = errors.New("malformed count")
	ErrMalformedDate  = errors.New("malformed date")
)

// MalformedCountError indica que um texto de contagem (inscritos, vídeos, views)
// não pôde ser convertido em inteiro
type MalformedCountError struct {
	Input string
}

func (e *MalformedCountError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMalformedCount, e.Input)
}

func (e *MalformedCountError) Unwrap() error {
	return ErrMalformedCount
}

// MalformedDateError indica que um texto de data não segue o formato "Jan 2, 2006"
type MalformedDateError struct {
	Input string
	Err   error
}

func (e *MalformedDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", ErrMalformedDate, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q", ErrMalformedDate, e.Input)
}

func (e *MalformedDateError) Unwrap() error {
	return ErrMalformedDate
}
