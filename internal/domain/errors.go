package domain

import "errors"

var (
	// ErrEmptyResult é informativo: snapshot sem vídeos ou agregação sem anos.
	// Quem consome deve tratar como estado vazio válido.
	ErrEmptyResult = errors.New("empty result")

	ErrInvalidVideoRecord = errors.New("invalid video record")
)
