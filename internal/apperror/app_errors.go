package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInputClosed  = errors.New("input stream closed")
)
