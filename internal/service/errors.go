package service

import "errors"

// ErrInsufficientData is returned when a patient has too little
// tracked data for an analysis to be meaningful.
var ErrInsufficientData = errors.New("insufficient tracking data")
