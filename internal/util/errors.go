package util

import "errors"

var (
	ErrEmailRegistered = errors.New("email already registered")
	ErrProgramNotFound = errors.New("program not found")
	ErrInvalidImageExt = errors.New("invalid image extension, only jpg/jpeg/png/webp/svg allowed")
	ErrInvalidVideoExt = errors.New("invalid video extension")
	ErrUnknownBucket   = errors.New("unknown storage bucket")
)
