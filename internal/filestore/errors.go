package filestore

import "errors"

var (
	ErrUnknownDriver = errors.New("unknown file storage driver")
	ErrInvalidPath   = errors.New("invalid file path")
	ErrEmptyFile     = errors.New("empty file")
	ErrStoringFile   = errors.New("error storing file")
	ErrDeletingFile  = errors.New("error deleting file")
)
