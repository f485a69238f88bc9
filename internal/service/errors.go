package service

import "errors"

var (
	ErrWrongCredentials        = errors.New("wrong credentials")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrRemoteService = errors.New("remote service error")
	ErrNoAIResponse  = errors.New("no response from AI")

	ErrPersistence = errors.New("database error")
	ErrFileStorage = errors.New("file storage error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrServiceUnhealthy      = errors.New("service is unhealthy")
)
