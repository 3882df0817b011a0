package service

import "errors"

var (
	ErrPlanNotFound              = errors.New("plan not found")
	ErrInvalidRequest            = errors.New("invalid request")
	ErrRateLimited               = errors.New("too many contact requests")
	ErrContactStorageUnavailable = errors.New("contact message storage is not configured")
)
