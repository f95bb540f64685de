package domain

import (
	"errors"
)

const (
	ShortLinkLength   = 8
	ShortLinkAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	MessageSuccessGetLink = "success get short link"
	MessageFailedGetLink  = "failed to get short link"

	ErrLinkNotFound = errors.New("short link not found")
)

type (
	ShortLinkResponse struct {
		ShortLink string `json:"short-link"`
	}
)
