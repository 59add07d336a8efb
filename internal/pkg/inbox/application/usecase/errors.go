package usecase

import "errors"

var (
	// ErrPersistence indicates an infrastructure/repository failure inside a
	// use case. Safe to retry.
	ErrPersistence = errors.New("inbox use case persistence error")

	// ErrUnsupportedPayload marks a webhook body that is not a page event batch.
	ErrUnsupportedPayload = errors.New("inbox: unsupported webhook payload")

	// ErrConversationNotFound covers both unknown ids and conversations owned
	// by a different account.
	ErrConversationNotFound = errors.New("inbox: conversation not found")

	// ErrPageNotLinked means the account has no page credential to send with.
	ErrPageNotLinked = errors.New("inbox: no facebook page linked")

	// ErrDeliveryFailed means the Graph API rejected or timed out on the
	// outbound send; nothing was persisted.
	ErrDeliveryFailed = errors.New("inbox: message delivery failed")
)
