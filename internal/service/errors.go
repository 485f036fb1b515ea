package service

import "errors"

var (
	ErrValidationInvalidVoteState = errors.New("vote state must be RespondedAccepted or RespondedRejected")
	ErrValidationInvalidAlgorithm = errors.New("algorithm must be Ed25519 or Secp256k1")
	ErrValidationNegativeQuantity = errors.New("quantity must not be negative")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
