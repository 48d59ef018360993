package contract

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of the offspring contract.
const Codespace = "offspring"

var (
	// ErrUnauthorized is returned when a sender other than the owner sends an owner-only message.
	ErrUnauthorized = errorsmod.Register(Codespace, 2, "unauthorized")
	// ErrInactive is returned for any execute message after deactivation.
	ErrInactive = errorsmod.Register(Codespace, 3, "This contract is inactive.")
	// ErrPermission hides whether the address or the viewing key was wrong.
	ErrPermission = errorsmod.Register(Codespace, 4, "This address does not have permission and/or viewing key is not valid")
	// ErrInvalidRequest is returned for messages that do not decode to exactly one variant.
	ErrInvalidRequest = errorsmod.Register(Codespace, 5, "invalid request")
	// ErrOverflow is returned when the counter would leave the int32 range.
	ErrOverflow = errorsmod.Register(Codespace, 6, "counter overflow")
	// ErrNotInitialized is returned when the contract state has not been instantiated.
	ErrNotInitialized = errorsmod.Register(Codespace, 7, "contract not instantiated")
	// ErrFactoryQuery is returned when the factory cannot answer a query.
	ErrFactoryQuery = errorsmod.Register(Codespace, 8, "factory query failed")
)
