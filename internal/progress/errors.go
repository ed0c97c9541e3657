package progress

import "errors"

var (
	// ErrRecordNotFound is returned by a Backend when no record exists yet for
	// a user and mission. The Store treats it as the mission defaults.
	ErrRecordNotFound = errors.New("progress record not found")

	// ErrNotHydrated is returned by mutations issued before the store holds a
	// record from a load or a restore.
	ErrNotHydrated = errors.New("progress store not loaded")

	// ErrSuperseded is returned by a Load whose result was discarded because a
	// later Load was issued before it resolved.
	ErrSuperseded = errors.New("load superseded by a newer call")

	// ErrInvalidInput reports a mutation called with arguments outside its contract.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRecord reports a record that violates an invariant.
	ErrInvalidRecord = errors.New("invalid progress record")

	// ErrMalformedRecord reports serialized record data that cannot be decoded.
	ErrMalformedRecord = errors.New("malformed progress record")
)
