// SPDX-License-Identifier: MIT

package runs

import "errors"

// Filter itself cannot fail; the sentinels below only guard Apply's options.
// Returned errors wrap them with the operation name, match with errors.Is.
var (
	// ErrBadMembership indicates Options.Membership is not a known strategy.
	ErrBadMembership = errors.New("runs: unknown membership strategy")
)
