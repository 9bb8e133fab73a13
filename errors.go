/*
Copyright © 2026 the stormlab authors.
This file is part of stormlab.

stormlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

stormlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with stormlab.  If not, see <http://www.gnu.org/licenses/>.
*/

package stormlab

import "fmt"

// InvalidInputError reports a single out-of-range or malformed argument to
// an algorithmic function (e.g. a non-positive slope, an unknown storm
// type, an inflow with fewer than 2 samples).
type InvalidInputError struct {
	Field string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Field, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func invalidInput(field string, err error) error {
	return &InvalidInputError{Field: field, Err: err}
}

// InvalidProjectError reports a fatal condition discovered by the system
// router while interpreting a Project: an unknown event id or a cycle in
// the DAG.
type InvalidProjectError struct {
	Reason string
	Err    error
}

func (e *InvalidProjectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid project: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid project: %s", e.Reason)
}

func (e *InvalidProjectError) Unwrap() error { return e.Err }

func invalidProject(reason string, err error) error {
	return &InvalidProjectError{Reason: reason, Err: err}
}
