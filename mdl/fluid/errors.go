// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "fmt"

// NotModeledError indicates that a property correlation is not physically
// modeled for the requested substance and phase. Callers must treat it as
// fatal for that code path or fall back to a different model; values are
// never silently approximated.
type NotModeledError struct {
	Substance string // substance name
	Property  string // requested property
}

// Error returns the error message
func (e *NotModeledError) Error() string {
	return fmt.Sprintf("%s of %s is not modeled", e.Property, e.Substance)
}
