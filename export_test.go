// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"testing"
)

// CheckInvariants - test hook for the external test package; the
// verification logic itself is test-only code
func (m *Map[K, V]) CheckInvariants(tb testing.TB) {
	tb.Helper()
	m.checkInvariants(tb)
}
