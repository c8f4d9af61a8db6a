// SPDX-License-Identifier: MIT

package subset_test

import (
	"testing"

	"github.com/Niceman228/matrix-task-status-diagnostics/subset"
)

// BenchmarkAll15 measures a full walk at the reference ceiling: 32,767 subsets.
func BenchmarkAll15(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for range subset.All(15) {
		}
	}
}
