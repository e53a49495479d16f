//go:build unit

package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rolloff-core/internal/pkg/ptr"
)

func TestToAndDeref(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p := ptr.To("no hazardous waste")
		assert.Equal(t, "no hazardous waste", ptr.Deref(p))

		n := ptr.To(20)
		assert.Equal(t, 20, ptr.Deref(n))
	})

	t.Run("nil yields the zero value", func(t *testing.T) {
		assert.Equal(t, "", ptr.Deref[string](nil))
		assert.Equal(t, 0, ptr.Deref[int](nil))
	})
}
