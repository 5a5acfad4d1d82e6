package gnuplot

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGnuplot_NoCopyGuard checks the field go vet's copylocks check keys on.
func TestGnuplot_NoCopyGuard(t *testing.T) {
	field, ok := reflect.TypeFor[Gnuplot]().FieldByName("noCopy")
	require.True(t, ok)
	require.True(t, reflect.PointerTo(field.Type).Implements(reflect.TypeFor[sync.Locker]()))
}
