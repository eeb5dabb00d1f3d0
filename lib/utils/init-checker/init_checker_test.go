package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface {
	Name() string
}

type store struct{}

func (store) Name() string { return "store" }

func TestCheckInit(t *testing.T) {
	t.Run(`initialized`, func(t *testing.T) {
		var p provider = store{}
		require.NotPanics(t, func() {
			CheckInit("store", &store{}, "provider", p)
		})
	})
	t.Run(`nil interface`, func(t *testing.T) {
		var p provider
		require.PanicsWithValue(t, "provider dependency not initialized", func() {
			CheckInit("provider", p)
		})
	})
	t.Run(`nil pointer`, func(t *testing.T) {
		var s *store
		require.PanicsWithValue(t, "db.DB dependency not initialized", func() {
			CheckInit("db.DB", s)
		})
	})
	t.Run(`odd arguments`, func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("store")
		})
	})
}
