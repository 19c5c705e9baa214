package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNegateSentinels(t *testing.T) {
	require.Equal(t, "FALSE", Negate(True()).ID)
	require.Equal(t, "TRUE", Negate(False()).ID)
}

func TestNegateDoubleNotCollapses(t *testing.T) {
	p, _ := Predicate("x", OpLess, 1, 0, "")
	n1, err := Not(p, "not1")
	require.NoError(t, err)
	require.True(t, Negate(n1).Equal(p))
}

func TestNegateDefaultWrapsFreshNot(t *testing.T) {
	p, _ := Predicate("x", OpLess, 1, 0, "")
	neg := Negate(p)
	require.Equal(t, KindNot, neg.Kind)
	require.True(t, neg.Child.Equal(p))
	require.Equal(t, "neg_"+p.ID, neg.ID)
}
