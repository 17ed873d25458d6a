package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnum(t *testing.T) {
	type status string

	active := New(status("active"))
	require.Equal(t, status("active"), active)

	v, err := ToEnum[status]("active")
	require.NoError(t, err)
	require.Equal(t, active, v)

	_, err = ToEnum[status]("unregistered")
	require.Error(t, err)
}
