package dialogue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	require.True(t, ValidName("Al"))
	require.True(t, ValidName("Jordan Reyes"))
	require.True(t, ValidName("  Jo  "))

	require.False(t, ValidName("A"))
	require.False(t, ValidName(" A "))
	require.False(t, ValidName(""))
	require.False(t, ValidName("   "))
}

func TestValidContact(t *testing.T) {
	require.True(t, ValidContact("jordan@example.com"))
	require.True(t, ValidContact("a@b.co"))
	require.True(t, ValidContact("5551234567"))
	require.True(t, ValidContact("555123456789012"))
	require.True(t, ValidContact(" jordan@example.com "))

	require.False(t, ValidContact("555-123"))
	require.False(t, ValidContact("555123456"))        // 9 digits
	require.False(t, ValidContact("5551234567890123")) // 16 digits
	require.False(t, ValidContact("jordan@example"))
	require.False(t, ValidContact("jordan example@com.x"))
	require.False(t, ValidContact("@example.com"))
	require.False(t, ValidContact(""))
}
