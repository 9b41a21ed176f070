package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateTempPassword(t *testing.T) {
	first, err := GenerateTempPassword()
	require.NoError(t, err)
	second, err := GenerateTempPassword()
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
}
