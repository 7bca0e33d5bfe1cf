package tests

import (
	"testing"

	"quickbite/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQRGenerator(t *testing.T) {
	generator := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}

	png, err := generator.Generate("order-1714564800000")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
