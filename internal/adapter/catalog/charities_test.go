package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByCause(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	charities, err := c.FindByCause(ctx, "education")
	require.NoError(t, err)
	require.Len(t, charities, 3)
	assert.Equal(t, "Room to Read", charities[0].Name)
	assert.Equal(t, "77-0479905", charities[0].EIN)
	assert.Equal(t, 4.9, charities[0].Rating)
}

func TestFindByCause_CaseAndWhitespaceInsensitive(t *testing.T) {
	c := NewStaticCatalog()

	charities, err := c.FindByCause(context.Background(), "  HEALTH ")
	require.NoError(t, err)
	require.Len(t, charities, 1)
	assert.Equal(t, "Doctors Without Borders", charities[0].Name)
}

func TestFindByCause_UnknownCause(t *testing.T) {
	c := NewStaticCatalog()

	charities, err := c.FindByCause(context.Background(), "space exploration")
	require.NoError(t, err)
	assert.Empty(t, charities)
}

func TestCatalog_EINFormats(t *testing.T) {
	c := NewStaticCatalog()

	for _, cause := range []string{"education", "health", "environment"} {
		charities, err := c.FindByCause(context.Background(), cause)
		require.NoError(t, err)
		for _, charity := range charities {
			assert.Regexp(t, `^\d{2}-\d{7}$`, charity.EIN)
			assert.GreaterOrEqual(t, charity.Rating, 0.0)
			assert.LessOrEqual(t, charity.Rating, 5.0)
		}
	}
}
