package arch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTopologyShape(t *testing.T) {
	topo := Default()
	assert.Equal(t, "Cloud Architecture", topo.Name)
	assert.Len(t, topo.Components, 10)
	assert.Len(t, topo.Connections, 13)
	require.NoError(t, topo.Validate())
}

func TestDefaultTopologyLookup(t *testing.T) {
	topo := Default()
	c, ok := topo.Lookup("load_balancer")
	require.True(t, ok)
	assert.Equal(t, "Load Balancer", c.Label)
	assert.Equal(t, CategoryNetwork, c.Category)

	_, ok = topo.Lookup("mainframe")
	assert.False(t, ok)
}

func TestCategoryColors(t *testing.T) {
	expected := map[Category]string{
		CategoryUser:    "#4CAF50",
		CategoryWeb:     "#2196F3",
		CategoryApp:     "#FF9800",
		CategoryDB:      "#9C27B0",
		CategoryCache:   "#F44336",
		CategoryStorage: "#795548",
		CategoryNetwork: "#607D8B",
	}
	assert.Len(t, Categories, len(expected))
	for _, cat := range Categories {
		assert.True(t, cat.Valid(), "category %q", cat)
		assert.Equal(t, expected[cat], cat.Color(), "color for %q", cat)
		assert.NotEmpty(t, cat.Title(), "title for %q", cat)
	}
	assert.False(t, Category("mainframe").Valid())
}

func TestValidateUnknownEndpoint(t *testing.T) {
	topo := Default()
	topo.Connections = append(topo.Connections, Connection{From: "app_server", To: "mainframe"})

	err := topo.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "mainframe", verr.Subject)
	assert.Contains(t, verr.Error(), "mainframe")
}

func TestValidateUnknownSource(t *testing.T) {
	topo := Default()
	topo.Connections = append([]Connection{{From: "ghost", To: "database"}}, topo.Connections...)

	var verr *ValidationError
	err := topo.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ghost", verr.Subject)
}

func TestValidateDuplicateComponent(t *testing.T) {
	topo := Default()
	topo.Components = append(topo.Components, topo.Components[0])

	var verr *ValidationError
	err := topo.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "users", verr.Subject)
	assert.Contains(t, verr.Reason, "duplicate")
}

func TestValidateDuplicateConnection(t *testing.T) {
	topo := Default()
	topo.Connections = append(topo.Connections, topo.Connections[0])

	var verr *ValidationError
	err := topo.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Reason, "duplicate connection")
}

func TestValidateUnknownCategory(t *testing.T) {
	topo := Default()
	topo.Components[3].Category = "quantum"

	var verr *ValidationError
	err := topo.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "web_server_1", verr.Subject)
}
