package directory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesigner(t *testing.T) {
	d, err := NewDesigner("Lucía")
	require.NoError(t, err)
	assert.True(t, d.Active)

	require.NoError(t, d.Rename("Lucía P."))
	assert.Equal(t, "Lucía P.", d.Name)
	assert.Error(t, d.Rename(" "))

	d.SetActive(false)
	assert.False(t, d.Active)

	_, err = NewDesigner("")
	assert.Error(t, err)
}

func TestClientLink(t *testing.T) {
	clientID := uuid.New()

	l, err := NewClientLink(clientID, "drive", "https://drive.example.com/x")
	require.NoError(t, err)
	assert.Equal(t, clientID, l.ClientID)

	require.NoError(t, l.Update("carpeta", "https://drive.example.com/y"))
	assert.Equal(t, "carpeta", l.Label)

	assert.Error(t, l.Update("", "https://drive.example.com/y"))
	assert.Error(t, l.Update("carpeta", ""))

	_, err = NewClientLink(clientID, "", "https://x")
	assert.Error(t, err)
}
