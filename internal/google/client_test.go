package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFoldsSystemForGemma(t *testing.T) {
	c := &Client{model: ModelGemma3_27B}
	contents, config := c.request("be brief", "three sentences")

	assert.Nil(t, config)
	require.Len(t, contents, 1)
	assert.Equal(t, "be brief\n\nthree sentences", contents[0].Parts[0].Text)
}

func TestRequestUsesSystemInstruction(t *testing.T) {
	c := &Client{model: ModelGemini2_5Flash}
	contents, config := c.request("be brief", "three sentences")

	require.NotNil(t, config)
	assert.Equal(t, "be brief", config.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "three sentences", contents[0].Parts[0].Text)
}
