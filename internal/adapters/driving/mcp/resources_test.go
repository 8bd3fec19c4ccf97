package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
)

func TestServer_handleRateLimitResource(t *testing.T) {
	search := &mockSearchService{
		status: domain.RateLimitStatus{
			SecondUsed:  1,
			SecondLimit: 1,
			MonthUsed:   37,
			MonthLimit:  15000,
		},
	}
	server := newTestServer(t, search)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: rateLimitURI},
	}

	res, err := server.handleRateLimitResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)

	contents := res.Contents[0]
	assert.Equal(t, rateLimitURI, contents.URI)
	assert.Equal(t, "application/json", contents.MIMEType)

	var status domain.RateLimitStatus
	require.NoError(t, json.Unmarshal([]byte(contents.Text), &status))
	assert.Equal(t, search.status, status)
}
