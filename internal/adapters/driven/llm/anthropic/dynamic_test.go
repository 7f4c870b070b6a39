package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
)

func TestDynamicLLMService_UsesCurrentConfig(t *testing.T) {
	var seenKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenKey = r.Header.Get("x-api-key")
		resp := messagesResponse{}
		resp.Content = append(resp.Content, struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{Type: "text", Text: "ok"})
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	key := "sk-ant-first"
	svc := NewDynamicLLMService(func() (Config, error) {
		return Config{APIKey: key, BaseURL: server.URL}, nil
	})

	out, err := svc.Generate(context.Background(), "hello", driven.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "sk-ant-first", seenKey)

	// A key change is picked up on the next call without a restart.
	key = "sk-ant-second"
	_, err = svc.Generate(context.Background(), "hello", driven.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-second", seenKey)
}

func TestDynamicLLMService_MissingKey(t *testing.T) {
	svc := NewDynamicLLMService(func() (Config, error) {
		return Config{}, nil
	})

	_, err := svc.Generate(context.Background(), "hello", driven.GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestDynamicLLMService_ModelName(t *testing.T) {
	svc := NewDynamicLLMService(func() (Config, error) {
		return Config{Model: "claude-3-opus-20240229"}, nil
	})
	assert.Equal(t, "claude-3-opus-20240229", svc.ModelName())

	svc = NewDynamicLLMService(func() (Config, error) {
		return Config{}, nil
	})
	assert.Equal(t, domain.DefaultModel, svc.ModelName())
	assert.NoError(t, svc.Close())
}
