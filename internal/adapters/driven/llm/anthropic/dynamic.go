package anthropic

import (
	"context"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
)

// ConfigFunc supplies the client configuration for one request.
type ConfigFunc func() (Config, error)

// Ensure DynamicLLMService implements the driven port.
var _ driven.LLMService = (*DynamicLLMService)(nil)

// DynamicLLMService builds a client per call, so a credential or model
// changed through settings takes effect without a restart.
type DynamicLLMService struct {
	config ConfigFunc
}

// NewDynamicLLMService creates a service that resolves its
// configuration through the given function on every request.
func NewDynamicLLMService(config ConfigFunc) *DynamicLLMService {
	return &DynamicLLMService{config: config}
}

// Generate produces a text completion using the current configuration.
func (s *DynamicLLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	cfg, err := s.config()
	if err != nil {
		return "", err
	}
	svc, err := NewLLMService(cfg)
	if err != nil {
		return "", err
	}
	defer svc.Close() //nolint:errcheck // nothing to handle on close

	return svc.Generate(ctx, prompt, opts)
}

// ModelName returns the currently configured model.
func (s *DynamicLLMService) ModelName() string {
	cfg, err := s.config()
	if err != nil || cfg.Model == "" {
		return domain.DefaultModel
	}
	return cfg.Model
}

// Close releases resources. Per-call clients are closed as they are
// used, so there is nothing held here.
func (s *DynamicLLMService) Close() error {
	return nil
}
