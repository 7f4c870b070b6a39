package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pagecal-cli/internal/core/services"
)

func validPorts() *Ports {
	return &Ports{
		Extraction: &fakeExtraction{},
		Submission: &fakeSubmission{},
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
		Session:    services.NewSession(),
	}
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, validPorts().Validate())

	p := validPorts()
	p.Extraction = nil
	assert.ErrorIs(t, p.Validate(), ErrMissingExtractionService)

	p = validPorts()
	p.Submission = nil
	assert.ErrorIs(t, p.Validate(), ErrMissingSubmissionService)

	p = validPorts()
	p.Session = nil
	assert.ErrorIs(t, p.Validate(), ErrMissingSession)
}
