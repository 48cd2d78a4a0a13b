package ai

import (
	"context"
	"fmt"
	"strings"
)

type mockClient struct{}

// NewMock answers without any network call; used when no provider is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Generate(_ context.Context, prompt string) (string, error) {
	lines := strings.Count(prompt, "\n") + 1
	return fmt.Sprintf("(mock advisor) Received a %d-line request. Configure LLM_PROVIDER for real advice.", lines), nil
}
