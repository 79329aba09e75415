package service

import (
	"context"
	"errors"

	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/advisor"
	"emerge-career-be/pkg/events"
	"emerge-career-be/pkg/llm"
)

// Shared test doubles. All service tests run against the in-memory
// repository factory and an advisor whose provider either answers with a
// fixed string or always fails (which exercises the fallback tables).

type fixedProvider struct {
	response string
	err      error
}

func (p *fixedProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return p.response, p.err
}

func (p *fixedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.response, p.err
}

type silentLogger struct{}

func (silentLogger) Debug(module, message string, details map[string]interface{}) {}
func (silentLogger) Info(module, message string, details map[string]interface{})  {}
func (silentLogger) Warn(module, message string, details map[string]interface{})  {}
func (silentLogger) Error(module, message string, details map[string]interface{}) {}
func (silentLogger) Sync() error                                                  { return nil }

func newMemoryFactory() unitofwork.RepositoryFactory {
	return unitofwork.NewMemoryRepositoryFactory()
}

func newOfflineAdvisor() *advisor.Advisor {
	return advisor.New(&fixedProvider{err: errors.New("no upstream in tests")}, silentLogger{})
}

func newScriptedAdvisor(response string) *advisor.Advisor {
	return advisor.New(&fixedProvider{response: response}, silentLogger{})
}

// capturingPublisher records published events instead of touching a bus.
type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}
