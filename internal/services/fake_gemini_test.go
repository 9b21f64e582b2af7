package services

import (
	"context"
	"sync"
)

// fakeGemini scripts gateway responses by inspecting the rendered prompt.
// It is safe for the concurrent use the analyzer exercises.
type fakeGemini struct {
	mu      sync.Mutex
	respond func(prompt string) (string, error)
	prompts []string
}

func (f *fakeGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	return f.respond(prompt)
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, _ int) (string, error) {
	return f.GenerateText(ctx, prompt)
}

func (f *fakeGemini) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
