// Package canned provides fixture providers for tests and offline runs.
package canned

import (
	"context"
	"strings"
	"sync"
)

// Rule answers prompts containing Contains with Reply.
type Rule struct {
	Contains string
	Reply    string
}

type Generator struct {
	mu      sync.Mutex
	rules   []Rule
	def     string
	err     error
	prompts []string
}

func NewGenerator(def string, rules ...Rule) *Generator {
	return &Generator{def: def, rules: rules}
}

// Fail makes every following call return err.
func (g *Generator) Fail(err error) *Generator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
	return g
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompts = append(g.prompts, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.err != nil {
		return "", g.err
	}
	for _, r := range g.rules {
		if strings.Contains(prompt, r.Contains) {
			return r.Reply, nil
		}
	}
	return g.def, nil
}

// Prompts returns the prompts received so far.
func (g *Generator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

type Transcriber struct {
	Text string
	Err  error
}

func (t Transcriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	if t.Err != nil {
		return "", t.Err
	}
	return t.Text, ctx.Err()
}
