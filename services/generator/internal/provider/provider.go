// Package provider adapts external text-to-image APIs behind a single
// interface so the worker does not care which vendor renders a job.
package provider

import (
	"context"
	"errors"
)

var (
	ErrUnknownProvider = errors.New("unknown image provider")
	ErrEmptyResult     = errors.New("provider returned no image")
)

// Request carries everything a vendor needs to render one image.
type Request struct {
	Prompt      string
	StylePreset string
	Chromatic   float64
	Width       int
	Height      int
}

// ImageHandle is the vendor's output: either the image bytes inline or
// a URL the bytes can be fetched from. Exactly one field is set.
type ImageHandle struct {
	Data []byte
	URL  string
}

// Provider renders a single image for a request.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (*ImageHandle, error)
}

// Registry holds the configured providers by name. Lookup failures are
// reported before any network call is made.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}
