// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package llm writes narrative briefs of a dashboard view with a language
// model. Provider hides the vendor API; Brief builds the prompt from a view.
package llm

import "context"

// Provider completes one prompt. Complete must return promptly once ctx is
// done.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request is a single-turn completion. Zero values defer to the provider.
type Request struct {
	System string
	Prompt string

	Model       string
	MaxTokens   int
	Temperature *float64
}

// Response is the text the model wrote and what it cost.
type Response struct {
	Content string
	Model   string // model that served the request
	Usage   Usage
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is InputTokens plus OutputTokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }
