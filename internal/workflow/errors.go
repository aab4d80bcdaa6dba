// Package workflow implements the review analysis pipeline for reviewlens:
// a two-node state graph (analyze → explain) over a generative text service,
// with schema-validated responses and a per-call timeout.
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrAnalyzeFailed         = errors.New("review analysis failed")
	ErrExplainFailed         = errors.New("explanation generation failed")
	ErrEmptyResult           = errors.New("service returned an empty result")
	ErrInvalidClassification = errors.New("classification must be Fake or Genuine")
)
