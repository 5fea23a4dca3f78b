package randgen

import (
	"errors"
	"fmt"

	"github.com/johndpope/tgen/nlp/types"
)

var (
	// ErrModelNotLoaded indicates use of a generator before Train or LoadModel.
	ErrModelNotLoaded = errors.New("randgen: model not loaded")
	// ErrUnknownSemanticItem indicates a dialogue act item never seen in training.
	ErrUnknownSemanticItem = errors.New("randgen: unknown semantic item")
	// ErrUnknownFormeme indicates an expandable node whose formeme has no distribution.
	ErrUnknownFormeme = errors.New("randgen: unknown formeme")
	// ErrCorpusLengthMismatch indicates differing numbers of trees and dialogue acts.
	ErrCorpusLengthMismatch = errors.New("randgen: corpus length mismatch")
	// ErrBadModelFormat indicates a model stream with a foreign magic or version.
	ErrBadModelFormat = errors.New("randgen: bad model format")
)

// UnknownItemError names the item missing from the attachment counts.
type UnknownItemError struct {
	Item types.DAI
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnknownSemanticItem, e.Item)
}

func (e *UnknownItemError) Unwrap() error {
	return ErrUnknownSemanticItem
}

// UnknownFormemeError names the formeme missing from the merged distributions.
type UnknownFormemeError struct {
	Formeme types.Formeme
}

func (e *UnknownFormemeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownFormeme, string(e.Formeme))
}

func (e *UnknownFormemeError) Unwrap() error {
	return ErrUnknownFormeme
}
