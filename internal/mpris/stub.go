//go:build !linux

package mpris

import (
	"github.com/alakhsir/studium/internal/media"
	"github.com/alakhsir/studium/internal/session"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ *session.Controller, _ media.Element) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
