//go:build linux

// Package mpris exposes the active video session as an MPRIS player over
// D-Bus, so desktop media keys control the lecture like any other player.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/alakhsir/studium/internal/media"
	"github.com/alakhsir/studium/internal/session"
)

// Adapter connects the session controller and media element to MPRIS.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(controller *session.Controller, element media.Element) (*Adapter, error) {
	a := &Adapter{}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{controller: controller, element: element}

	a.server = server.NewServer("studium", rootAdapter, playerAdapter)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Studium", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"video/mp4", "application/x-mpegURL"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	controller *session.Controller
	element    media.Element
}

func (p *playerAdapter) Next() error {
	return nil // Single lecture per session
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	p.element.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.element.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.controller.Close()
	return nil
}

func (p *playerAdapter) Play() error {
	p.element.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.element.Position() + time.Duration(offset)*time.Microsecond
	p.element.SeekTo(pos)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.element.SeekTo(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if !p.controller.Mode().IsActive() {
		return types.PlaybackStatusStopped, nil
	}
	if p.element.State() == media.Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return p.element.Rate(), nil
}

func (p *playerAdapter) SetRate(rate float64) error {
	p.element.SetRate(rate)
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	cur := p.controller.Current()
	if cur == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatSessionID(cur.SourceURL)),
		Length:  types.Microseconds(p.element.Duration().Microseconds()),
		Title:   cur.Title,
	}
	if cur.ThumbnailURL != "" {
		meta.ArtUrl = cur.ThumbnailURL
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.element.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.element.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.element.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 0.25, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 2.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.controller.Mode().IsActive(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatSessionID(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
