package auth

import (
	"context"
	"sync"
)

// Fake is a test double for Provider.
type Fake struct {
	mu           sync.Mutex
	session      *Session
	requestErr   error
	verifyErr    error
	otpRequests  []string
	verifyCalls  int
	signOutCalls int
}

// NewFake creates a fake provider that accepts any code once a session is set.
func NewFake() *Fake {
	return &Fake{}
}

// SetSession sets the session returned by VerifyOTP and Refresh.
func (f *Fake) SetSession(s *Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
}

// SetRequestError makes RequestOTP fail.
func (f *Fake) SetRequestError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requestErr = err
}

// SetVerifyError makes VerifyOTP fail.
func (f *Fake) SetVerifyError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyErr = err
}

func (f *Fake) RequestOTP(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otpRequests = append(f.otpRequests, email)
	return f.requestErr
}

func (f *Fake) VerifyOTP(_ context.Context, _, _ string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	if f.session == nil {
		return nil, ErrInvalidCode
	}
	s := *f.session
	return &s, nil
}

func (f *Fake) Refresh(_ context.Context, _ string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return nil, ErrInvalidCode
	}
	s := *f.session
	return &s, nil
}

func (f *Fake) SignOut(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOutCalls++
	return nil
}

// OTPRequests returns the emails passed to RequestOTP.
func (f *Fake) OTPRequests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.otpRequests...)
}

// SignOutCalls returns how many times SignOut ran.
func (f *Fake) SignOutCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signOutCalls
}

var _ Provider = (*Fake)(nil)
