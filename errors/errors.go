/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"time"
)

// Common sentinel errors
var (
	// ErrArgument is returned when a required call input is missing or unresolvable
	ErrArgument = errors.New("invalid argument")

	// ErrShape is returned when a payload has an unsupported shape
	ErrShape = errors.New("unsupported payload shape")

	// ErrProviderUnresolved is returned when no provider instance can be constructed
	ErrProviderUnresolved = errors.New("provider unresolved")

	// ErrRemoteCall is returned when the transport rejects a remote call
	ErrRemoteCall = errors.New("remote call failed")

	// ErrCancelled is returned when the transport reports a cancelled call
	ErrCancelled = errors.New("call cancelled")

	// ErrTimeout is returned when the client-side wait exceeded its budget
	ErrTimeout = errors.New("call timed out")
)

// ArgumentError represents a missing or unresolvable required input.
type ArgumentError struct {
	Op     string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// ShapeError represents a payload whose shape this layer cannot translate.
type ShapeError struct {
	Op    string
	Shape any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unsupported payload shape %T", e.Op, e.Shape)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// ProviderUnresolvedError represents a failure to construct a provider instance.
type ProviderUnresolvedError struct {
	Name string
}

func (e *ProviderUnresolvedError) Error() string {
	return fmt.Sprintf("no provider constructible for %q", e.Name)
}

func (e *ProviderUnresolvedError) Is(target error) bool {
	return target == ErrProviderUnresolved
}

// RemoteCallError represents a transport-level rejection of a remote call.
type RemoteCallError struct {
	Method string
	Err    error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote call %q failed: %v", e.Method, e.Err)
}

func (e *RemoteCallError) Is(target error) bool {
	return target == ErrRemoteCall
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// CancellationError represents a transport-level cancellation, distinguished
// from a generic failure.
type CancellationError struct {
	Method string
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("remote call %q cancelled", e.Method)
}

func (e *CancellationError) Is(target error) bool {
	return target == ErrCancelled
}

// TimeoutError represents a client-side wait that exceeded its budget. The
// underlying remote call is not cancelled and may still complete.
type TimeoutError struct {
	Method string
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("remote call %q gave up after %s", e.Method, e.Budget)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// Helper functions for creating errors

// NewArgumentError creates a new ArgumentError
func NewArgumentError(op, reason string) error {
	return &ArgumentError{Op: op, Reason: reason}
}

// NewShapeError creates a new ShapeError
func NewShapeError(op string, shape any) error {
	return &ShapeError{Op: op, Shape: shape}
}

// NewProviderUnresolvedError creates a new ProviderUnresolvedError
func NewProviderUnresolvedError(name string) error {
	return &ProviderUnresolvedError{Name: name}
}

// NewRemoteCallError creates a new RemoteCallError
func NewRemoteCallError(method string, err error) error {
	return &RemoteCallError{Method: method, Err: err}
}

// NewCancellationError creates a new CancellationError
func NewCancellationError(method string) error {
	return &CancellationError{Method: method}
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(method string, budget time.Duration) error {
	return &TimeoutError{Method: method, Budget: budget}
}

// IsArgument checks if an error is an argument error
func IsArgument(err error) bool {
	return errors.Is(err, ErrArgument)
}

// IsShape checks if an error is a shape error
func IsShape(err error) bool {
	return errors.Is(err, ErrShape)
}

// IsProviderUnresolved checks if an error is a provider resolution error
func IsProviderUnresolved(err error) bool {
	return errors.Is(err, ErrProviderUnresolved)
}

// IsRemoteCall checks if an error is a remote call error
func IsRemoteCall(err error) bool {
	return errors.Is(err, ErrRemoteCall)
}

// IsCancelled checks if an error is a cancellation error
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
