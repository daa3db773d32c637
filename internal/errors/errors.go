// Package errors provides sentinel errors and custom error types for branchwire.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrUnsupportedOperation indicates an operation that a project type refuses outright
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrPersistence indicates that saving or loading an item failed
	ErrPersistence = errors.New("persistence failure")

	// ErrNameDecode indicates that a stored item name could not be decoded
	ErrNameDecode = errors.New("cannot decode item name")

	// ErrContainerNotFound indicates that no multi-branch project has the given full name
	ErrContainerNotFound = errors.New("multi-branch project not found")

	// ErrBranchNotFound indicates that a multi-branch project has no such branch
	ErrBranchNotFound = errors.New("branch project not found")

	// ErrItemNotFound indicates that no item has the given full name
	ErrItemNotFound = errors.New("item not found")

	// ErrItemExists indicates that an item with the same name already exists
	ErrItemExists = errors.New("item already exists")

	// ErrInvalidName indicates that an item name is not acceptable
	ErrInvalidName = errors.New("invalid item name")

	// ErrDependencyCycle indicates that upstream references form a cycle
	ErrDependencyCycle = errors.New("dependency cycle")
)

// UnsupportedOperationError is returned when a project refuses an operation,
// for example renaming a branch project or submitting its configuration
type UnsupportedOperationError struct {
	Op      string
	Project string
	Reason  string
}

func (e *UnsupportedOperationError) Error() string {
	msg := fmt.Sprintf("%s not supported", e.Op)
	if e.Project != "" {
		msg += fmt.Sprintf(" for %s", e.Project)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is returns true if the target error is ErrUnsupportedOperation
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(op, project, reason string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Op: op, Project: project, Reason: reason}
}

// PersistenceError wraps an I/O failure while saving or loading an item
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(path string, err error) *PersistenceError {
	return &PersistenceError{Path: path, Err: err}
}

// NameDecodeError is returned when a raw on-disk name cannot be decoded
type NameDecodeError struct {
	Raw string
	Err error
}

func (e *NameDecodeError) Error() string {
	return fmt.Sprintf("cannot decode item name %q: %v", e.Raw, e.Err)
}

// Is returns true if the target error is ErrNameDecode
func (e *NameDecodeError) Is(target error) bool {
	return target == ErrNameDecode
}

func (e *NameDecodeError) Unwrap() error {
	return e.Err
}

// NewNameDecodeError creates a new NameDecodeError
func NewNameDecodeError(raw string, err error) *NameDecodeError {
	return &NameDecodeError{Raw: raw, Err: err}
}

// ContainerNotFoundError represents an error when a multi-branch project is not found
type ContainerNotFoundError struct {
	FullName string
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("multi-branch project %s does not exist", e.FullName)
}

// Is returns true if the target error is ErrContainerNotFound
func (e *ContainerNotFoundError) Is(target error) bool {
	return target == ErrContainerNotFound
}

// NewContainerNotFoundError creates a new ContainerNotFoundError
func NewContainerNotFoundError(fullName string) *ContainerNotFoundError {
	return &ContainerNotFoundError{FullName: fullName}
}

// BranchNotFoundError represents an error when a branch project is not found
type BranchNotFoundError struct {
	Container  string
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist in %s", e.BranchName, e.Container)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(container, branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{Container: container, BranchName: branchName}
}

// InvalidNameError is returned when an item or branch name is rejected
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// Is returns true if the target error is ErrInvalidName
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// NewInvalidNameError creates a new InvalidNameError
func NewInvalidNameError(name, reason string) *InvalidNameError {
	return &InvalidNameError{Name: name, Reason: reason}
}
