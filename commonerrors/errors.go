/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy shared by the queue and the roles built on it.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const TypeReasonErrorSeparator = ':'

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrCondition      = errors.New("failed condition")
	ErrCancelled      = errors.New("cancelled")
	ErrUnexpected     = errors.New("unexpected")
	// ErrClosed is returned when an element is submitted to a queue which has been shut down.
	ErrClosed = errors.New("closed")
)

// Any determines whether `target` matches any of the errors in `err`.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether `target` matches none of the errors in `err`.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo states whether the description of `target` contains any of the descriptions provided.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// New returns an error of type `targetErr` with a reason.
func New(targetErr error, reason string) error {
	tErr := targetErr
	if tErr == nil {
		tErr = ErrUnknown
	}
	cleansedReason := strings.TrimSpace(reason)
	if cleansedReason == "" {
		return tErr
	}
	return fmt.Errorf("%w%v %v", tErr, string(TypeReasonErrorSeparator), cleansedReason)
}

// Newf is similar to New but allows formatting the reason.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps `originalError` into an error of type `targetError`. The result matches both errors.
func WrapError(targetError, originalError error, msg string) error {
	tErr := targetError
	if tErr == nil {
		tErr = ErrUnknown
	}
	if originalError == nil {
		return New(tErr, msg)
	}
	if errors.Is(originalError, tErr) && strings.TrimSpace(msg) == "" {
		return originalError
	}
	cleansedMsg := strings.TrimSpace(msg)
	if cleansedMsg == "" {
		return fmt.Errorf("%w%v %w", tErr, string(TypeReasonErrorSeparator), originalError)
	}
	return fmt.Errorf("%w%v %v%v %w", tErr, string(TypeReasonErrorSeparator), cleansedMsg, string(TypeReasonErrorSeparator), originalError)
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// UndefinedVariable returns an undefined error for a missing variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "missing %v", variableName)
}

// Ignore returns nil if `target` matches any of the `ignore` errors; otherwise it returns `target` unchanged.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// Join is the same as errors.Join but ignores nil entries and returns nil if nothing is left.
func Join(errs ...error) error {
	var list []error
	for i := range errs {
		if errs[i] != nil {
			list = append(list, errs[i])
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	default:
		return errors.Join(list...)
	}
}

// ConvertContextError converts context errors into common errors.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case Any(err, ErrTimeout, ErrCancelled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return WrapError(ErrTimeout, err, "")
	case errors.Is(err, context.Canceled):
		return WrapError(ErrCancelled, err, "")
	default:
		return err
	}
}

// ErrFromContext returns the common error corresponding to the state of the context, if any.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ConvertContextError(ctx.Err())
}
