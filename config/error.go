/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// ValidationError describes which field of a configuration structure failed validation.
type ValidationError struct {
	tree             []string
	mapStructureTree []string
	reason           error
}

// WrapFieldValidationError creates an error resulting from the validation of a field in a structure.
// mapStructure is the field `mapstructure` tag if any.
func WrapFieldValidationError(fieldName string, mapStructure *string, err error) error {
	if err == nil {
		return nil
	}
	vErr := &ValidationError{reason: err}
	var subErr *ValidationError
	if errors.As(err, &subErr) {
		vErr.tree = subErr.tree
		vErr.mapStructureTree = subErr.mapStructureTree
		vErr.reason = subErr.reason
	}
	vErr.tree = append([]string{strings.TrimSpace(fieldName)}, vErr.tree...)
	if mapStructure != nil {
		if name := processMapStructureString(*mapStructure); name != "" {
			vErr.mapStructureTree = append([]string{strings.ToUpper(name)}, vErr.mapStructureTree...)
		}
	}
	return vErr
}

// GetTreePath returns the path to the invalid field e.g. Logging->Backend.
func (v *ValidationError) GetTreePath() string {
	return strings.Join(v.tree, "->")
}

// GetMapStructurePath returns the environment variable suffix corresponding to the invalid field e.g. LOGGING_BACKEND.
func (v *ValidationError) GetMapStructurePath() string {
	return strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
}

func (v *ValidationError) Error() string {
	path := v.GetMapStructurePath()
	if path != "" {
		path = fmt.Sprintf(" [%v]", path)
	}
	return commonerrors.Newf(commonerrors.ErrInvalid, "structure failed validation: (%v)%v %v", v.GetTreePath(), path, v.reason.Error()).Error()
}

func (v *ValidationError) Unwrap() []error {
	return []error{commonerrors.ErrInvalid, v.reason}
}

// processMapStructureString returns the key name held in a mapstructure tag, discarding its options.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
