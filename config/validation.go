/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"reflect"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them
func ValidateEmbedded(cfg Validator) error {
	if cfg == nil {
		return commonerrors.UndefinedVariable("configuration")
	}
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Ptr || r.IsNil() || r.Elem().Kind() != reflect.Struct {
		return commonerrors.New(commonerrors.ErrInvalid, "configuration must be a pointer to a structure")
	}
	r = r.Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		field := r.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		var validator Validator
		switch {
		case f.Kind() == reflect.Struct:
			validator, _ = f.Addr().Interface().(Validator)
		case f.Kind() == reflect.Ptr && !f.IsNil() && f.Elem().Kind() == reflect.Struct:
			validator, _ = f.Interface().(Validator)
		}
		if validator == nil {
			continue
		}
		err := wrapFieldValidationError(field, validator.Validate())
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapFieldValidationError(field reflect.StructField, err error) error {
	mapStructureStr, hasTag := field.Tag.Lookup("mapstructure")
	mapStructure := &mapStructureStr
	if !hasTag {
		mapStructure = nil
	}
	return WrapFieldValidationError(field.Name, mapStructure, err)
}
