/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads service configurations from defaults, a .env file, environment variables and flags.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "workqueue", the env registry will look for env variables that start with "WORKQUEUE_".
// make sure that the tags on the fields of configurationToSet are properly set using only `[_1-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Viper's precedence order is maintained:
//  1. values set using explicit calls to `Set`
//  2. flags
//  3. environment (variables or `.env`)
//  4. default values (flag default values, calls to `SetDefault` or `defaultConfiguration`)
//
// Default values from `defaultConfiguration` take precedence over flag defaults unless they are zero values.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil {
		err = commonerrors.UndefinedVariable("viper session")
		return
	}
	if configurationToSet == nil || defaultConfiguration == nil {
		err = commonerrors.UndefinedVariable("configuration")
		return
	}
	var defaults map[string]any
	err = mapstructure.Decode(defaultConfiguration, &defaults)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not decode default configuration")
		return
	}
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not load default configuration")
		return
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	if err != nil && !commonerrors.Any(err, commonerrors.ErrInvalid) {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid configuration")
	}
	return
}

// BindFlagToEnv binds pflags to environment variable.
// Envvar is the environment variable string with or without the prefix envVarPrefix
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if viperSession == nil {
		err = commonerrors.UndefinedVariable("viper session")
		return
	}
	if flag == nil {
		err = commonerrors.UndefinedVariable("flag")
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	short := envVarLower
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	shortKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short), configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)

	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys creates aliases for flags/environment variable keys to real structure keys.
// Viper aliasing and BindEnv do not work well with nested configurations so binding is handled manually.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	for _, key := range viperSession.AllKeys() {
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		// a flag explicitly set takes precedence over the structured configuration value.
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
		} else {
			value := viperSession.Get(flagKey)
			if !isEmpty(value) {
				viperSession.SetDefault(key, value)
				if isEmpty(viperSession.Get(key)) {
					viperSession.Set(key, value)
				}
			}
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}
