// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/staranto/geoctlgo/internal/stretch"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml"}
	for _, v := range validOutputFlagValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validOutputFlagValues)
}

func MethodValidator(value any) error {
	_, err := stretch.ParseMethod(value.(string))
	return err
}

// ClipValidator checks a "low,high" percentile pair.
func ClipValidator(value any) error {
	if value.(string) == "" {
		return nil
	}
	_, _, err := ParseClip(value.(string))
	return err
}

// ParseClip parses a "low,high" percentile pair such as "2,98".
func ParseClip(s string) (float64, float64, error) {
	lowStr, highStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected low,high percentiles, got %q", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lowStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad low percentile %q", lowStr)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(highStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad high percentile %q", highStr)
	}
	if low < 0 || high > 100 || low >= high {
		return 0, 0, fmt.Errorf("percentiles must satisfy 0 <= low < high <= 100, got %v,%v", low, high)
	}
	return low, high, nil
}
