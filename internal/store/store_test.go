// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single level", in: "KEN/", want: "KEN"},
		{name: "nested", in: "gis_data/KEN/", want: "KEN"},
		{name: "no trailing slash", in: "gis_data/KEN", want: "KEN"},
		{name: "root", in: "/", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prefixBase(tt.in))
		})
	}
}

func TestRemoteAccessError(t *testing.T) {
	inner := errors.New("connection reset")
	err := &RemoteAccessError{Bucket: "b", Key: "k", Err: inner}
	assert.Contains(t, err.Error(), "s3://b/k")
	assert.ErrorIs(t, err, inner)

	nf := &RemoteAccessError{Bucket: "b", Key: "k", NotFound: true}
	assert.Contains(t, nf.Error(), "not found")
}
