package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/holdtrack/internal/cli"
	"github.com/rshade/holdtrack/internal/holders"
	"github.com/rshade/holdtrack/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.Equal(t, "holdtrack", root.Use)
		assert.NotNil(t, root.PersistentPreRunE)
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "generic error", err: errors.New("boom"), want: exitError},
		{
			name: "transport error",
			err:  &holders.TransportError{Op: "fetch holders", Err: errors.New("connection refused")},
			want: exitTransport,
		},
		{
			name: "wrapped transport error",
			err:  fmt.Errorf("listing: %w", &holders.TransportError{Op: "fetch holders", Err: errors.New("eof")}),
			want: exitTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
