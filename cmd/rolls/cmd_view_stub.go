//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newViewCmd(*rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Watch the decay pass by pass in a window (requires -tags ebiten)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the viewer requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/rolls`")
		},
	}
}
