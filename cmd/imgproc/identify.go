package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/raw"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [file]",
		Short: "Inspect a raw pixel file and its sidecar",
		Args:  cobra.ExactArgs(1),
		RunE:  runIdentify,
	}
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := raw.GetInfo(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	st, err := os.Stat(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Sidecar:     %s\n", raw.SidecarPath(path))
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Compression: %s\n", info.Compression)
	fmt.Fprintf(out, "File size:   %d bytes (%d pixels)\n", st.Size(), info.Width*info.Height)

	if _, err := raw.Load(path); err != nil {
		fmt.Fprintf(out, "Pixel data:  invalid: %v\n", err)
	} else {
		fmt.Fprintln(out, "Pixel data:  ok")
	}
	return nil
}
