package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	// Expose glog's -v, -logtostderr, ... as root flags.
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}

// newRootCmd builds the full command tree. Each call returns fresh flag
// state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "imgproc",
		Short:         "Squash, color-rotate, blur and expand raw RGBA images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSquashCmd(),
		newColorRotCmd(),
		newBlurCmd(),
		newExpandCmd(),
		newRunCmd(),
		newPatternCmd(),
		newIdentifyCmd(),
	)
	return root
}

func main() {
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
