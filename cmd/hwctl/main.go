//go:build windows

// Package main provides the hwctl command-line front end for the Windows
// hardware-control service.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/altavoz/hwctl/internal/control"
	"github.com/altavoz/hwctl/internal/coreaudio"
)

var (
	verbose bool
	svc     *control.Service

	rootCmd = &cobra.Command{
		Use:   "hwctl",
		Short: "Control system audio volume and display brightness",
		Long: `hwctl adjusts the default output and input audio devices and the
display brightness. Mutating commands use NirCmd when it is installed on the
search path or next to hwctl; otherwise they go through the native Core Audio
interfaces, or through WMI for brightness.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
			svc = control.New(control.WithAudioBackend(coreaudio.New()))
		},
	}
)

// optionalArg exposes an optional positional argument to the service, which
// does its own normalization; nil selects the operation's default.
func optionalArg(args []string) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

func reportPercent(percent int, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(percent)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	volumeCmd := &cobra.Command{
		Use:   "volume",
		Short: "Control the default output device",
	}
	volumeCmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current volume percent",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.GetVolume())
			},
		},
		&cobra.Command{
			Use:   "set <percent>",
			Short: "Set the volume to a percent",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.SetVolume(args[0]))
			},
		},
		&cobra.Command{
			Use:   "up [delta]",
			Short: "Raise the volume by delta percent (default 5)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.VolumeUp(optionalArg(args)))
			},
		},
		&cobra.Command{
			Use:   "down [delta]",
			Short: "Lower the volume by delta percent (default 5)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.VolumeDown(optionalArg(args)))
			},
		},
		&cobra.Command{
			Use:   "mute",
			Short: "Mute the output device",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return svc.VolumeMute()
			},
		},
		&cobra.Command{
			Use:   "unmute",
			Short: "Unmute the output device",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return svc.VolumeUnmute()
			},
		},
		&cobra.Command{
			Use:   "muted",
			Short: "Print whether the output device is muted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				muted, err := svc.VolumeMuted()
				if err != nil {
					return err
				}
				fmt.Println(muted)
				return nil
			},
		},
	)

	micCmd := &cobra.Command{
		Use:   "mic",
		Short: "Control the default input device",
	}
	micCmd.AddCommand(
		&cobra.Command{
			Use:   "mute",
			Short: "Mute the microphone",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return svc.MicMute()
			},
		},
		&cobra.Command{
			Use:   "unmute",
			Short: "Unmute the microphone",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return svc.MicUnmute()
			},
		},
		&cobra.Command{
			Use:   "muted",
			Short: "Print whether the microphone is muted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				muted, err := svc.MicMuted()
				if err != nil {
					return err
				}
				fmt.Println(muted)
				return nil
			},
		},
	)

	brightnessCmd := &cobra.Command{
		Use:   "brightness",
		Short: "Control the display brightness",
	}
	brightnessCmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current brightness percent",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				value, ok := svc.GetBrightness()
				if !ok {
					fmt.Println("no brightness-capable display")
					return nil
				}
				fmt.Println(value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <percent>",
			Short: "Set the brightness to a percent",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.SetBrightness(args[0]))
			},
		},
		&cobra.Command{
			Use:   "up [delta]",
			Short: "Raise the brightness by delta percent (default 5)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.BrightnessUp(optionalArg(args)))
			},
		},
		&cobra.Command{
			Use:   "down [delta]",
			Short: "Lower the brightness by delta percent (default 5)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportPercent(svc.BrightnessDown(optionalArg(args)))
			},
		},
	)

	rootCmd.AddCommand(volumeCmd, micCmd, brightnessCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}
