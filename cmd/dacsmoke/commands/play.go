package commands

import (
	"dacsmoke/internal/app"
	"github.com/spf13/cobra"
)

const playLongHelp = `Play an MP3 through a PCM5100-class I2S DAC via ALSA.

The first available backend is used, in preference order:
  1) mpg123
  2) ffplay
  3) ffmpeg -> wav -> aplay

Wiring reminder (PCM5100 to Pi):
  VIN/5V  -> Pin 02 (5V)
  GND     -> Pin 06 (GND)
  BCK     -> Pin 12 (GPIO18 / I2S BCLK)
  LRCK/WS -> Pin 35 (GPIO19 / I2S LRCLK)
  DIN     -> Pin 40 (GPIO21 / I2S DOUT)
  SCK     -> GND`

func (c *CLI) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an audio file through the first working backend",
		Long:  playLongHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			device, _ := cmd.Flags().GetString("device")
			loops, _ := cmd.Flags().GetInt("loops")
			listDevices, _ := cmd.Flags().GetBool("list-devices")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			trace, _ := cmd.Flags().GetBool("trace")

			return c.app.Run(cmd.Context(), app.RunOptions{
				File:        file,
				Device:      device,
				Loops:       loops,
				ListDevices: listDevices,
				DryRun:      dryRun,
				Trace:       trace,
			})
		},
	}
	cmd.Flags().StringP("file", "f", "track1.mp3", "Path to MP3 to play (default: track1.mp3 in current directory)")
	cmd.Flags().StringP("device", "d", "", "ALSA device override (examples: 'default', 'hw:1,0', 'plughw:1,0')")
	cmd.Flags().IntP("loops", "l", 1, "Number of times to play; use -1 for infinite loop")
	cmd.Flags().Bool("list-devices", false, "Print aplay -l and aplay -L output then exit")
	cmd.Flags().Bool("dry-run", false, "Print the command that would be run, but do not play audio")
	cmd.Flags().Bool("trace", false, "Report the duration of each step to the diagnostic stream")
	return cmd
}
