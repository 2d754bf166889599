package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ronin/internal/tracker"
	"ronin/internal/ui"
)

func newLogPoseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logpose",
		Short: "Series progress compass",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			printLogPose(cmd, a.logPose.Get())
			return nil
		},
	}
	cmd.AddCommand(
		newLogPoseAdjustCmd("episode", "Adjust the episode counter", func(a *app, delta int) tracker.LogPose {
			return a.logPose.AdjustEpisode(delta)
		}),
		newLogPoseAdjustCmd("chapter", "Adjust the chapter counter", func(a *app, delta int) tracker.LogPose {
			return a.logPose.AdjustChapter(delta)
		}),
		newLogPoseSeriesCmd(),
	)
	return cmd
}

func printLogPose(cmd *cobra.Command, p tracker.LogPose) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCompass, "Log Pose"))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Series", p.Series+" ("+string(p.Type)+")"))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Episode", p.Episode))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Chapter", p.Chapter))
}

// newLogPoseAdjustCmd builds the episode/chapter twin commands; the delta
// may be signed ("+1", "-3") and the tracker clamps at zero.
func newLogPoseAdjustCmd(name, short string, adjust func(*app, int) tracker.LogPose) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <±n>",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("delta is required, e.g. +1 or -3")
			}
			if _, err := strconv.Atoi(strings.TrimPrefix(args[0], "+")); err != nil {
				return errors.New("delta must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, _ := strconv.Atoi(strings.TrimPrefix(args[0], "+"))

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			printLogPose(cmd, adjust(a, delta))
			return nil
		},
	}
}

func newLogPoseSeriesCmd() *cobra.Command {
	var media string

	cmd := &cobra.Command{
		Use:   "series <name>",
		Short: "Point the log pose at another series",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("series name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tracker.MediaType(strings.ToLower(media))
			if media != "" && m != tracker.MediaAnime && m != tracker.MediaManga {
				return fmt.Errorf("invalid media type: %q (anime|manga)", media)
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			printLogPose(cmd, a.logPose.SetSeries(args[0], m))
			return nil
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "", "Media type (anime|manga)")

	return cmd
}

// newOnePieceCmd drives the aggregate document's two counters. Unlike the
// log pose these are absolute sets; the clamp to zero happens here because
// the store deliberately does not do it.
func newOnePieceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onepiece",
		Short: "One Piece progress counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCompass, "One Piece"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Episode", a.store.OnePieceEpisode()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Chapter", a.store.OnePieceChapter()))
			return nil
		},
	}
	cmd.AddCommand(
		newOnePieceSetCmd("episode", func(a *app, n int) { a.store.SetEpisode(n) }),
		newOnePieceSetCmd("chapter", func(a *app, n int) { a.store.SetChapter(n) }),
	)
	return cmd
}

func newOnePieceSetCmd(name string, set func(*app, int)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <n>",
		Short: "Set the " + name + " counter",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("value is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("value must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := strconv.Atoi(args[0])
			if n < 0 {
				n = 0
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			set(a, n)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %d\n", ui.Good.Render(ui.IconDone), name, n)
			return nil
		},
	}
}
