package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/brevity/internal/nav"
	"github.com/five82/brevity/internal/remote"
)

func newCtlCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "ctl <where|next|prev|up|down|left|right|first|last|goto d/s>",
		Short: "Control a running presentation",
		Long: `ctl talks to a presentation started with --remote.

"where" prints the current location; every other action navigates and
prints the outcome and the new location.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := remote.NewClient(addr)
			if err != nil {
				return err
			}
			return runCtl(cmd, client, args)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", remote.DefaultAddr, "remote control address")
	return cmd
}

func runCtl(cmd *cobra.Command, client *remote.Client, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	action := strings.ToLower(args[0])

	if action == "where" {
		loc, err := client.Location(ctx)
		if err != nil {
			return err
		}
		printLocation(out, loc)
		return nil
	}

	var (
		resp remote.NavigateResponse
		err  error
	)
	switch action {
	case "next":
		resp, err = client.Next(ctx)
	case "prev":
		resp, err = client.Prev(ctx)
	case "first":
		resp, err = client.First(ctx)
	case "last":
		resp, err = client.Last(ctx)
	case "goto":
		if len(args) < 2 {
			return errors.New("goto needs a location, e.g. 2/3")
		}
		deck, slide, perr := parseTarget(args[1])
		if perr != nil {
			return perr
		}
		resp, err = client.Goto(ctx, deck, slide)
	default:
		dir, perr := nav.ParseDirection(action)
		if perr != nil {
			return fmt.Errorf("unknown action %q", args[0])
		}
		resp, err = client.Navigate(ctx, dir)
	}
	if resp.Outcome != "" {
		fmt.Fprintf(out, "%s /%d/%d\n", resp.Outcome, resp.Deck, resp.Slide)
	}
	return err
}

// parseTarget reads a 1-based "deck/slide" pair. A leading "/" or "#/" is
// accepted, and a missing slide means the first one.
func parseTarget(s string) (int, int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("invalid location %q", s)
	}
	deck, err := strconv.Atoi(parts[0])
	if err != nil || deck < 1 {
		return 0, 0, fmt.Errorf("invalid deck in %q", s)
	}
	slide := 1
	if len(parts) == 2 {
		slide, err = strconv.Atoi(parts[1])
		if err != nil || slide < 1 {
			return 0, 0, fmt.Errorf("invalid slide in %q", s)
		}
	}
	return deck, slide, nil
}

func printLocation(w io.Writer, loc remote.LocationResponse) {
	fmt.Fprintf(w, "%s  deck %d/%d  slide %d/%d", loc.Token, loc.Deck, len(loc.Counts), loc.Slide, slideCount(loc))
	if loc.Busy {
		fmt.Fprint(w, "  (moving)")
	}
	fmt.Fprintln(w)
	if loc.Title != "" {
		fmt.Fprintln(w, loc.Title)
	}
}

func slideCount(loc remote.LocationResponse) int {
	if loc.Deck < 1 || loc.Deck > len(loc.Counts) {
		return 0
	}
	return loc.Counts[loc.Deck-1]
}
