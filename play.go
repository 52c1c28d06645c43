package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/errmsg"
	"github.com/llehouerou/prodify/internal/playback"
	"github.com/llehouerou/prodify/internal/state"
	"github.com/llehouerou/prodify/internal/ui/render"
)

var playCmd = &cobra.Command{
	Use:   "play <track-id|url>",
	Short: "Preview one track without the interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runPlay(ctx, args[0], cmd.ErrOrStderr())
	},
}

func runPlay(ctx context.Context, arg string, out io.Writer) error {
	e, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer e.close()

	t, err := e.resolveTrack(ctx, arg)
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		e.logger.Warn("state unavailable, history not recorded", zap.Error(err))
	} else {
		defer stateMgr.Close()
		stateMgr.SetDefaultVolume(e.cfg.DefaultVolume())
	}

	var si state.Interface
	if stateMgr != nil {
		si = stateMgr
	}
	ctrl := e.newController(e.savedVolume(si))
	defer ctrl.Close()
	sub := ctrl.Subscribe()

	fmt.Fprintf(out, "%s\n", t.DisplayTitle())
	if err := ctrl.PlayTrack(ctx, *t); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return errors.New(errmsg.FormatWith(errmsg.OpPlaybackStart, t.Title, err))
	}
	if si != nil {
		if err := si.RecordPreview(*t, time.Now()); err != nil {
			e.logger.Warn(string(errmsg.OpHistoryRecord), zap.Error(err))
		}
	}

	return waitForEnd(ctx, ctrl, sub, out)
}

// resolveTrack looks an id up in the catalog; anything else is played as a source URL or path.
func (e *env) resolveTrack(ctx context.Context, arg string) (*catalog.Track, error) {
	if id, err := uuid.Parse(arg); err == nil {
		src, err := e.source()
		if err != nil {
			return nil, err
		}
		t, err := src.Track(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errmsg.OpTrackLoad, err)
		}
		return t, nil
	}
	title := strings.TrimSuffix(path.Base(arg), path.Ext(arg))
	return &catalog.Track{
		ID:       uuid.NewSHA1(uuid.NameSpaceURL, []byte(arg)),
		Title:    title,
		AudioURL: arg,
	}, nil
}

// waitForEnd prints progress until the preview ends, fails or ctx is cancelled.
func waitForEnd(ctx context.Context, ctrl *playback.Controller, sub *playback.Subscription, out io.Writer) error {
	defer fmt.Fprintln(out)
	for {
		select {
		case <-ctx.Done():
			ctrl.Pause()
			return nil
		case <-sub.Done:
			return nil
		case ev := <-sub.Error:
			return errors.New(errmsg.Format(errmsg.OpPlaybackStart, ev.Err))
		case pos := <-sub.PositionChanged:
			fmt.Fprintf(out, "\r%s / %s  %s ", render.Duration(pos.Position),
				render.Duration(pos.Duration), render.Percent(pos.Progress))
		case sc := <-sub.StateChanged:
			if sc.Current == playback.StateStopped && ctrl.Snapshot().Ended {
				return nil
			}
		}
	}
}
