package commands

import (
	"context"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/loop"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a game of snake",
	RunE: func(c *cobra.Command, args []string) error {
		startExporter()
		return play()
	},
}

func play() error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	lay := newLayout()
	cols, rows := termbox.Size()
	session := controller.New(
		controller.WithGeometry(lay.geometry(cols, rows)),
		controller.WithSeed(seed),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	holder := &snapshotHolder{}
	holder.store(session.Snapshot())

	input := make(chan controller.Command, 64)
	limiter := rate.NewLimiter(config.InputRate, config.InputBurstRate)
	go pumpEvents(ctx, input, holder, lay, limiter)
	defer termbox.Interrupt()

	runner := &loop.Runner{
		Session:  session,
		Input:    input,
		Renderer: &termboxRenderer{layout: lay, holder: holder},
		Pacer:    loop.NewRatePacer(session.Speed()),
	}
	err := runner.Run(ctx)
	log.WithFields(log.Fields{
		"highScore": session.HighScore(),
		"frames":    holder.count(),
	}).Info("exiting")
	return err
}
