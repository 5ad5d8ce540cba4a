package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/postfolio/meet/internal/call"
	"github.com/postfolio/meet/internal/core"
	"github.com/postfolio/meet/internal/media"
	"github.com/postfolio/meet/internal/rtc"
	"github.com/postfolio/meet/internal/signaling"
)

var callCmd = &cobra.Command{
	Use:   "call <room>",
	Short: "Join a video-call room and run the session until hangup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		sess := call.NewSession(call.Options{
			Signal:   signaling.NewClient(cfg.RelayURL, cfg.DialTimeout),
			Acquirer: media.NewSampleAcquirer(media.LogSink{}),
			NewPeerLink: func(room string) (core.PeerLink, error) {
				return rtc.NewConnection(rtc.DefaultWebRTCConfig(cfg.STUNServers), room)
			},
		})

		if err := sess.Join(ctx, args[0]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info().Str("module", "cli").Msg("hangup")
			sess.Hangup()
			<-sess.Done()
		case <-sess.Done():
		}
		return sess.Err()
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}
