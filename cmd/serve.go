package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/admin"
	"github.com/minatgo/minatgo/internal/auth"
	"github.com/minatgo/minatgo/internal/config"
	"github.com/minatgo/minatgo/internal/event"
	"github.com/minatgo/minatgo/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the test and the admin API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		log := newLogger(cfg.LogLevel)
		slog.SetDefault(log)
		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var pub event.Publisher = event.Nop{}
		if cfg.AMQPURL != "" {
			p, err := event.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
			if err != nil {
				return fmt.Errorf("connect broker: %w", err)
			}
			defer p.Close()
			pub = p
			log.Info("publishing events", slog.String("exchange", cfg.AMQPExchange))
		}

		deps := server.Deps{
			Questions: questionSource(st),
			Admin:     admin.NewService(st.Questions()),
			Limiter:   auth.NewLimiter(cfg.LoginEvery, cfg.LoginBurst),
			Contacts:  st.Contacts(),
			Recorder:  event.NewRecorder(st.EventRepo(), pub, log),
			Insight:   newInsight(ctx, st.EventRepo()),
			Logger:    log,
			Origins:   cfg.AllowOrigins,
		}
		if cfg.AdminEnabled() {
			deps.Auth = auth.NewAuthenticator(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL)
		} else {
			log.Warn("admin API disabled: set MINATGO_ADMIN_PASSWORD_HASH and MINATGO_JWT_SECRET")
		}

		return server.New(deps).Run(ctx, cfg.Addr, cfg.ShutdownTimeout)
	},
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MINATGO_ADDR)")
}
