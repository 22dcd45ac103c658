package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/seriesbot/bot-telegram/api/http/webhook"
	"github.com/seriesbot/bot-telegram/api/telegram/polling"
	"github.com/seriesbot/bot-telegram/config"
	"github.com/seriesbot/bot-telegram/service"
	"github.com/seriesbot/bot-telegram/service/catalog"
	"github.com/seriesbot/bot-telegram/service/cursor"
	"github.com/seriesbot/bot-telegram/service/dispatch"
	"github.com/seriesbot/bot-telegram/service/membership"
	"github.com/seriesbot/bot-telegram/service/notify"
	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

var allowedUpdates = []string{
	"message",
	"callback_query",
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "series-bot",
		Short:         "Telegram bot serving a catalog of series to the members of the required channels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(webhookCmd(), pollCmd())
	return root
}

func webhookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webhook",
		Short: "Receive the updates pushed to the HTTP endpoint",
		RunE: func(_ *cobra.Command, _ []string) (err error) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			var a app
			a, err = newApp(func(cfg config.Config) time.Duration {
				return cfg.Api.Telegram.Timeout
			})
			if err != nil {
				return
			}
			return a.runWebhook(ctx)
		},
	}
}

func pollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Pull the updates using the long polling",
		RunE: func(_ *cobra.Command, _ []string) (err error) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			var a app
			a, err = newApp(func(cfg config.Config) time.Duration {
				// long polling request holds the connection for the whole poll timeout
				return cfg.Api.Telegram.Timeout + cfg.Api.Telegram.Poll.Timeout
			})
			if err != nil {
				return
			}
			return a.runPolling(ctx)
		},
	}
}

type app struct {
	cfg config.Config
	log *slog.Logger
	bot *telebot.Bot
}

func newApp(httpTimeout func(cfg config.Config) time.Duration) (a app, err error) {

	// init config and logger
	slog.Info("starting...")
	a.cfg, err = config.NewConfigFromEnv()
	if err != nil {
		err = fmt.Errorf("failed to load the config: %w", err)
		return
	}
	opts := slog.HandlerOptions{
		Level: slog.Level(a.cfg.Log.Level),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &opts))
	a.log = log

	// init catalog
	var cat catalog.Catalog
	switch a.cfg.Catalog.Path {
	case "":
		cat = catalog.Default()
	default:
		cat, err = catalog.LoadFile(a.cfg.Catalog.Path)
		if err != nil {
			err = fmt.Errorf("failed to load the catalog: %w", err)
			return
		}
	}
	log.Info(fmt.Sprintf("catalog loaded, %d series", len(cat.List())))

	// init Telegram bot
	s := telebot.Settings{
		URL:   a.cfg.Api.Telegram.Url,
		Token: a.cfg.Api.Telegram.Token,
		Client: &http.Client{
			Timeout: httpTimeout(a.cfg),
		},
		Synchronous: true,
		OnError: func(err error, tgCtx telebot.Context) {
			log.Error(fmt.Sprintf("failed to handle the update: %s", err))
		},
	}
	a.bot, err = telebot.NewBot(s)
	if err != nil {
		err = fmt.Errorf("failed to init the bot: %w", err)
		return
	}
	err = a.bot.SetCommands([]telebot.Command{
		{
			Text:        "start",
			Description: "Start",
		},
		{
			Text:        "series",
			Description: "List the series",
		},
	})
	if err != nil {
		log.Warn(fmt.Sprintf("failed to set the bot commands: %s", err))
		err = nil
	}

	// init membership gate
	var chats []membership.Chat
	for _, c := range a.cfg.Gate.Chats {
		if c = strings.TrimSpace(c); c != "" {
			chats = append(chats, membership.Chat(c))
		}
	}
	svcGate := membership.NewService(a.bot, chats...)
	svcGate = membership.NewServiceLogging(svcGate, log)
	joinLinks := membership.JoinLinks(chats, a.cfg.Gate.InviteLinks)

	// init notifier
	svcNotify := notify.NewService(a.bot)
	svcNotify = notify.NewServiceLogging(svcNotify, log)

	// init dispatcher
	svcDispatch := dispatch.NewService(cat, svcGate, svcNotify, joinLinks, a.cfg.Gate.AllowOnFailure)
	svcDispatch = dispatch.NewServiceLogging(svcDispatch, log)

	a.bot.Use(func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return service.LoggingHandlerFunc(next, log)
	})
	a.bot.Handle(telebot.OnText, dispatch.TextHandlerFunc(svcDispatch))
	a.bot.Handle(telebot.OnCallback, dispatch.CallbackHandlerFunc(svcDispatch))
	return
}

func (a app) runWebhook(ctx context.Context) (err error) {
	cfgWebhook := a.cfg.Api.Telegram.Webhook
	if cfgWebhook.PublicUrl != "" {
		err = a.bot.SetWebhook(&telebot.Webhook{
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfgWebhook.PublicUrl,
			},
			AllowedUpdates: allowedUpdates,
			SecretToken:    cfgWebhook.Secret,
		})
		if err != nil {
			return fmt.Errorf("failed to register the webhook: %w", err)
		}
		a.log.Info(fmt.Sprintf("webhook registered: %s", cfgWebhook.PublicUrl))
	}
	h := webhook.NewHandler(a.bot, cfgWebhook.Secret)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfgWebhook.Port),
		Handler: webhook.NewRouter(h, cfgWebhook.Path),
	}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	a.log.Info(fmt.Sprintf("listening the updates at %s%s", srv.Addr, cfgWebhook.Path))
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	a.log.Info("stopped")
	return
}

func (a app) runPolling(ctx context.Context) (err error) {
	err = a.bot.RemoveWebhook(false)
	if err != nil {
		return fmt.Errorf("failed to remove the webhook: %w", err)
	}
	var stor cursor.Storage
	cfgDb := a.cfg.Cursor.Db
	switch cfgDb.Uri {
	case "":
		stor = cursor.NewStorageMemory()
	default:
		stor, err = cursor.NewStorageMongo(ctx, cfgDb, strconv.FormatInt(a.bot.Me.ID, 10))
		if err != nil {
			return fmt.Errorf("failed to connect the cursor storage: %w", err)
		}
	}
	stor = cursor.NewStorageLogging(stor, a.log)
	defer stor.Close()
	src := polling.NewSource(a.bot)
	src = polling.NewSourceLogging(src, a.log)
	l := polling.NewLoop(src, a.bot, stor, a.cfg.Api.Telegram.Poll, a.log)
	a.log.Info("polling the updates")
	err = l.Run(ctx)
	a.log.Info("stopped")
	return
}
