package app

import (
	"context"
	"os"
	"time"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"playo/internal/application/services"
	"playo/internal/config"
	"playo/internal/identifier"
	"playo/internal/infrastructure/clients"
	"playo/internal/infrastructure/event_publisher"
	"playo/internal/interfaces/events"
	"playo/internal/interfaces/http"
	"playo/internal/interfaces/tools"
	"playo/internal/observability"
	"playo/internal/repository"
)

type App struct {
	watermillLogger watermill.LoggerAdapter
	logger          zerolog.Logger
	router          *message.Router
	srv             *http.Server
}

func NewApp(cfg config.Config, watermillLogger watermill.LoggerAdapter) (*App, error) {
	ids := identifier.NewGenerator()
	bookingsRepo := repository.NewBookingsRepo()
	payments := clients.NewPaymentSimulator(ids)
	calendar := clients.NewCalendarBreaker(clients.NewCalendarSimulator())

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	transport := event_publisher.NewGoChannelTransport(watermillLogger)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		transport, err = event_publisher.NewRedisTransport(watermillLogger, redisClient)
		if err != nil {
			return nil, err
		}
	}

	var publisher message.Publisher = event_publisher.CorrelationPublisherDecorator{
		Publisher: transport.Publisher,
	}
	publisher = observability.PublisherWithTracing{Publisher: publisher}

	eventBus, err := events.NewEventBus(publisher, watermillLogger)
	if err != nil {
		return nil, err
	}

	bookingsService := services.NewBookingService(bookingsRepo, payments, calendar, eventBus, ids)

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	// skip marshalling errors before retrying
	router.AddMiddleware(events.SkipMarshallingErrorsMiddleware)
	router.AddMiddleware(events.MetricsMiddleware)

	processor, err := events.NewEventProcessor(router, transport.NewSubscriber, watermillLogger)
	if err != nil {
		return nil, err
	}

	tracker := clients.NewBookingTracker()
	notifier := clients.NewEmailNotifier()

	err = processor.AddHandlers(
		events.BookingsToTrackHandler(tracker),
		events.RefundsToTrackHandler(tracker),
		events.NotifyBookingConfirmedHandler(notifier),
		events.NotifyBookingCancelledHandler(notifier),
	)
	if err != nil {
		return nil, err
	}

	playoClient := clients.NewPlayoClient(cfg.PlayoAPIURL, cfg.HTTPClientTimeout)
	redditClient := clients.NewRedditClient(cfg.RedditBaseURL, cfg.HTTPClientTimeout)
	ipapiClient := clients.NewIPAPIClient(cfg.IPAPIBaseURL, cfg.HTTPClientTimeout)

	registry := tools.NewRegistry()
	err = registry.Register(
		tools.NewCreateBookingTool(bookingsService),
		tools.NewProcessPaymentTool(bookingsService),
		tools.NewAddToCalendarTool(bookingsService),
		tools.NewGetBookingDetailsTool(bookingsService),
		tools.NewGetUserBookingsTool(bookingsService),
		tools.NewCancelBookingTool(bookingsService),
		tools.NewListCalendarEventsTool(calendar),

		tools.NewSearchActivitiesTool(playoClient),
		tools.NewGetAvailableSportsTool(),
		tools.NewGetTimingSlotsTool(),
		tools.NewGetSkillLevelsTool(),

		tools.NewSearchSubredditTool(redditClient),
		tools.NewSubredditHotPostsTool(redditClient),
		tools.NewSubredditNewPostsTool(redditClient),
		tools.NewSubredditTopPostsTool(redditClient),
		tools.NewGetPostContentTool(redditClient),
		tools.NewGetPostCommentsTool(redditClient),
		tools.NewGetUserPostsTool(redditClient),
		tools.NewGetUserCommentsTool(redditClient),

		tools.NewGetIPLocationTool(ipapiClient),
		tools.NewGetCurrentLocationTool(ipapiClient),
	)
	if err != nil {
		return nil, err
	}

	e := commonHTTP.NewEcho()
	srv := http.NewServer(e, cfg.HTTPAddr, registry, router.IsRunning)

	return &App{
		watermillLogger: watermillLogger,
		logger:          zerolog.New(os.Stdout),
		router:          router,
		srv:             srv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info().Msg("starting router")

		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("router is running")

		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		// Shut down
		<-ctx.Done()

		err := a.srv.Stop(context.Background())
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	// Will block until all goroutines finish
	return g.Wait()
}
