package deps

import (
	"context"
	"fmt"
	"reachout/internal/config"
	dl "reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/profile"
	drl "reachout/internal/core/domain/ratelimiter"
	"reachout/internal/core/domain/submission"
	dbprofile "reachout/internal/db/profile"
	"reachout/internal/implementations/email"
	"reachout/internal/implementations/logging"
	"reachout/internal/implementations/ratelimiter"
	"reachout/internal/rabbitmq"
	submissionevents "reachout/internal/rabbitmq/publishers/submission_events"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	ProfileRepository profile.Repository

	// IPRateLimiter and FormRateLimiter track separate windows. With a
	// single service instance both are in-memory; REDIS_URL switches them
	// to shared counters.
	IPRateLimiter   drl.RateLimiter
	FormRateLimiter drl.RateLimiter

	RelaySender        submission.RelaySender
	NotificationSender submission.NotificationSender
	EventPublisher     submission.EventPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.ProfileRepository = dbprofile.NewPgxRepository(deps.DB)
	deps.initRateLimiters()
	deps.initSenders()

	closeEventPublisher := deps.initEventPublisher()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeEventPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.RedisURL == "" {
		return func() {}
	}
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.RabbitmqURL == "" {
		return func() {}
	}
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRateLimiters() {
	if deps.Redis != nil {
		deps.IPRateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
		deps.FormRateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
		return
	}
	deps.IPRateLimiter = ratelimiter.NewMemory(deps.Now)
	deps.FormRateLimiter = ratelimiter.NewMemory(deps.Now)
}

func (deps *Deps) initSenders() {
	if deps.Config.IsTestMode {
		consoleSender := email.NewConsoleSender(deps.Logger)
		deps.RelaySender = consoleSender
		deps.NotificationSender = consoleSender
		return
	}
	sesSender := email.NewSender(
		deps.AwsConfig,
		deps.Config.EmailSender,
		deps.Config.OperatorAlertEmail,
		deps.Config.PublicBaseURL,
	)
	deps.RelaySender = sesSender
	deps.NotificationSender = sesSender
}

func (deps *Deps) initEventPublisher() func() {
	if deps.Rabbitmq == nil {
		deps.EventPublisher = submission.NewNopEventPublisher()
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqSubmissionExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exhange.", dl.Entry("err", err))
		panic(err)
	}

	deps.EventPublisher = submissionevents.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqSubmissionExchange,
		deps.Config.RabbitmqSubmissionRK,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down submission event publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Submission event publisher shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
