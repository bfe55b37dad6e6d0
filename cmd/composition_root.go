package cmd

import (
	"context"
	"log/slog"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/smtp"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	productRepo *productrepo.GormProductRepository
	outboxRepo  *outboxrepo.GormNotificationOutboxRepository
	mailer      ports.Mailer
	metrics     *notifications.Metrics
	dispatcher  *notifications.Dispatcher
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.Default()

	mailer := smtp.NewGomailMailer(
		configs.SMTPHost,
		configs.SMTPPort,
		configs.SMTPUser,
		configs.SMTPPassword,
		configs.SMTPFrom,
	)
	outboxRepo := outboxrepo.NewGormNotificationOutboxRepository(gormDB)
	metrics := notifications.NewMetrics()
	dispatcher := notifications.NewDispatcher(mailer, outboxRepo, metrics, logger,
		notifications.WithMaxConcurrent(configs.NotificationWorkers),
		notifications.WithSendTimeout(configs.NotificationSendTimeout),
	)

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		productRepo: productrepo.NewGormProductRepository(gormDB),
		outboxRepo:  outboxRepo,
		mailer:      mailer,
		metrics:     metrics,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.productRepo, dispatcherNotifier{c.dispatcher}, c.logger)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.outboxRepo, c.mailer, c.metrics, c.logger)
}

// dispatcherNotifier adapts the notification dispatcher to the narrow
// notifier interface the checkout handler depends on.
type dispatcherNotifier struct {
	dispatcher *notifications.Dispatcher
}

func (n dispatcherNotifier) Dispatch(ctx context.Context, o *order.Order) {
	n.dispatcher.Dispatch(ctx, o)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
