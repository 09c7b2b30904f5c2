package cmd

import (
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	kafkain "ordering/internal/adapters/in/kafka"
	kafkaout "ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	domainService services.OrderDomainService
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger, m *metrics.Metrics) CompositionRoot {
	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		domainService: services.NewOrderDomainService(),
		logger:        logger,
		metrics:       m,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.domainService)
	return &h
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() *commands.CompletePaymentCommandHandler {
	h := commands.NewCompletePaymentCommandHandler(c.sagaUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreateCancelPaymentCommandHandler() *commands.CancelPaymentCommandHandler {
	h := commands.NewCancelPaymentCommandHandler(c.sagaUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() *commands.ApproveOrderCommandHandler {
	h := commands.NewApproveOrderCommandHandler(c.sagaUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() *commands.RejectOrderCommandHandler {
	h := commands.NewRejectOrderCommandHandler(c.sagaUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreatePublishOutboxMessagesCommandHandler(
	publisher ports.EventPublisher,
) *commands.PublishOutboxMessagesCommandHandler {
	h := commands.NewPublishOutboxMessagesCommandHandler(c.outboxUoWFactory(), publisher)
	return &h
}

func (c *CompositionRoot) CreateCleanupOutboxCommandHandler() *commands.CleanupOutboxCommandHandler {
	h := commands.NewCleanupOutboxCommandHandler(c.outboxUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

// CreateEventPublisher returns the Kafka publisher; the caller closes it.
func (c *CompositionRoot) CreateEventPublisher() (*kafkaout.Publisher, error) {
	return kafkaout.NewPublisher(
		kafkaout.NewWriter(c.config.KafkaHost),
		kafkaout.Topics{
			PaymentRequest:            c.config.KafkaPaymentRequestTopic,
			RestaurantApprovalRequest: c.config.KafkaRestaurantApprovalRequestTopic,
		},
		c.metrics,
	)
}

func (c *CompositionRoot) CreatePaymentResponseConsumer() *kafkain.Consumer {
	handler := kafkain.NewPaymentResponseHandler(
		c.CreateCompletePaymentCommandHandler(),
		c.CreateCancelPaymentCommandHandler(),
	)
	return kafkain.NewConsumer(
		"payment_response_consumer",
		kafkain.NewReader(
			kafkaout.SplitBrokers(c.config.KafkaHost),
			c.config.KafkaPaymentResponseTopic,
			c.config.KafkaConsumerGroup,
		),
		handler,
		c.logger,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateRestaurantApprovalResponseConsumer() *kafkain.Consumer {
	handler := kafkain.NewRestaurantApprovalResponseHandler(
		c.CreateApproveOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
	)
	return kafkain.NewConsumer(
		"restaurant_approval_response_consumer",
		kafkain.NewReader(
			kafkaout.SplitBrokers(c.config.KafkaHost),
			c.config.KafkaRestaurantApprovalResponseTopic,
			c.config.KafkaConsumerGroup,
		),
		handler,
		c.logger,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(
			c.CreatePublishOutboxMessagesCommandHandler(publisher),
			c.config.OutboxRelaySchedule,
			c.config.OutboxBatchSize,
			c.logger,
		),
		jobs.NewOutboxCleanupJob(
			c.CreateCleanupOutboxCommandHandler(),
			c.config.OutboxCleanupSchedule,
			c.config.OutboxRetention,
			c.logger,
		),
	)
}

func (c *CompositionRoot) CreateHTTPServer(api *httpin.API) *httpin.Server {
	track := c.CreateTrackOrderQueryHandler()
	return httpin.NewServer(api, c.CreateCreateOrderCommandHandler(), track, c.logger, c.metrics)
}

func (c *CompositionRoot) sagaUoWFactory() commands.SagaUoWFactory {
	return FuncSagaUoWFactory(func() commands.SagaUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncSagaUoWFactory func() commands.SagaUoW

func (f FuncSagaUoWFactory) Create() commands.SagaUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
