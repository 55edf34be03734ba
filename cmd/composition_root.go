package cmd

import (
	"fmt"
	"time"

	httpin "dispatchops/internal/adapters/in/http"
	"dispatchops/internal/adapters/out/assistant"
	"dispatchops/internal/adapters/out/memory"
	"dispatchops/internal/adapters/out/postgres"
	"dispatchops/internal/core/application/usecases/commands"
	"dispatchops/internal/core/application/usecases/queries"
	"dispatchops/internal/core/domain/services"
	"dispatchops/internal/core/ports"

	"gorm.io/gorm"
)

// ledgerReaders is the combined read contract both storage drivers satisfy.
type ledgerReaders interface {
	queries.OrderReader
	queries.ClientReader
	queries.ExecutorReader
	queries.AuditReader
	queries.RevocationReader
}

// CompositionRoot wires storage, token issuance, the assistant, and all
// command and query handlers for the selected driver.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	readers    ledgerReaders
	tokens     commands.TokenSource
	assistant  ports.Assistant
}

// NewCompositionRoot builds the object graph for the configured storage
// driver. gormDB must be non-nil when the driver is "postgres" and is
// ignored otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	root := CompositionRoot{
		tokens: services.NewSecureTokenSource(),
	}

	switch config.StorageDriver {
	case "postgres":
		if gormDB == nil {
			return CompositionRoot{}, fmt.Errorf("postgres driver requires a database connection")
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.readers = postgres.NewReader(gormDB)

	case "memory", "":
		store := memory.NewStore()
		if config.SeedDemoData {
			if err := memory.Seed(store, root.tokens, time.Now().UTC()); err != nil {
				return CompositionRoot{}, fmt.Errorf("seed demo data: %w", err)
			}
		}
		root.uowFactory = store
		root.readers = store

	default:
		return CompositionRoot{}, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}

	if config.AssistantAPIURL != "" {
		inner, err := assistant.NewClient(config.AssistantAPIURL, config.AssistantAPIKey, config.AssistantModel)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("configure assistant: %w", err)
		}
		root.assistant = assistant.NewWithFallback(inner)
	}

	return root, nil
}

// NewHTTPServer assembles the REST adapter over the wired handlers.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:       c.NewCreateOrderCommandHandler(),
			ChangeOrderStatus: c.NewChangeOrderStatusCommandHandler(),
			RegenerateVoucher: c.NewRegenerateVoucherCommandHandler(),
			AssignExecutor:    c.NewAssignExecutorCommandHandler(),
			CreateClient:      c.NewCreateClientCommandHandler(),
			CreateExecutor:    c.NewCreateExecutorCommandHandler(),
		},
		httpin.QueryHandlers{
			ListOrders:        c.NewListOrdersQueryHandler(),
			ListClients:       c.NewListClientsQueryHandler(),
			ListExecutors:     c.NewListExecutorsQueryHandler(),
			GetDashboardStats: c.NewGetDashboardStatsQueryHandler(),
			GetRevenueReport:  c.NewGetRevenueReportQueryHandler(),
			GetAuditTrail:     c.NewGetAuditTrailQueryHandler(),
			CheckVoucher:      c.NewCheckVoucherQueryHandler(),
		},
		c.readers,
		c.assistant,
	)
}

func (c *CompositionRoot) NewCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.tokens)
}

func (c *CompositionRoot) NewChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) NewRegenerateVoucherCommandHandler() commands.RegenerateVoucherCommandHandler {
	var f commands.VoucherUoWFactory = FuncVoucherUoWFactory(func() commands.VoucherUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegenerateVoucherCommandHandler(f, c.tokens)
}

func (c *CompositionRoot) NewAssignExecutorCommandHandler() commands.AssignExecutorCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignExecutorCommandHandler(f)
}

func (c *CompositionRoot) NewCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) NewCreateExecutorCommandHandler() commands.CreateExecutorCommandHandler {
	var f commands.ExecutorUoWFactory = FuncExecutorUoWFactory(func() commands.ExecutorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateExecutorCommandHandler(f)
}

func (c *CompositionRoot) NewExpireVouchersCommandHandler() commands.ExpireVouchersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireVouchersCommandHandler(f)
}

func (c *CompositionRoot) NewListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readers)
}

func (c *CompositionRoot) NewListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.readers)
}

func (c *CompositionRoot) NewListExecutorsQueryHandler() queries.ListExecutorsQueryHandler {
	return queries.NewListExecutorsQueryHandler(c.readers)
}

func (c *CompositionRoot) NewGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.readers)
}

func (c *CompositionRoot) NewGetRevenueReportQueryHandler() queries.GetRevenueReportQueryHandler {
	return queries.NewGetRevenueReportQueryHandler(c.readers)
}

func (c *CompositionRoot) NewGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.readers)
}

func (c *CompositionRoot) NewCheckVoucherQueryHandler() queries.CheckVoucherQueryHandler {
	return queries.NewCheckVoucherQueryHandler(c.readers, c.readers)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncVoucherUoWFactory func() commands.VoucherUoW

func (f FuncVoucherUoWFactory) Create() commands.VoucherUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncExecutorUoWFactory func() commands.ExecutorUoW

func (f FuncExecutorUoWFactory) Create() commands.ExecutorUoW {
	return f()
}
