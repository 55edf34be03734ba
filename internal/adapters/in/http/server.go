// Package http exposes the order ledger over a REST API. Handlers
// translate between JSON payloads and the application's commands and
// queries; domain errors map onto HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatchops/internal/core/application/usecases/commands"
	"dispatchops/internal/core/application/usecases/queries"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/core/domain/services"
	"dispatchops/internal/core/ports"
	"dispatchops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Request headers carrying the caller's identity. Authentication itself
// is out of scope; upstream infrastructure is trusted to set these.
const (
	HeaderActorID = "X-Actor-ID"
	HeaderRole    = "X-Role"
)

// CommandHandlers bundles the write-side application handlers the server needs.
type CommandHandlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	RegenerateVoucher commands.RegenerateVoucherCommandHandler
	AssignExecutor    commands.AssignExecutorCommandHandler
	CreateClient      commands.CreateClientCommandHandler
	CreateExecutor    commands.CreateExecutorCommandHandler
}

// QueryHandlers bundles the read-side application handlers the server needs.
type QueryHandlers struct {
	ListOrders        queries.ListOrdersQueryHandler
	ListClients       queries.ListClientsQueryHandler
	ListExecutors     queries.ListExecutorsQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
	GetRevenueReport  queries.GetRevenueReportQueryHandler
	GetAuditTrail     queries.GetAuditTrailQueryHandler
	CheckVoucher      queries.CheckVoucherQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	commands  CommandHandlers
	queries   QueryHandlers
	orders    queries.OrderReader
	assistant ports.Assistant
}

// NewServer creates the HTTP server. The order reader backs the voucher
// view returned after a regeneration; the assistant may be nil, in which
// case the chat endpoint reports 503.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	orders queries.OrderReader,
	assistant ports.Assistant,
) *Server {
	return &Server{
		commands:  commandHandlers,
		queries:   queryHandlers,
		orders:    orders,
		assistant: assistant,
	}
}

// RegisterRoutes mounts all API endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/executor", s.AssignExecutor)
	api.POST("/orders/:id/voucher/regenerate", s.RegenerateVoucher)
	api.GET("/orders/:id/voucher/check", s.CheckVoucher)

	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.CreateClient)
	api.GET("/executors", s.ListExecutors)
	api.POST("/executors", s.CreateExecutor)

	api.GET("/dashboard/stats", s.GetDashboardStats)
	api.GET("/reports/revenue", s.GetRevenueReport)
	api.GET("/audit", s.GetAuditTrail)

	api.POST("/assistant/chat", s.AssistantChat)
}

// CreateOrder handles POST /api/v1/orders - books a new transfer order.
// An omitted order id is generated server-side.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewOrderID()
	if req.ID != "" {
		if orderID, err = kernel.OrderIDFromString(req.ID); err != nil {
			return writeError(ctx, err)
		}
	}

	clientID, err := kernel.ClientIDFromString(req.ClientID)
	if err != nil {
		return writeError(ctx, err)
	}

	price, err := kernel.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return writeError(ctx, err)
	}

	route, err := kernel.NewRoute(req.Origin, req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, price, scheduledAt, route, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var req changeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actor, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignExecutor handles POST /api/v1/orders/:id/executor.
func (s *Server) AssignExecutor(ctx echo.Context) error {
	var req assignExecutorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	executorID, err := kernel.ExecutorIDFromString(req.ExecutorID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignExecutorCommand(orderID, executorID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.AssignExecutor.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegenerateVoucher handles POST /api/v1/orders/:id/voucher/regenerate.
// Responds with the freshly issued voucher so the operator can hand the
// new token out immediately.
func (s *Server) RegenerateVoucher(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegenerateVoucherCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.RegenerateVoucher.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	refreshed, err := s.orders.OrderByID(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	voucher := refreshed.Voucher()
	if voucher == nil {
		return writeError(ctx, order.ErrNoVoucher)
	}

	return ctx.JSON(http.StatusOK, voucherResponse{
		Token:       voucher.Token(),
		IsActive:    voucher.IsActive(),
		GeneratedAt: voucher.GeneratedAt(),
		ExpiresAt:   voucher.ExpiresAt(),
	})
}

// CheckVoucher handles GET /api/v1/orders/:id/voucher/check?token=…
// No identity headers are required: voucher checks are how passengers
// prove themselves.
func (s *Server) CheckVoucher(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCheckVoucherQuery(orderID, ctx.QueryParam("token"), time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	verdict, err := s.queries.CheckVoucher.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, voucherCheckResponse{Verdict: string(verdict)})
}

// ListOrders handles GET /api/v1/orders - the order board, scoped to the
// caller's role.
func (s *Server) ListOrders(ctx echo.Context) error {
	viewer, err := viewerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(viewer)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, len(rows))
	for i, row := range rows {
		response[i] = toOrderResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	rows, err := s.queries.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]clientResponse, len(rows))
	for i, row := range rows {
		response[i] = clientResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Email:       row.Email,
			Phone:       row.Phone,
			Category:    row.Category.String(),
			TotalOrders: row.TotalOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req createClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	clientID := kernel.NewClientID()
	if req.ID != "" {
		if clientID, err = kernel.ClientIDFromString(req.ID); err != nil {
			return writeError(ctx, err)
		}
	}

	category, err := client.CategoryFromString(req.Category)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateClientCommand(clientID, req.Name, req.Email, req.Phone, category, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.CreateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": clientID.String()})
}

// ListExecutors handles GET /api/v1/executors.
func (s *Server) ListExecutors(ctx echo.Context) error {
	rows, err := s.queries.ListExecutors.Handle(ctx.Request().Context(), queries.NewListExecutorsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]executorResponse, len(rows))
	for i, row := range rows {
		response[i] = executorResponse{
			ID:           row.ID.String(),
			Name:         row.Name,
			Phone:        row.Phone,
			Vehicle:      row.Vehicle,
			Availability: row.Availability.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateExecutor handles POST /api/v1/executors.
func (s *Server) CreateExecutor(ctx echo.Context) error {
	var req createExecutorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	executorID := kernel.NewExecutorID()
	if req.ID != "" {
		if executorID, err = kernel.ExecutorIDFromString(req.ID); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateExecutorCommand(executorID, req.Name, req.Phone, req.Vehicle, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.CreateExecutor.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": executorID.String()})
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query, err := queries.NewGetDashboardStatsQuery(time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.queries.GetDashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardStatsResponse{
		TotalOrders:      stats.TotalOrders,
		ActiveOrders:     stats.ActiveOrders,
		CompletedToday:   stats.CompletedToday,
		GrossBookedValue: stats.GrossBookedValue,
		Currency:         stats.Currency,
	})
}

// GetRevenueReport handles GET /api/v1/reports/revenue.
func (s *Server) GetRevenueReport(ctx echo.Context) error {
	report, err := s.queries.GetRevenueReport.Handle(ctx.Request().Context(), queries.NewGetRevenueReportQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	byDay := make([]dailyRevenueResponse, len(report.RevenueByDay))
	for i, day := range report.RevenueByDay {
		byDay[i] = dailyRevenueResponse{Day: day.Day, Revenue: day.Revenue}
	}

	return ctx.JSON(http.StatusOK, revenueReportResponse{
		RecognizedRevenue: report.RecognizedRevenue,
		Currency:          report.Currency,
		RevenueByDay:      byDay,
		OrdersByStatus:    report.OrdersByStatus,
		AverageOrderValue: report.AverageOrderValue,
	})
}

// GetAuditTrail handles GET /api/v1/audit?entityId=… - newest first,
// optionally filtered to one entity.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	query := queries.NewGetAuditTrailQuery(ctx.QueryParam("entityId"))

	rows, err := s.queries.GetAuditTrail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]auditEntryResponse, len(rows))
	for i, row := range rows {
		response[i] = auditEntryResponse{
			ID:         row.ID,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Action:     row.Action,
			OccurredAt: row.OccurredAt,
			Actor:      row.Actor,
			Details:    row.Details,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssistantChat handles POST /api/v1/assistant/chat.
func (s *Server) AssistantChat(ctx echo.Context) error {
	if s.assistant == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "assistant is not configured",
		})
	}

	var req assistantChatRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.Prompt == "" {
		return badRequest(ctx, "prompt is required")
	}

	history := make([]ports.AssistantMessage, len(req.History))
	for i, turn := range req.History {
		history[i] = ports.AssistantMessage{Role: turn.Role, Content: turn.Content}
	}

	reply, err := s.assistant.Reply(ctx.Request().Context(), req.Prompt, history)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assistantChatResponse{Reply: reply})
}

func toOrderResponse(row queries.ListOrdersQueryResponse) orderResponse {
	response := orderResponse{
		ID:          row.ID.String(),
		ClientID:    row.ClientID.String(),
		Amount:      row.Price.Amount(),
		Currency:    row.Price.Currency(),
		Status:      row.Status.String(),
		ScheduledAt: row.ScheduledAt,
		Origin:      row.Route.Origin(),
		Destination: row.Route.Destination(),
		History:     make([]historyEntryResponse, len(row.History)),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.ExecutorID != nil {
		response.ExecutorID = row.ExecutorID.String()
	}
	if row.Voucher != nil {
		response.Voucher = &voucherResponse{
			Token:       row.Voucher.Token,
			IsActive:    row.Voucher.IsActive,
			GeneratedAt: row.Voucher.GeneratedAt,
			ExpiresAt:   row.Voucher.ExpiresAt,
		}
	}
	for i, entry := range row.History {
		response.History[i] = historyEntryResponse{
			From:   entry.From,
			To:     entry.To,
			At:     entry.At,
			Actor:  entry.Actor,
			Reason: entry.Reason,
		}
	}

	return response
}

func actorFromRequest(ctx echo.Context) (kernel.ActorID, error) {
	return kernel.ActorIDFromString(ctx.Request().Header.Get(HeaderActorID))
}

func viewerFromRequest(ctx echo.Context) (services.Viewer, error) {
	role, err := services.RoleFromString(ctx.Request().Header.Get(HeaderRole))
	if err != nil {
		return services.Viewer{}, err
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return services.Viewer{}, err
	}

	return services.NewViewer(role, actor)
}

// parseScheduledAt accepts a full timestamp or a bare service date.
func parseScheduledAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError("scheduledAt")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("scheduledAt", err)
	}
	return t.UTC(), nil
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, order.ErrNoVoucher):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
