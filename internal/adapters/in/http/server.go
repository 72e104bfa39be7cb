// Package http adapts the REST API to the application's commands and
// queries. The route layout and payloads are defined by api/openapi.yml;
// the generated servers package does the routing and parameter binding,
// this package holds the handler logic.
package http

import (
	"net/http"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	assignTailorHandler         commands.AssignTailorCommandHandler
	acceptOrderHandler          commands.AcceptOrderCommandHandler
	requestChangeHandler        commands.RequestChangeCommandHandler
	startWorkHandler            commands.StartWorkCommandHandler
	advanceStatusHandler        commands.AdvanceStatusCommandHandler
	markReadyHandler            commands.MarkReadyCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	addNoteHandler              commands.AddNoteCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getBillHandler           queries.GetBillQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
	getNotificationsHandler  queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignTailorHandler commands.AssignTailorCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	requestChangeHandler commands.RequestChangeCommandHandler,
	startWorkHandler commands.StartWorkCommandHandler,
	advanceStatusHandler commands.AdvanceStatusCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addNoteHandler commands.AddNoteCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getBillHandler queries.GetBillQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		assignTailorHandler:         assignTailorHandler,
		acceptOrderHandler:          acceptOrderHandler,
		requestChangeHandler:        requestChangeHandler,
		startWorkHandler:            startWorkHandler,
		advanceStatusHandler:        advanceStatusHandler,
		markReadyHandler:            markReadyHandler,
		cancelOrderHandler:          cancelOrderHandler,
		addNoteHandler:              addNoteHandler,
		recordPaymentHandler:        recordPaymentHandler,
		markNotificationReadHandler: markNotificationReadHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersHandler:            getOrdersHandler,
		getBillHandler:              getBillHandler,
		getDashboardStatsHandler:    getDashboardStatsHandler,
		getNotificationsHandler:     getNotificationsHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new tailoring order.
// A customer token places orders for itself; staff and admin tokens name
// the customer in the body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	customerID := actor.ID
	if body.CustomerId != nil {
		id, err := kernel.UUIDFromBytes(body.CustomerId[:])
		if err != nil {
			return renderError(ctx, err)
		}
		customerID = id
	}

	fabricName := ""
	if body.FabricName != nil {
		fabricName = *body.FabricName
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor,
		customerID,
		body.ItemType,
		order.Measurements(body.Measurements),
		body.FabricSource,
		fabricName,
		body.ExpectedDelivery,
		body.TotalAmount,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, actor)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(resp))
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetOrdersQuery(actor)
	if err != nil {
		return renderError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, resp := range orders {
		response[i] = toOrder(resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignTailor handles PUT /api/v1/orders/:orderId/assign - hands the order
// to a tailor, pending their acceptance.
func (s *Server) AssignTailor(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.AssignTailorJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	tailorID, err := kernel.UUIDFromBytes(body.TailorId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	reassign := body.Reassign != nil && *body.Reassign

	cmd, err := commands.NewAssignTailorCommand(orderID, tailorID, reassign, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.assignTailorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// AcceptOrder handles PUT /api/v1/orders/:orderId/accept - the assigned
// tailor confirms the assignment.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// RequestChange handles PUT /api/v1/orders/:orderId/request-change - the
// assigned tailor pushes the order back with a reason.
func (s *Server) RequestChange(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.RequestChangeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewRequestChangeCommand(orderID, body.Reason, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.requestChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// StartWork handles PUT /api/v1/orders/:orderId/start-work - moves an
// accepted order into Cutting.
func (s *Server) StartWork(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewStartWorkCommand(orderID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.startWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// AdvanceOrderStatus handles PUT /api/v1/orders/:orderId/status - advances
// the order to the requested status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.AdvanceOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	requested, err := order.StatusFromString(body.Status)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, requested, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// MarkOrderReady handles PUT /api/v1/orders/:orderId/mark-ready - finishes
// production and raises the bill.
func (s *Server) MarkOrderReady(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewMarkReadyCommand(orderID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// CancelOrder handles PUT /api/v1/orders/:orderId/cancel - cancels the
// order. Repeating a cancellation returns 200.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// AddOrderNote handles POST /api/v1/orders/:orderId/notes - appends a note
// to the order's trail.
func (s *Server) AddOrderNote(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.AddOrderNoteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewAddNoteCommand(orderID, body.Note, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.addNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecordPayment handles POST /api/v1/orders/:orderId/payments - records a
// payment against the order's bill.
func (s *Server) RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.RecordPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	reference := ""
	if body.Reference != nil {
		reference = *body.Reference
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, body.Amount, body.Method, reference, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBill handles GET /api/v1/orders/:orderId/bill - retrieves the order's
// bill with its payment history.
func (s *Server) GetBill(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewGetBillQuery(orderID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	resp, err := s.getBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBill(resp))
}

// GetDashboardStats handles GET /api/v1/dashboard/stats - shop-wide counts
// and money totals for the back office.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetDashboardStatsQuery(actor)
	if err != nil {
		return renderError(ctx, err)
	}

	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		ActiveOrders:     stats.ActiveOrders,
		CompletedOrders:  stats.CompletedOrders,
		CancelledOrders:  stats.CancelledOrders,
		UnassignedOrders: stats.UnassignedOrders,
		Revenue:          stats.Revenue,
		Outstanding:      stats.Outstanding,
	})
}

// GetNotifications handles GET /api/v1/notifications - unread notifications
// addressed to the caller, most urgent first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetNotificationsQuery(actor)
	if err != nil {
		return renderError(ctx, err)
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]servers.Notification, len(notifications))
	for i, resp := range notifications {
		response[i] = servers.Notification{
			Id:        resp.ID.Bytes(),
			Message:   resp.Message,
			Type:      resp.Type,
			Priority:  resp.Priority,
			CreatedAt: resp.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PUT /api/v1/notifications/:notificationId/read -
// acknowledges a notification.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationId openapi_types.UUID) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	notificationID, err := kernel.UUIDFromBytes(notificationId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing bearer token",
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// respondWithOrder re-reads the order and returns the authoritative
// post-transition snapshot. Clients render the state the store holds
// instead of guessing the outcome of their own request.
func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID, actor ports.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return renderError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(code, toOrder(resp))
}

// toOrder converts the order read model into its wire representation.
func toOrder(src queries.OrderResponse) servers.Order {
	resp := servers.Order{
		Id:               src.ID.Bytes(),
		CustomerId:       src.CustomerID.Bytes(),
		Status:           src.Status,
		Assignment:       src.Assignment,
		ItemType:         src.ItemType,
		Measurements:     src.Measurements,
		FabricSource:     src.FabricSource,
		Notes:            make([]servers.Note, len(src.Notes)),
		ExpectedDelivery: src.ExpectedDelivery,
		TotalAmount:      src.TotalAmount,
		Urgency:          src.Urgency,
		CreatedAt:        src.CreatedAt,
		StartedAt:        src.StartedAt,
		Version:          src.Version,
	}

	if src.TailorID != nil {
		id := src.TailorID.Bytes()
		resp.TailorId = &id
	}
	if src.FabricName != "" {
		name := src.FabricName
		resp.FabricName = &name
	}

	for i, note := range src.Notes {
		resp.Notes[i] = servers.Note{
			AuthorId: note.AuthorID.Bytes(),
			Text:     note.Text,
			At:       note.At,
		}
	}

	return resp
}

// toBill converts the bill read model into its wire representation.
func toBill(src queries.BillResponse) servers.Bill {
	resp := servers.Bill{
		Id:          src.ID.Bytes(),
		OrderId:     src.OrderID.Bytes(),
		Amount:      src.Amount,
		AmountPaid:  src.AmountPaid,
		Outstanding: src.Outstanding,
		Status:      src.Status,
		Payments:    make([]servers.Payment, len(src.Payments)),
		CreatedAt:   src.CreatedAt,
		Version:     src.Version,
	}

	for i, payment := range src.Payments {
		entry := servers.Payment{
			Amount: payment.Amount,
			Method: payment.Method,
			At:     payment.At,
		}
		if payment.Reference != "" {
			reference := payment.Reference
			entry.Reference = &reference
		}
		resp.Payments[i] = entry
	}

	return resp
}

var _ servers.ServerInterface = (*Server)(nil)
