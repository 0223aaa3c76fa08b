// Package http exposes the dispatch engine over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the dispatch engine.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	updatePartnerHandler     commands.UpdatePartnerCommandHandler
	deletePartnerHandler     commands.DeletePartnerCommandHandler
	runDispatchHandler       *commands.RunDispatchCommandHandler

	// Query handlers
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getAllPartnersHandler       queries.GetAllPartnersQueryHandler
	getRecentAssignmentsHandler queries.GetRecentAssignmentsQueryHandler
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	updatePartnerHandler commands.UpdatePartnerCommandHandler,
	deletePartnerHandler commands.DeletePartnerCommandHandler,
	runDispatchHandler *commands.RunDispatchCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllPartnersHandler queries.GetAllPartnersQueryHandler,
	getRecentAssignmentsHandler queries.GetRecentAssignmentsQueryHandler,
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		createPartnerHandler:        createPartnerHandler,
		updatePartnerHandler:        updatePartnerHandler,
		deletePartnerHandler:        deletePartnerHandler,
		runDispatchHandler:          runDispatchHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getAllPartnersHandler:       getAllPartnersHandler,
		getRecentAssignmentsHandler: getRecentAssignmentsHandler,
		getAssignmentMetricsHandler: getAssignmentMetricsHandler,
	}
}

// RegisterRoutes attaches all dispatch engine routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/partners", s.GetPartners)
	api.POST("/partners", s.CreatePartner)
	api.PUT("/partners/:id", s.UpdatePartner)
	api.DELETE("/partners/:id", s.DeletePartner)

	api.POST("/assignments/run", s.RunDispatch)
	api.GET("/assignments", s.GetRecentAssignments)
	api.GET("/assignments/metrics", s.GetAssignmentMetrics)

	e.GET("/health", s.Health)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		var assignedTo *string
		if o.AssignedTo != nil {
			id := o.AssignedTo.String()
			assignedTo = &id
		}

		response[i] = OrderResponse{
			ID:           o.ID.String(),
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Area:         o.Area,
			Status:       o.Status,
			ScheduledFor: o.ScheduledFor,
			AssignedTo:   assignedTo,
			TotalAmount:  o.TotalAmount,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.OrderItemData, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItemData{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.OrderNumber,
		req.Customer.Name,
		req.Customer.Phone,
		req.Customer.Address,
		req.Area,
		items,
		req.ScheduledFor,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - progresses an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order status: " + req.Status,
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to update order status: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartners handles GET /api/v1/partners - retrieves all partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	query := queries.NewGetAllPartnersQuery()

	partners, err := s.getAllPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve partners",
		})
	}

	response := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		response[i] = PartnerResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Email:       p.Email,
			Phone:       p.Phone,
			Status:      p.Status,
			CurrentLoad: p.CurrentLoad,
			Areas:       p.Areas,
			Shift: ShiftPayload{
				Start: p.ShiftStart,
				End:   p.ShiftEnd,
			},
			Metrics: PartnerMetricsPayload{
				Rating:          p.Rating,
				CompletedOrders: p.CompletedOrders,
				CancelledOrders: p.CancelledOrders,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners - registers a new partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req CreatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shift, err := partner.ParseShiftWindow(req.Shift.Start, req.Shift.End)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shift window: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreatePartnerCommand(req.Name, req.Email, req.Phone, req.Areas, shift)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner data: " + err.Error(),
		})
	}

	if handleErr := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create partner",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdatePartner handles PUT /api/v1/partners/:id - updates a partner's profile.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner id",
		})
	}

	var req UpdatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := partner.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner status: " + req.Status,
		})
	}

	shift, err := partner.ParseShiftWindow(req.Shift.Start, req.Shift.End)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shift window: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdatePartnerCommand(
		partnerID, req.Name, req.Email, req.Phone, status, req.Areas, shift,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner data: " + err.Error(),
		})
	}

	if handleErr := s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Partner not found",
			})
		}

		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to update partner",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePartner handles DELETE /api/v1/partners/:id - removes an idle partner.
func (s *Server) DeletePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner id",
		})
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner id",
		})
	}

	if handleErr := s.deletePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Partner not found",
			})
		}

		if errors.Is(handleErr, commands.ErrPartnerHasActiveOrders) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Partner has active orders",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete partner",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RunDispatch handles POST /api/v1/assignments/run - runs a dispatch pass over
// the pending backlog and reports every attempt.
func (s *Server) RunDispatch(ctx echo.Context) error {
	cmd := commands.NewRunDispatchCommand()

	entries, err := s.runDispatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Dispatch run failed: " + err.Error(),
		})
	}

	results := make([]AssignmentResponse, len(entries))
	for i, entry := range entries {
		results[i] = toAssignmentResponse(entry)
	}

	return ctx.JSON(http.StatusOK, DispatchRunResponse{Results: results})
}

// GetRecentAssignments handles GET /api/v1/assignments - latest ledger entries.
func (s *Server) GetRecentAssignments(ctx echo.Context) error {
	limit := queries.DefaultAssignmentLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetRecentAssignmentsQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	entries, err := s.getRecentAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve assignments",
		})
	}

	response := make([]AssignmentResponse, len(entries))
	for i, entry := range entries {
		var partnerID *string
		if entry.PartnerID != nil {
			id := entry.PartnerID.String()
			partnerID = &id
		}

		response[i] = AssignmentResponse{
			ID:        entry.ID.String(),
			OrderID:   entry.OrderID.String(),
			PartnerID: partnerID,
			Status:    entry.Status,
			Reason:    entry.Reason,
			Timestamp: entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignmentMetrics handles GET /api/v1/assignments/metrics - computed figures.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	query := queries.NewGetAssignmentMetricsQuery()

	metrics, err := s.getAssignmentMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute metrics",
		})
	}

	reasons := make([]FailureReasonCountPayload, len(metrics.FailureReasons))
	for i, bucket := range metrics.FailureReasons {
		reasons[i] = FailureReasonCountPayload{
			Reason: bucket.Reason.String(),
			Count:  bucket.Count,
		}
	}

	return ctx.JSON(http.StatusOK, MetricsResponse{
		TotalAssigned:  metrics.TotalAssigned,
		SuccessRate:    metrics.SuccessRate,
		AverageTime:    metrics.AverageTimeMinutes,
		FailureReasons: reasons,
	})
}

func toAssignmentResponse(entry *assignment.Entry) AssignmentResponse {
	var partnerID *string
	if id := entry.PartnerID(); id != nil {
		s := id.String()
		partnerID = &s
	}

	var reason *string
	if r := entry.Reason(); r != nil {
		name := r.String()
		reason = &name
	}

	return AssignmentResponse{
		ID:        entry.ID().String(),
		OrderID:   entry.OrderID().String(),
		PartnerID: partnerID,
		Status:    entry.Status().String(),
		Reason:    reason,
		Timestamp: entry.Timestamp(),
	}
}
