// Package http exposes the cargo lifecycle engine over a REST API. Handlers
// translate between wire DTOs and application commands/queries; authentication
// is assumed to have happened upstream and arrives as actor headers.
package http

import (
	"errors"
	"net/http"
	"time"

	"cargoflow/internal/core/application/usecases/commands"
	"cargoflow/internal/core/application/usecases/queries"
	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Actor headers set by the authenticating proxy.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server wires HTTP routes to application use cases.
type Server struct {
	// Command handlers
	createCargoHandler       commands.CreateCargoCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler
	proposeAssignmentHandler commands.ProposeAssignmentCommandHandler
	driverRespondHandler     commands.DriverRespondCommandHandler
	cancelAssignmentHandler  commands.CancelAssignmentCommandHandler

	// Query handlers
	resolveActionsHandler       queries.ResolveActionsQueryHandler
	getActiveCargosHandler      queries.GetActiveCargosQueryHandler
	getAssignmentHistoryHandler queries.GetAssignmentHistoryQueryHandler
	getDeliveryReceiptHandler   queries.GetDeliveryReceiptQueryHandler
	getCargoPositionHandler     queries.GetCargoPositionQueryHandler

	positions ports.PositionReporter

	// Applied when a proposal arrives without an explicit deadline.
	defaultAssignmentTTL time.Duration
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createCargoHandler commands.CreateCargoCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	proposeAssignmentHandler commands.ProposeAssignmentCommandHandler,
	driverRespondHandler commands.DriverRespondCommandHandler,
	cancelAssignmentHandler commands.CancelAssignmentCommandHandler,
	resolveActionsHandler queries.ResolveActionsQueryHandler,
	getActiveCargosHandler queries.GetActiveCargosQueryHandler,
	getAssignmentHistoryHandler queries.GetAssignmentHistoryQueryHandler,
	getDeliveryReceiptHandler queries.GetDeliveryReceiptQueryHandler,
	getCargoPositionHandler queries.GetCargoPositionQueryHandler,
	positions ports.PositionReporter,
	defaultAssignmentTTL time.Duration,
) *Server {
	return &Server{
		createCargoHandler:          createCargoHandler,
		requestTransitionHandler:    requestTransitionHandler,
		proposeAssignmentHandler:    proposeAssignmentHandler,
		driverRespondHandler:        driverRespondHandler,
		cancelAssignmentHandler:     cancelAssignmentHandler,
		resolveActionsHandler:       resolveActionsHandler,
		getActiveCargosHandler:      getActiveCargosHandler,
		getAssignmentHistoryHandler: getAssignmentHistoryHandler,
		getDeliveryReceiptHandler:   getDeliveryReceiptHandler,
		getCargoPositionHandler:     getCargoPositionHandler,
		positions:                   positions,
		defaultAssignmentTTL:        defaultAssignmentTTL,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/cargos", s.CreateCargo)
	api.GET("/cargos/active", s.GetActiveCargos)
	api.POST("/cargos/:id/transition", s.RequestTransition)
	api.POST("/cargos/:id/assignments", s.ProposeAssignment)
	api.POST("/cargos/:id/assignment/response", s.DriverRespond)
	api.DELETE("/cargos/:id/assignment", s.CancelAssignment)
	api.GET("/cargos/:id/actions", s.ResolveActions)
	api.GET("/cargos/:id/assignments", s.GetAssignmentHistory)
	api.GET("/cargos/:id/receipt", s.GetDeliveryReceipt)
	api.GET("/cargos/:id/position", s.GetCargoPosition)
	api.PUT("/drivers/:id/position", s.ReportDriverPosition)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateCargo handles POST /api/v1/cargos - registers a new cargo request.
func (s *Server) CreateCargo(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateCargoRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID := act.ID
	if req.ClientID != "" {
		clientID, err = kernel.UUIDFromString(req.ClientID)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	priority, err := cargo.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(ctx, err)
	}

	cargoID := kernel.NewUUID()

	cmd, err := commands.NewCreateCargoCommand(
		cargoID, clientID, priority, req.WeightKg, req.DistanceKm, req.ClientPhone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCargoResponse{ID: cargoID.String()})
}

// RequestTransition handles POST /api/v1/cargos/{id}/transition - requests a
// lifecycle edge on behalf of the calling actor.
func (s *Server) RequestTransition(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := cargo.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRequestTransitionCommand(act, cargoID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProposeAssignment handles POST /api/v1/cargos/{id}/assignments - opens a
// negotiation window with a driver.
func (s *Server) ProposeAssignment(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ProposeAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	if req.ExpiresAt.IsZero() {
		req.ExpiresAt = time.Now().Add(s.defaultAssignmentTTL)
	}

	assignmentID := kernel.NewUUID()

	cmd, err := commands.NewProposeAssignmentCommand(
		act, assignmentID, cargoID, driverID, vehicleID,
		req.DriverPhone, req.ExpiresAt, req.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.proposeAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProposeAssignmentResponse{
		AssignmentID: assignmentID.String(),
	})
}

// DriverRespond handles POST /api/v1/cargos/{id}/assignment/response - the
// driver accepts or rejects the current proposal.
func (s *Server) DriverRespond(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req DriverRespondRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDriverRespondCommand(
		act, cargoID, commands.Decision(req.Decision), req.Reason,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.driverRespondHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelAssignment handles DELETE /api/v1/cargos/{id}/assignment - withdraws
// the pending proposal.
func (s *Server) CancelAssignment(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelAssignmentCommand(act, cargoID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveActions handles GET /api/v1/cargos/{id}/actions - lists the actions
// the calling actor may take on the cargo right now.
func (s *Server) ResolveActions(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewResolveActionsQuery(act, cargoID)
	if err != nil {
		return writeError(ctx, err)
	}

	actions, err := s.resolveActionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActionResponse, len(actions))
	for i, action := range actions {
		response[i] = ActionResponse{
			ID:      action.ID,
			Label:   action.Label,
			Enabled: action.Enabled,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveCargos handles GET /api/v1/cargos/active - lists non-terminal
// cargos.
func (s *Server) GetActiveCargos(ctx echo.Context) error {
	query := queries.NewGetActiveCargosQuery()

	cargos, err := s.getActiveCargosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveCargoResponse, len(cargos))
	for i, row := range cargos {
		response[i] = ActiveCargoResponse{
			ID:         row.ID.String(),
			ClientID:   row.ClientID.String(),
			Status:     row.Status,
			Priority:   row.Priority,
			WeightKg:   row.WeightKg,
			DistanceKm: row.DistanceKm,
			HasCarrier: row.HasCarrier,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignmentHistory handles GET /api/v1/cargos/{id}/assignments - returns
// the cargo's negotiation history, newest first.
func (s *Server) GetAssignmentHistory(ctx echo.Context) error {
	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAssignmentHistoryQuery(cargoID)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.getAssignmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AssignmentHistoryResponse, len(history))
	for i, row := range history {
		response[i] = AssignmentHistoryResponse{
			ID:              row.ID.String(),
			DriverID:        row.DriverID.String(),
			VehicleID:       row.VehicleID.String(),
			Status:          row.Status,
			AssignedAt:      row.AssignedAt,
			ExpiresAt:       row.ExpiresAt,
			RespondedAt:     row.RespondedAt,
			RejectionReason: row.RejectionReason,
			Notes:           row.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryReceipt handles GET /api/v1/cargos/{id}/receipt - prices a
// delivered cargo.
func (s *Server) GetDeliveryReceipt(ctx echo.Context) error {
	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryReceiptQuery(cargoID)
	if err != nil {
		return writeError(ctx, err)
	}

	receipt, err := s.getDeliveryReceiptHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReceiptResponse{
		CargoID:    receipt.CargoID.String(),
		Priority:   receipt.Priority,
		WeightKg:   receipt.WeightKg,
		DistanceKm: receipt.DistanceKm,
		Amount:     receipt.Amount,
	})
}

// GetCargoPosition handles GET /api/v1/cargos/{id}/position - returns the
// bound carrier's last reported position.
func (s *Server) GetCargoPosition(ctx echo.Context) error {
	cargoID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCargoPositionQuery(cargoID)
	if err != nil {
		return writeError(ctx, err)
	}

	position, err := s.getCargoPositionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PositionResponse{
		DriverID:  position.DriverID.String(),
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	})
}

// ReportDriverPosition handles PUT /api/v1/drivers/{id}/position - ingests a
// position report from a driver device.
func (s *Server) ReportDriverPosition(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReportPositionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	err = s.positions.Report(ctx.Request().Context(), driverID, ports.Position{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsRequiredErrorWithCause(HeaderActorID, err)
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
