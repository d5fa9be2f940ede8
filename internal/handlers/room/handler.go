package room

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/middleware"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Room
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Room, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{roomNumber}", handler.GetRoomByNumber)
		routerGroup.Post("/{roomNumber}/check-in", handler.CheckIn)
		routerGroup.Post("/{roomNumber}/check-out", handler.CheckOut)
		routerGroup.Patch("/{roomNumber}/status", handler.UpdateRoomStatus)
		routerGroup.Patch("/{roomNumber}/details", handler.UpdateRoomDetails)
	})
}

// GetRooms retrieves rooms with optional filters.
// @Summary Get all rooms
// @Description Retrieve rooms with optional status filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetRoomsResponse "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByNumber retrieves a room by its number.
// @Summary Get a room by number
// @Description Retrieve a room with its current status and guest.
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNumber path string true "Room Number"
// @Success 200 {object} dto.RoomResponse "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNumber} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByNumber")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	room, err := handler.service.Get(ctx, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by number")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// CheckIn checks a guest into a room directly from the reception desk.
// @Summary Check a guest in
// @Description Mark the room occupied by the named guest.
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNumber path string true "Room Number"
// @Param request body dto.CheckInRequest true "Check In Request"
// @Success 200 {object} response.Message "Guest checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNumber}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	req := dto.CheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CheckIn(ctx, roomNumber, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check guest in")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Guest checked in successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest checked in successfully")
}

// CheckOut checks the current guest out of a room.
// @Summary Check a guest out
// @Description Release the room and report the departing guest.
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNumber path string true "Room Number"
// @Success 200 {object} dto.CheckOutResponse "Departing guest"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNumber}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	departed, err := handler.service.CheckOut(ctx, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check guest out")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Guest checked out successfully by user " + user)

	response.WithJSON(w, http.StatusOK, departed)
}

// UpdateRoomStatus sets a room status directly.
// @Summary Update room status
// @Description Set the room status to Available, Occupied or Maintenance.
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNumber path string true "Room Number"
// @Param request body dto.UpdateRoomStatusRequest true "Update Room Status Request"
// @Success 200 {object} response.Message "Room status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNumber}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	req := dto.UpdateRoomStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetStatus(ctx, roomNumber, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Room status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

// UpdateRoomDetails sets the freeform details on a room.
// @Summary Update room details
// @Description Replace the freeform details text on a room.
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNumber path string true "Room Number"
// @Param request body dto.UpdateRoomDetailsRequest true "Update Room Details Request"
// @Success 200 {object} response.Message "Room details updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNumber}/details [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomDetails")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	req := dto.UpdateRoomDetailsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetDetails(ctx, roomNumber, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room details")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Room details updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room details updated successfully")
}
