package staffrequest

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/staffrequest/model"
	"inn/internal/domains/staffrequest/model/dto"
	"inn/internal/domains/staffrequest/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/middleware"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.StaffRequest
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.StaffRequest, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff-requests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStaffRequests)
		routerGroup.Post("/", handler.CreateStaffRequest)
		routerGroup.Get("/category/{category}", handler.GetStaffRequestsByCategory)
		routerGroup.Put("/{id}", handler.UpdateStaffRequest)
		routerGroup.Patch("/{id}/complete", handler.CompleteStaffRequest)
		routerGroup.Delete("/{id}", handler.DeleteStaffRequest)
	})
}

// CreateStaffRequest creates a new staff request.
// @Summary Create a new staff request
// @Description Create a task for housekeeping or maintenance staff.
// @Tags StaffRequest
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequestRequest true "Create Staff Request"
// @Success 201 {object} dto.StaffRequestResponse "Staff request created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateStaffRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaffRequest")
	defer scope.End()

	req := dto.CreateStaffRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staffRequest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Staff request created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, staffRequest)
}

// GetStaffRequests retrieves staff requests with optional filters.
// @Summary Get all staff requests
// @Description Retrieve staff requests with optional status and type filtering.
// @Tags StaffRequest
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Success 200 {object} dto.GetStaffRequestsResponse "List of staff requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff-requests [get]
// @Security BearerAuth
func (handler *Handler) GetStaffRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffRequests")
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

	if requestType := r.URL.Query().Get(model.FieldType); requestType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    requestType,
			Table:    model.TableName,
		})
	}

	staffRequests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, staffRequests)
}

// GetStaffRequestsByCategory retrieves the pending queue for one request type.
// @Summary Get pending staff requests by category
// @Description Retrieve pending staff requests for a single request type.
// @Tags StaffRequest
// @Accept json
// @Produce json
// @Param category path string true "Request type"
// @Success 200 {object} dto.GetStaffRequestsResponse "Pending staff requests"
// @Failure 500 {object} response.Error
// @Router /v1/staff-requests/category/{category} [get]
// @Security BearerAuth
func (handler *Handler) GetStaffRequestsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffRequestsByCategory")
	defer scope.End()

	category := chi.URLParam(r, constant.RequestParamCategory)

	staffRequests, err := handler.service.GetByCategory(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff requests by category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, staffRequests)
}

// UpdateStaffRequest updates the mutable fields of a staff request.
// @Summary Update a staff request by ID
// @Description Update the description, priority or status of a staff request.
// @Tags StaffRequest
// @Accept json
// @Produce json
// @Param id path string true "Staff Request ID"
// @Param request body dto.UpdateStaffRequestRequest true "Update Staff Request"
// @Success 200 {object} response.Message "Staff request updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff-requests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateStaffRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaffRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStaffRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Staff request updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff request updated successfully")
}

// CompleteStaffRequest marks a staff request as completed.
// @Summary Complete a staff request
// @Description Mark a staff request as completed in one call.
// @Tags StaffRequest
// @Accept json
// @Produce json
// @Param id path string true "Staff Request ID"
// @Success 200 {object} response.Message "Staff request completed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff-requests/{id}/complete [patch]
// @Security BearerAuth
func (handler *Handler) CompleteStaffRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteStaffRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete staff request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Staff request completed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff request completed successfully")
}

// DeleteStaffRequest deletes a staff request by its ID.
// @Summary Delete a staff request by ID
// @Description Remove a staff request.
// @Tags StaffRequest
// @Accept json
// @Produce json
// @Param id path string true "Staff Request ID"
// @Success 200 {object} response.Message "Staff request deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff-requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaffRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaffRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Staff request deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff request deleted successfully")
}
