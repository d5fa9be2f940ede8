package invoice

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/invoice/model"
	"inn/internal/domains/invoice/model/dto"
	"inn/internal/domains/invoice/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"
	"inn/shared/validator"
	"inn/transport/http/middleware"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryParamGeneratedFrom = "generated_from"
	queryParamGeneratedTo   = "generated_to"
)

type Handler struct {
	service    service.Invoice
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Invoice, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Post("/generate", handler.GenerateInvoice)
	})
}

// GenerateInvoice generates an invoice from a booking.
// @Summary Generate an invoice
// @Description Price a booking through the shared engine and persist an immutable invoice snapshot.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoiceRequest true "Generate Invoice Request"
// @Success 201 {object} dto.InvoiceResponse "Invoice generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvoice")
	defer scope.End()

	req := dto.GenerateInvoiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	invoice, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Invoice generated successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, invoice)
}

// GetInvoices retrieves invoice history with optional filters.
// @Summary Get invoices
// @Description Retrieve the newest invoices filtered by room, guest name or generation date range.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param room_number query string false "Filter by room number"
// @Param guest_name query string false "Filter by guest name substring"
// @Param generated_from query string false "Generated at lower bound (RFC3339)"
// @Param generated_to query string false "Generated at upper bound (RFC3339)"
// @Success 200 {object} dto.GetInvoicesResponse "Invoice history"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
// @Security BearerAuth
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldGuestName),
				Table:    model.TableName,
			},
		},
	}

	if roomNumber := r.URL.Query().Get(model.FieldRoomNumber); roomNumber != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.TableName,
		})
	}

	if from := r.URL.Query().Get(queryParamGeneratedFrom); from != constant.Empty {
		fromTime, err := timezone.Parse(constant.DateFormat, from)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse generated_from")

			response.WithError(w, failure.BadRequestFromString("invalid generated_from value"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGeneratedAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    fromTime,
			Table:    model.TableName,
		})
	}

	if to := r.URL.Query().Get(queryParamGeneratedTo); to != constant.Empty {
		toTime, err := timezone.Parse(constant.DateFormat, to)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse generated_to")

			response.WithError(w, failure.BadRequestFromString("invalid generated_to value"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGeneratedAt,
			Operator: gDto.FilterOperatorLessEq,
			Value:    toTime,
			Table:    model.TableName,
		})
	}

	invoices, err := handler.service.GetAll(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}
