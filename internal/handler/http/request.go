package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// CreateRequest implements RequestHandler.
func (h *RequestHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var createReq request.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.UserID = middleware.UserIDFromContext(r.Context())

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateRequest validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.requestService.CreateRequest(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateRequest service error", "error", err, "user_id", createReq.UserID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction request submitted", created)
}

// MyRequests implements RequestHandler.
func (h *RequestHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	requests, err := h.requestService.MyRequests(r.Context(), userID)
	if err != nil {
		slog.Error("MyRequests service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
