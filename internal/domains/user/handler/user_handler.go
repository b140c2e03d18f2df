package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/domains/user/service"
	"bookstore-api/internal/infrastructure/metrics"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

const location = "Users - Login"

// UserHandler serves /api/users.
type UserHandler struct {
	service service.AuthService
	log     logger.Logger
}

func NewUserHandler(svc service.AuthService, log logger.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		log:     log,
	}
}

// Login handles POST /api/users.
// The request body is never echoed back and the password is never logged.
func (h *UserHandler) Login(c *gin.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error(location+": panic", fmt.Errorf("%v", rec))
			metrics.IncLogin(metrics.LoginFailed)
			response.InternalServerError(c, response.GenericErrorMessage)
			c.Abort()
		}
	}()
	h.log.Info(location+": Attempted Call", nil)

	// STEP 1: PARSE REQUEST BODY
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn(location+": Parameter (userDTO) not provided.", nil)
		response.BadRequest(c, "request body is missing or malformed")
		return
	}
	if err := req.Validate(); err != nil {
		h.log.Warn(location+": Credentials are incomplete.", nil)
		response.ValidationError(c, err)
		return
	}

	// STEP 2: AUTHENTICATE
	token, err := h.service.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			metrics.IncLogin(metrics.LoginRejected)
			h.log.Warn(location+": Invalid credentials.", map[string]interface{}{
				"user_name": req.UserName,
			})
			response.Unauthorized(c, "invalid user name or password")
			return
		}
		metrics.IncLogin(metrics.LoginFailed)
		h.log.Error(location+": "+err.Error(), err)
		response.InternalServerError(c, response.GenericErrorMessage)
		return
	}

	// STEP 3: SUCCESS RESPONSE
	metrics.IncLogin(metrics.LoginSucceeded)
	h.log.Info(location+": Successful", map[string]interface{}{
		"user_name": req.UserName,
	})
	response.OK(c, model.LoginResponse{Token: token})
}
