package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/infrastructure/metrics"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// base holds what every catalog controller shares: the controller name used in
// log locations and the injected logger.
type base struct {
	controller string
	log        logger.Logger
}

// location formats "{Controller} - {Action}".
func (b base) location(action string) string {
	return b.controller + " - " + action
}

func (b base) attempted(location string) {
	b.log.Info(location+": Attempted Call", nil)
}

func (b base) successful(location string) {
	b.log.Info(location+": Successful", nil)
}

func (b base) warn(location, msg string) {
	b.log.Warn(location+": "+msg, nil)
}

// internalError logs the cause and answers the generic 500.
func (b base) internalError(c *gin.Context, location string, err error) {
	b.log.Error(location+": "+err.Error(), err)
	response.InternalServerError(c, response.GenericErrorMessage)
}

// writeFailed answers 500 with the operation specific message after a repository returned false.
func (b base) writeFailed(c *gin.Context, location, entity, operation, message string) {
	metrics.IncStoreWriteFailure(entity, operation)
	b.log.Error(location+": "+message, errors.New(entity+" "+operation+" returned false"))
	response.InternalServerError(c, message)
}

// recoverPanic must be deferred directly by the handler.
func (b base) recoverPanic(c *gin.Context, location string) {
	if rec := recover(); rec != nil {
		b.internalError(c, location, fmt.Errorf("panic: %v", rec))
		c.Abort()
	}
}

// parseID reads the :id path parameter; ids are positive integers.
func (b base) parseID(c *gin.Context, location string) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		b.warn(location, fmt.Sprintf("Invalid id %q.", raw))
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// bind decodes the JSON body and runs its validation.
func (b base) bind(c *gin.Context, location, param string, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		b.warn(location, "Parameter ("+param+") not provided.")
		response.BadRequest(c, "request body is missing or malformed")
		return false
	}
	if err := req.Validate(); err != nil {
		b.warn(location, "Data is incomplete.")
		response.ValidationError(c, err)
		return false
	}
	return true
}
