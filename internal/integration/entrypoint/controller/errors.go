// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps a domain error to an HTTP response. Validation
// codes (xxx-01....) map to 400, reference codes (xxx-02....) to 404 or 422,
// external-service codes (xxx-03....) to 502; anything unrecognized is a 500.
func respondDomainError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusForCode(string(txnErr.Code), err), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}
	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		ctx.JSON(statusForCode(string(cardErr.Code), err), dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(statusForCode(string(goalErr.Code), err), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(statusForCode(string(catErr.Code), err), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}
	var stmtErr *domainerror.StatementError
	if errors.As(err, &stmtErr) {
		ctx.JSON(statusForCode(string(stmtErr.Code), err), dto.ErrorResponse{
			Error: stmtErr.Message,
			Code:  string(stmtErr.Code),
		})
		return
	}
	var genErr *domainerror.GeneralError
	if errors.As(err, &genErr) {
		ctx.JSON(statusForCode(string(genErr.Code), err), dto.ErrorResponse{
			Error: genErr.Message,
			Code:  string(genErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternalError),
	})
}

func statusForCode(code string, err error) int {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) != 2 || len(parts[1]) < 2 {
		return http.StatusInternalServerError
	}
	switch parts[1][:2] {
	case "01":
		if isNotFound(err) {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case "02":
		if isNotFound(err) {
			return http.StatusNotFound
		}
		return http.StatusUnprocessableEntity
	case "03":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrTransactionNotFound) ||
		errors.Is(err, domainerror.ErrCardNotFound) ||
		errors.Is(err, domainerror.ErrGoalNotFound) ||
		errors.Is(err, domainerror.ErrCategoryNotFound) ||
		errors.Is(err, domainerror.ErrAssetNotFound) ||
		errors.Is(err, domainerror.ErrSubscriptionNotFound)
}
