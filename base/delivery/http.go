package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the data of a failed response caused by an auction error
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var auctionStatus = map[*domain.AuctionError]int{
	domain.ErrNotAdmin:             http.StatusForbidden,
	domain.ErrNotHolder:            http.StatusForbidden,
	domain.ErrNotHighestBidder:     http.StatusForbidden,
	domain.ErrBidTooLow:            http.StatusConflict,
	domain.ErrListingExpired:       http.StatusConflict,
	domain.ErrListingNotExpired:    http.StatusConflict,
	domain.ErrAlreadySettled:       http.StatusConflict,
	domain.ErrListingNotFound:      http.StatusNotFound,
	domain.ErrAssetTransferDenied:  http.StatusUnprocessableEntity,
	domain.ErrEscrowTransferFailed: http.StatusUnprocessableEntity,
}

// StatusOf maps err to the http status it is reported with, fallback is
// used for errors of no known kind.
func StatusOf(err error, fallback int) int {
	if ae, ok := domain.AsAuctionError(err); ok {
		if status, ok := auctionStatus[ae]; ok {
			return status
		}
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSignature), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		if ae, ok := domain.AsAuctionError(err); ok {
			data = ErrorBody{Code: ae.Code, Message: err.Error()}
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
