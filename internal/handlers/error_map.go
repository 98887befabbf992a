package handlers

import (
	"net/http"

	"delivery-pricing/internal/apperror"
	"delivery-pricing/internal/logger"
)

func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, internalMessage string) {
	switch {
	case apperror.Is(err, apperror.KindValidation):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case apperror.Is(err, apperror.KindUndeliverable):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case apperror.Is(err, apperror.KindMalformedSpec):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case apperror.Is(err, apperror.KindUpstream):
		if log != nil {
			log.WithError(err).Warn("Venue API request failed")
		}
		writeErrorResponse(w, http.StatusBadGateway, "failed to fetch venue data")
	case apperror.Is(err, apperror.KindInvalidMethod), apperror.Is(err, apperror.KindComputation):
		if log != nil {
			log.WithError(err).Error(internalMessage)
		}
		writeErrorResponse(w, http.StatusInternalServerError, internalMessage)
	default:
		if log != nil {
			log.WithError(err).Error(internalMessage)
		}
		writeErrorResponse(w, http.StatusInternalServerError, internalMessage)
	}
}
