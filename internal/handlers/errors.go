package handlers

import (
	"errors"
	"log"
	"net/http"

	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/storage"
	"TRIPWISE_BACK-END/internal/utils"
)

// writeTripError maps planner and storage errors to HTTP responses
func writeTripError(w http.ResponseWriter, op string, err error) {
	var (
		validationErr  *planner.ValidationError
		persistenceErr *storage.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.WriteCodedErrorResponse(w, http.StatusBadRequest, "Validation error", validationErr.Message, validationErr.Code)
	case errors.Is(err, storage.ErrTripNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", err.Error())
	case errors.As(err, &persistenceErr):
		log.Printf("%s: %v", op, err)
		status := http.StatusInternalServerError
		if persistenceErr.Code == storage.CodeRemoteWriteFailed {
			status = http.StatusBadGateway
		}
		utils.WriteCodedErrorResponse(w, status, "Failed to save trip", err.Error(), persistenceErr.Code)
	case errors.Is(err, planner.ErrDegenerateStay):
		log.Printf("%s: %v", op, err)
		utils.WriteCodedErrorResponse(w, http.StatusInternalServerError, "Failed to price trip", err.Error(), "degenerate_stay")
	default:
		log.Printf("%s: %v", op, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
