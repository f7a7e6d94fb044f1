package httputils

import (
	"net/http"

	"boscoin.io/votebank/lib/errors"
)

var (
	ErrorsToStatus = map[uint]int{
		errors.StorageRecordDoesNotExist.Code:       http.StatusNotFound,
		errors.BadPublicAddress.Code:                http.StatusBadRequest,
		errors.InvalidOperation.Code:                http.StatusBadRequest,
		errors.UnknownOperationType.Code:            http.StatusBadRequest,
		errors.TransactionEmptyOperations.Code:      http.StatusBadRequest,
		errors.TransactionHasOverMaxOperations.Code: http.StatusBadRequest,
		errors.DuplicatedOperation.Code:             http.StatusBadRequest,
		errors.InvalidHash.Code:                     http.StatusBadRequest,
		errors.SignatureVerificationFailed.Code:     http.StatusBadRequest,
		errors.TransactionAlreadyExists.Code:        http.StatusConflict,
		errors.TransactionDoesNotExist.Code:         http.StatusNotFound,
		errors.InvalidVoteType.Code:                 http.StatusBadRequest,
		errors.OperationBodyInsufficient.Code:       http.StatusBadRequest,
		errors.VotingClosed.Code:                    http.StatusBadRequest,
		errors.AlreadyVoted.Code:                    http.StatusBadRequest,
		errors.VoterListFull.Code:                   http.StatusBadRequest,
		errors.VoteBankAlreadyExists.Code:           http.StatusBadRequest,
		errors.VoteBankDoesNotExist.Code:            http.StatusNotFound,
		errors.BadRequestParameter.Code:             http.StatusBadRequest,
		errors.ContentTypeNotJSON.Code:              http.StatusUnsupportedMediaType,
		errors.TooManyRequests.Code:                 http.StatusTooManyRequests,
		errors.InvalidMessage.Code:                  http.StatusBadRequest,
		errors.UnknownExecutor.Code:                 http.StatusBadRequest,
	}
)

func StatusCode(err error) int {
	if e, ok := err.(*errors.Error); ok {
		if status, found := ErrorsToStatus[e.Code]; found {
			return status
		}
	}
	return http.StatusInternalServerError
}

func IsEventStream(r *http.Request) bool {
	return r.Header.Get("Accept") == "text/event-stream"
}
