package httputils

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/errors"
)

func readProblem(t *testing.T, ts *httptest.Server, path string) (*http.Response, map[string]interface{}) {
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)

	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(b, &m))

	return resp, m
}

func TestProblem(t *testing.T) {
	router := mux.NewRouter()

	statusProblem := NewStatusProblem(http.StatusBadRequest)
	detailedStatusProblem := NewDetailedStatusProblem(http.StatusBadRequest, "paramaters are not enough")
	errorProblem := NewErrorProblem(errors.VotingClosed, http.StatusBadRequest)

	router.HandleFunc("/problem_status_default", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 400, statusProblem)
	})
	router.HandleFunc("/problem_status_with_detail_instance", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 400, detailedStatusProblem.SetInstance("http://boscoin.io/httperror/details/1"))
	})
	router.HandleFunc("/problem_with_error", func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, errors.VotingClosed)
	})
	router.HandleFunc("/problem_with_error_data", func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, errors.VoteBankDoesNotExist.Clone().SetData("address", "GABC"))
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	{ // problem_status_default
		resp, m := readProblem(t, ts, "/problem_status_default")
		require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
		require.Equal(t, statusProblem.Type, m["type"])
		require.Equal(t, "Bad Request", m["title"])
		require.Equal(t, float64(400), m["status"])
		require.Empty(t, m["detail"])
		require.Empty(t, m["instance"])
	}

	{ // problem_status_with_detail_instance
		_, m := readProblem(t, ts, "/problem_status_with_detail_instance")
		require.Equal(t, detailedStatusProblem.Detail, m["detail"])
		require.Equal(t, "http://boscoin.io/httperror/details/1", m["instance"])
	}

	{ // problem_with_error
		resp, m := readProblem(t, ts, "/problem_with_error")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, errorProblem.Type, m["type"])
		require.Equal(t, "Voting is currently closed", m["title"])
		require.Equal(t, float64(errors.VotingClosed.Code), m["code"])
		require.Nil(t, m["data"])
	}

	{ // problem_with_error_data
		resp, m := readProblem(t, ts, "/problem_with_error_data")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, map[string]interface{}{"address": "GABC"}, m["data"])
	}
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusNotFound, StatusCode(errors.VoteBankDoesNotExist))
	require.Equal(t, http.StatusConflict, StatusCode(errors.TransactionAlreadyExists))
	require.Equal(t, http.StatusBadRequest, StatusCode(errors.AlreadyVoted.Clone()))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.StorageCoreError))
	require.Equal(t, http.StatusInternalServerError, StatusCode(http.ErrBodyNotAllowed))
}

func TestPageQuery(t *testing.T) {
	{
		r := httptest.NewRequest("GET", "/transactions", nil)
		q, err := NewPageQuery(r)
		require.NoError(t, err)
		require.Equal(t, DefaultLimit, q.Limit)
		require.False(t, q.Reverse)
	}

	{
		r := httptest.NewRequest("GET", "/transactions?limit=1000&reverse=true", nil)
		q, err := NewPageQuery(r)
		require.NoError(t, err)
		require.Equal(t, DefaultMaxLimit, q.Limit)
		require.True(t, q.Reverse)
	}

	{
		r := httptest.NewRequest("GET", "/transactions?limit=-1", nil)
		_, err := NewPageQuery(r)
		require.True(t, errors.BadRequestParameter.Is(err))
	}

	{
		r := httptest.NewRequest("GET", "/transactions?reverse=maybe", nil)
		_, err := NewPageQuery(r)
		require.True(t, errors.BadRequestParameter.Is(err))
	}
}
