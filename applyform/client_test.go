package applyform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSubmitPostsMultipartForm(t *testing.T) {
	var gotPath string
	var gotFields map[string]string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotFields[key] = r.FormValue(key)
		}
		file, header, err := r.FormFile("pccFile")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "pcc.pdf", header.Filename)
		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Application submitted successfully"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), filledFields())
	require.NoError(t, err)

	assert.Equal(t, "/apply", gotPath)
	assert.Equal(t, "Jane", gotFields["firstName"])
	assert.Equal(t, "Electrical", gotFields["profession"])
	assert.Equal(t, "%PDF-1.4", string(gotFile))
}

func TestClientSubmitOmitsEmptyOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasMiddle := r.MultipartForm.Value["middleName"]
		_, hasReferral := r.MultipartForm.Value["referralCode"]
		assert.False(t, hasMiddle)
		assert.False(t, hasReferral)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), filledFields())
	assert.NoError(t, err)
}

func TestClientSubmitSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"profession must be one of the listed professions"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), filledFields())
	require.Error(t, err)
	assert.Equal(t, "profession must be one of the listed professions", err.Error())
}

func TestClientSubmitFallsBackOnUnreadableError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), filledFields())
	require.Error(t, err)
	assert.Equal(t, GenericSubmitError, err.Error())
}

func TestClientSubmitFallsBackWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	err := NewClient(srv.URL, nil).Submit(context.Background(), filledFields())
	require.Error(t, err)
	assert.Equal(t, GenericSubmitError, err.Error())
}
