package listing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftfix/swiftfix-go/applications"
	"github.com/swiftfix/swiftfix-go/providers"
)

type staticFetcher struct {
	summaries []applications.Summary
	err       error
}

func (f staticFetcher) FetchApplications(ctx context.Context) ([]applications.Summary, error) {
	return f.summaries, f.err
}

func loadedView(t *testing.T, summaries ...applications.Summary) *View {
	t.Helper()
	v := NewView()
	require.NoError(t, v.Load(context.Background(), staticFetcher{summaries: summaries}))
	return v
}

func TestItemsMergeProvidersThenApplications(t *testing.T) {
	v := loadedView(t,
		applications.Summary{FirstName: "Jane", Surname: "Doe", Profession: "Electrical"},
		applications.Summary{FirstName: "Raj", Surname: "Patel", Profession: "Plumbing"},
	)

	items := v.Items()
	directorySize := len(providers.Directory())
	require.Len(t, items, directorySize+2)

	for _, item := range items[:directorySize] {
		assert.NotNil(t, item.Provider)
		assert.Nil(t, item.Applicant)
	}
	// Applicants come after every directory entry.
	assert.Equal(t, "Jane", items[directorySize].Applicant.FirstName)
	assert.Equal(t, "Raj", items[directorySize+1].Applicant.FirstName)
}

func TestFilteringKeepsApplicationsAppended(t *testing.T) {
	v := loadedView(t, applications.Summary{FirstName: "Jane", Surname: "Doe", Profession: "Electrical"})
	v.SelectService("Plumbing")

	items := v.Items()
	plumbers := len(providers.FilterByService("Plumbing"))
	require.Len(t, items, plumbers+1)
	for _, item := range items[:plumbers] {
		assert.Equal(t, "Plumbing", item.Provider.Service)
	}
	assert.NotNil(t, items[plumbers].Applicant)
}

func TestLoadFailureLeavesDirectoryUsable(t *testing.T) {
	v := NewView()
	err := v.Load(context.Background(), staticFetcher{err: errors.New("connection refused")})
	require.Error(t, err)
	assert.Len(t, v.Items(), len(providers.Directory()))
}

func TestNextClampsAtLastWindow(t *testing.T) {
	v := loadedView(t)
	max := len(v.Items()) - VisibleCount
	for i := 0; i < max+10; i++ {
		v.Next()
	}
	assert.Equal(t, max, v.Index())
	assert.True(t, v.AtEnd())
	assert.Len(t, v.Visible(), VisibleCount)
}

func TestPreviousClampsAtZero(t *testing.T) {
	v := loadedView(t)
	v.Previous()
	v.Previous()
	assert.Equal(t, 0, v.Index())
	assert.True(t, v.AtStart())
}

func TestStepBackAndForth(t *testing.T) {
	v := loadedView(t)
	v.Next()
	v.Next()
	v.Previous()
	assert.Equal(t, 1, v.Index())
	assert.False(t, v.AtStart())
}

func TestVisibleWindowFollowsIndex(t *testing.T) {
	v := loadedView(t)
	first := v.Visible()
	require.Len(t, first, VisibleCount)

	v.Next()
	second := v.Visible()
	assert.Equal(t, first[1], second[0])
}

func TestFewerItemsThanWindowDisablesStepping(t *testing.T) {
	v := loadedView(t)
	v.SelectService("Roofing") // one bundled roofer, no applications
	require.Less(t, len(v.Items()), VisibleCount)

	v.Next()
	assert.Equal(t, 0, v.Index())
	assert.True(t, v.AtStart())
	assert.True(t, v.AtEnd())
	assert.Len(t, v.Visible(), len(v.Items()))
}

func TestSelectServiceResetsIndex(t *testing.T) {
	v := loadedView(t)
	v.Next()
	v.Next()
	require.Equal(t, 2, v.Index())

	v.SelectService("Plumbing")
	assert.Equal(t, 0, v.Index())
	assert.Equal(t, "Plumbing", v.Service())
}

func TestDragScrollsAgainstPointerAtDoubleSpeed(t *testing.T) {
	v := NewView()
	v.BeginDrag(100)
	assert.True(t, v.Dragging())

	v.MoveDrag(130) // pointer moved +30, content scrolls -60
	assert.Equal(t, -60.0, v.ScrollPos())

	v.MoveDrag(80) // -20 from start, content scrolls +40
	assert.Equal(t, 40.0, v.ScrollPos())

	v.EndDrag()
	assert.False(t, v.Dragging())
}

func TestSecondDragResumesFromCurrentScroll(t *testing.T) {
	v := NewView()
	v.BeginDrag(0)
	v.MoveDrag(-10)
	v.EndDrag()
	require.Equal(t, 20.0, v.ScrollPos())

	v.BeginDrag(50)
	v.MoveDrag(45)
	assert.Equal(t, 30.0, v.ScrollPos())
}

func TestMoveWithoutActiveDragIsIgnored(t *testing.T) {
	v := NewView()
	v.MoveDrag(500)
	assert.Equal(t, 0.0, v.ScrollPos())
}

func TestHTTPFetcherDecodesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"firstName":"Jane","surname":"Doe","profession":"Electrical"}]`))
	}))
	defer srv.Close()

	got, err := NewHTTPFetcher(srv.URL, srv.Client()).FetchApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, applications.Summary{FirstName: "Jane", Surname: "Doe", Profession: "Electrical"}, got[0])
}

func TestHTTPFetcherRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Server error"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL, nil).FetchApplications(context.Background())
	assert.Error(t, err)
}
