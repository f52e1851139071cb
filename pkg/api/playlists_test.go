package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/auth"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/testhelper/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApi_GetPlaylists_ShouldReturn401WithoutIdentity(t *testing.T) {
	playlists := &mocks.PlaylistService{}

	req, err := http.NewRequest(http.MethodGet, "/api/playlists", nil)
	require.Nil(t, err)

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(getPlaylists(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 401, recorder.Code)
}

func TestApi_GetPlaylists_ShouldReturn200WithOwnersPlaylists(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	playlists := &mocks.PlaylistService{}
	playlists.On("GetByOwner", mock.Anything, user.ID).Return([]models.PlaylistDetail{
		{Playlist: models.Playlist{ID: primitive.NewObjectID(), Name: "Road Trip", Owner: user.ID}},
	}, nil)

	req, err := http.NewRequest(http.MethodGet, "/api/playlists", nil)
	require.Nil(t, err)
	req = req.WithContext(auth.ContextWithUser(req.Context(), user))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(getPlaylists(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
}

func TestApi_GetPlaylistByID_ShouldReturn404IfPlaylistNotFound(t *testing.T) {
	playlists := &mocks.PlaylistService{}
	playlists.On("GetByID", mock.Anything, mock.Anything).Return(nil, &apperror.NotFoundError{Entity: "Playlist"})

	req, err := http.NewRequest(http.MethodGet, "/api/playlists/603ac4abd9ad8067f54a2778", nil)
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "603ac4abd9ad8067f54a2778"})

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(getPlaylistByID(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 404, recorder.Code)
}

func TestApi_CreatePlaylist_ShouldReturn400IfNameMissing(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	playlists := &mocks.PlaylistService{}
	playlists.On("Create", mock.Anything, user.ID, "", "").
		Return(nil, &apperror.ValidationError{Fields: []string{"Playlist name is required"}})

	req, err := http.NewRequest(http.MethodPost, "/api/playlists", strings.NewReader("{}"))
	require.Nil(t, err)
	req = req.WithContext(auth.ContextWithUser(req.Context(), user))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(createPlaylist(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 400, recorder.Code)
}

func TestApi_CreatePlaylist_ShouldReturn201OnSuccess(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	playlists := &mocks.PlaylistService{}
	playlists.On("Create", mock.Anything, user.ID, "Road Trip", "Songs for the highway").Return(&models.Playlist{
		ID: primitive.NewObjectID(), Name: "Road Trip", Owner: user.ID,
	}, nil)

	body := `{"name":"Road Trip","description":"Songs for the highway"}`
	req, err := http.NewRequest(http.MethodPost, "/api/playlists", strings.NewReader(body))
	require.Nil(t, err)
	req = req.WithContext(auth.ContextWithUser(req.Context(), user))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(createPlaylist(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 201, recorder.Code)
	playlists.AssertExpectations(t)
}

func TestApi_UpdatePlaylist_ShouldReturn404IfCallerDoesNotOwnPlaylist(t *testing.T) {
	playlistID := primitive.NewObjectID()
	handler := &mocks.DbHandler{}
	handler.On("GetPlaylistByID", mock.Anything, playlistID).Return(&models.Playlist{
		ID: playlistID, Owner: primitive.NewObjectID(),
	}, nil)
	playlists := &mocks.PlaylistService{}

	req, err := http.NewRequest(http.MethodPut, "/api/playlists/"+playlistID.Hex(), strings.NewReader(`{"name":"Renamed"}`))
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), &models.User{ID: primitive.NewObjectID()}))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(updatePlaylist(handler, playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 404, recorder.Code)
	playlists.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestApi_UpdatePlaylist_ShouldReturn200WhenOwnerUpdates(t *testing.T) {
	playlistID := primitive.NewObjectID()
	owner := &models.User{ID: primitive.NewObjectID()}
	handler := &mocks.DbHandler{}
	handler.On("GetPlaylistByID", mock.Anything, playlistID).Return(&models.Playlist{
		ID: playlistID, Owner: owner.ID,
	}, nil)
	playlists := &mocks.PlaylistService{}
	playlists.On("Update", mock.Anything, playlistID, mock.Anything).Return(&models.Playlist{
		ID: playlistID, Name: "Renamed", Owner: owner.ID,
	}, nil)

	req, err := http.NewRequest(http.MethodPut, "/api/playlists/"+playlistID.Hex(), strings.NewReader(`{"name":"Renamed"}`))
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), owner))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(updatePlaylist(handler, playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
}

func TestApi_AddSongToPlaylist_ShouldReturn400ForMalformedSongID(t *testing.T) {
	playlistID := primitive.NewObjectID()
	owner := &models.User{ID: primitive.NewObjectID()}
	handler := &mocks.DbHandler{}
	handler.On("GetPlaylistByID", mock.Anything, playlistID).Return(&models.Playlist{
		ID: playlistID, Owner: owner.ID,
	}, nil)
	playlists := &mocks.PlaylistService{}

	req, err := http.NewRequest(http.MethodPost, "/api/playlists/"+playlistID.Hex()+"/songs", strings.NewReader(`{"songId":"not-an-id"}`))
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), owner))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(addSongToPlaylist(handler, playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 400, recorder.Code)
}

func TestApi_AddSongToPlaylist_ShouldReturn200OnSuccess(t *testing.T) {
	playlistID := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	owner := &models.User{ID: primitive.NewObjectID()}
	handler := &mocks.DbHandler{}
	handler.On("GetPlaylistByID", mock.Anything, playlistID).Return(&models.Playlist{
		ID: playlistID, Owner: owner.ID,
	}, nil)
	playlists := &mocks.PlaylistService{}
	playlists.On("AddSong", mock.Anything, playlistID, songID).Return(&models.PlaylistDetail{
		Playlist: models.Playlist{ID: playlistID, Owner: owner.ID, TotalDuration: 245},
	}, nil)

	req, err := http.NewRequest(http.MethodPost, "/api/playlists/"+playlistID.Hex()+"/songs", strings.NewReader(`{"songId":"`+songID.Hex()+`"}`))
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), owner))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(addSongToPlaylist(handler, playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	playlists.AssertExpectations(t)
}

func TestApi_RemoveSongFromPlaylist_ShouldReturn200OnSuccess(t *testing.T) {
	playlistID := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	owner := &models.User{ID: primitive.NewObjectID()}
	handler := &mocks.DbHandler{}
	handler.On("GetPlaylistByID", mock.Anything, playlistID).Return(&models.Playlist{
		ID: playlistID, Owner: owner.ID,
	}, nil)
	playlists := &mocks.PlaylistService{}
	playlists.On("RemoveSong", mock.Anything, playlistID, songID).Return(&models.PlaylistDetail{
		Playlist: models.Playlist{ID: playlistID, Owner: owner.ID},
	}, nil)

	req, err := http.NewRequest(http.MethodDelete, "/api/playlists/"+playlistID.Hex()+"/songs/"+songID.Hex(), nil)
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex(), "songId": songID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), owner))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(removeSongFromPlaylist(handler, playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	playlists.AssertExpectations(t)
}

func TestApi_DeletePlaylist_ShouldReturn404IfCallerDoesNotOwnPlaylist(t *testing.T) {
	playlistID := primitive.NewObjectID()
	playlists := &mocks.PlaylistService{}
	playlists.On("Delete", mock.Anything, playlistID, mock.Anything).Return(&apperror.NotFoundError{Entity: "Playlist"})

	req, err := http.NewRequest(http.MethodDelete, "/api/playlists/"+playlistID.Hex(), nil)
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), &models.User{ID: primitive.NewObjectID()}))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(deletePlaylist(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 404, recorder.Code)
}

func TestApi_DeletePlaylist_ShouldReturn200WhenOwnerDeletes(t *testing.T) {
	playlistID := primitive.NewObjectID()
	owner := &models.User{ID: primitive.NewObjectID()}
	playlists := &mocks.PlaylistService{}
	playlists.On("Delete", mock.Anything, playlistID, owner.ID).Return(nil)

	req, err := http.NewRequest(http.MethodDelete, "/api/playlists/"+playlistID.Hex(), nil)
	require.Nil(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": playlistID.Hex()})
	req = req.WithContext(auth.ContextWithUser(req.Context(), owner))

	recorder := httptest.NewRecorder()
	httpHandler := http.HandlerFunc(deletePlaylist(playlists))
	httpHandler.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	playlists.AssertExpectations(t)
}
