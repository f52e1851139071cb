package api

import (
	"context"
	"encoding/json"
	"net/http"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/auth"
	"music-catalog-api/pkg/dao"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/response"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func getPlaylists(playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		details, err := playlists.GetByOwner(ctx, user.ID)
		if err != nil {
			logrus.WithError(err).Error("Error retrieving playlists")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{
			"playlists": details,
			"total":     len(details),
		})
	}
}

func getPlaylistByID(playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		detail, err := playlists.GetByID(ctx, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{"playlist": detail})
	}
}

func createPlaylist(playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req models.PlaylistCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		playlist, err := playlists.Create(ctx, user.ID, req.Name, req.Description)
		if err != nil {
			logrus.WithError(err).Error("Error creating playlist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, "Playlist created successfully", map[string]interface{}{"playlist": playlist})
	}
}

func updatePlaylist(handler dao.DbHandler, playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := requireOwnership(ctx, handler, id, r); err != nil {
			response.Error(w, err)
			return
		}

		var req models.PlaylistUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		playlist, err := playlists.Update(ctx, id, req)
		if err != nil {
			logrus.WithError(err).Error("Error updating playlist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Playlist updated successfully", map[string]interface{}{"playlist": playlist})
	}
}

func addSongToPlaylist(handler dao.DbHandler, playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := requireOwnership(ctx, handler, id, r); err != nil {
			response.Error(w, err)
			return
		}

		var req models.AddSongRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		songID, err := primitive.ObjectIDFromHex(req.SongID)
		if err != nil {
			response.Error(w, &apperror.InvalidIDError{Field: "songId", Value: req.SongID})
			return
		}

		detail, err := playlists.AddSong(ctx, id, songID)
		if err != nil {
			logrus.WithError(err).Error("Error adding song to playlist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Song added to playlist successfully", map[string]interface{}{"playlist": detail})
	}
}

func removeSongFromPlaylist(handler dao.DbHandler, playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := requireOwnership(ctx, handler, id, r); err != nil {
			response.Error(w, err)
			return
		}

		songID, err := pathID(r, "songId")
		if err != nil {
			response.Error(w, err)
			return
		}

		detail, err := playlists.RemoveSong(ctx, id, songID)
		if err != nil {
			logrus.WithError(err).Error("Error removing song from playlist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Song removed from playlist successfully", map[string]interface{}{"playlist": detail})
	}
}

func deletePlaylist(playlists PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := playlists.Delete(ctx, id, user.ID); err != nil {
			logrus.WithError(err).Error("Error deleting playlist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Playlist deleted successfully", nil)
	}
}

// requireOwnership confirms the playlist exists and belongs to the caller.
// Non-owners get the same answer as a missing playlist.
func requireOwnership(ctx context.Context, handler dao.DbHandler, playlistID primitive.ObjectID, r *http.Request) error {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		return &apperror.NotFoundError{Entity: "Playlist"}
	}

	playlist, err := handler.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.Owner != user.ID {
		return &apperror.NotFoundError{Entity: "Playlist"}
	}
	return nil
}
