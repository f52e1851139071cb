package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/dao"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/response"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func getArtists(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		filter := bson.M{}
		if search := r.URL.Query().Get("search"); search != "" {
			filter["$text"] = bson.M{"$search": search}
		}

		artists, err := handler.GetArtists(ctx, filter)
		if err != nil {
			logrus.WithError(err).Error("Error retrieving artists")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{
			"artists": artists,
			"total":   len(artists),
		})
	}
}

func getArtistByID(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		artist, err := handler.GetArtistByID(ctx, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		songs, err := handler.GetSongs(ctx, bson.M{"artist": id, "isPublic": true})
		if err != nil {
			logrus.WithError(err).Error("Error retrieving artist songs")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{
			"artist": artist,
			"songs":  songs,
		})
	}
}

func createArtist(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		var req models.ArtistUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			response.Error(w, &apperror.ValidationError{Fields: []string{"Artist name is required"}})
			return
		}

		now := time.Now().UTC()
		artist := models.Artist{
			ID:        primitive.NewObjectID(),
			Name:      strings.TrimSpace(*req.Name),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if req.Bio != nil {
			artist.Bio = *req.Bio
		}
		if req.ImageURL != nil {
			artist.ImageURL = *req.ImageURL
		}

		if err := handler.AddArtist(ctx, artist); err != nil {
			logrus.WithError(err).Error("Error creating artist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, "Artist created successfully", map[string]interface{}{"artist": artist})
	}
}

func updateArtist(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ArtistUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				response.Error(w, &apperror.ValidationError{Fields: []string{"Artist name is required"}})
				return
			}
			set["name"] = strings.TrimSpace(*req.Name)
		}
		if req.Bio != nil {
			set["bio"] = *req.Bio
		}
		if req.ImageURL != nil {
			set["imageUrl"] = *req.ImageURL
		}

		artist, err := handler.UpdateArtist(ctx, id, bson.M{"$set": set})
		if err != nil {
			logrus.WithError(err).Error("Error updating artist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Artist updated successfully", map[string]interface{}{"artist": artist})
	}
}

func deleteArtist(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if _, err := handler.GetArtistByID(ctx, id); err != nil {
			response.Error(w, err)
			return
		}

		// Forbid-if-referenced: songs keep their artist reference valid.
		count, err := handler.CountSongsByArtist(ctx, id)
		if err != nil {
			response.Error(w, err)
			return
		}
		if count > 0 {
			response.Fail(w, http.StatusBadRequest,
				fmt.Sprintf("Artist is referenced by %v songs and cannot be deleted", count))
			return
		}

		if err := handler.DeleteArtist(ctx, id); err != nil {
			logrus.WithError(err).Error("Error deleting artist")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Artist deleted successfully", nil)
	}
}
