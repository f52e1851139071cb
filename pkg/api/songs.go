package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/auth"
	"music-catalog-api/pkg/dao"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/response"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const popularSongLimit = 10

func getSongs(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		filter := bson.M{"isPublic": true}
		if user, ok := auth.UserFromContext(ctx); ok {
			// An authenticated caller also sees their own private uploads.
			delete(filter, "isPublic")
			filter["$or"] = []bson.M{
				{"isPublic": true},
				{"uploadedBy": user.ID},
			}
		}

		query := r.URL.Query()
		if genre := query.Get("genre"); genre != "" {
			filter["genre"] = primitive.Regex{Pattern: regexp.QuoteMeta(genre), Options: "i"}
		}
		if artist := query.Get("artist"); artist != "" {
			artistID, err := primitive.ObjectIDFromHex(artist)
			if err != nil {
				response.Error(w, &apperror.InvalidIDError{Field: "artist", Value: artist})
				return
			}
			filter["artist"] = artistID
		}
		if search := query.Get("search"); search != "" {
			filter["$text"] = bson.M{"$search": search}
		}

		songs, err := handler.GetSongs(ctx, filter)
		if err != nil {
			logrus.WithError(err).Error("Error retrieving songs")
			response.Error(w, err)
			return
		}

		populated, err := populateSongs(r, handler, songs)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{
			"songs": populated,
			"total": len(populated),
		})
	}
}

func getSongByID(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		song, err := handler.GetSongByID(ctx, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		// Fire-and-forget: an undercounted play is acceptable, a failed
		// retrieval response is not.
		if err := handler.IncrementPlayCount(ctx, id); err != nil {
			logrus.WithError(err).Warn("Error incrementing play count")
		}

		artist, err := handler.GetArtistByID(ctx, song.Artist)
		if err != nil && !apperror.IsNotFound(err) {
			response.Error(w, err)
			return
		}

		detail := models.SongWithArtist{Song: *song}
		if artist != nil {
			detail.Artist = models.ArtistRef{
				ID:       artist.ID,
				Name:     artist.Name,
				Bio:      artist.Bio,
				ImageURL: artist.ImageURL,
			}
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{"song": detail})
	}
}

func getPopularSongs(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		songs, err := handler.GetPopularSongs(ctx, popularSongLimit)
		if err != nil {
			logrus.WithError(err).Error("Error retrieving popular songs")
			response.Error(w, err)
			return
		}

		populated, err := populateSongs(r, handler, songs)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{"songs": populated})
	}
}

func uploadSong(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req models.SongUpload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		var fields []string
		if strings.TrimSpace(req.Title) == "" {
			fields = append(fields, "Song title is required")
		}
		if req.Artist == "" {
			fields = append(fields, "Artist is required")
		}
		if req.Duration < 1 {
			fields = append(fields, "Duration must be at least 1 second")
		}
		if !models.IsValidGenre(req.Genre) {
			fields = append(fields, "Genre must be one of the supported genres")
		}
		if req.FileURL == "" {
			fields = append(fields, "File URL is required")
		}
		if len(fields) > 0 {
			response.Error(w, &apperror.ValidationError{Fields: fields})
			return
		}

		artistID, err := primitive.ObjectIDFromHex(req.Artist)
		if err != nil {
			response.Error(w, &apperror.InvalidIDError{Field: "artist", Value: req.Artist})
			return
		}

		if _, err := handler.GetArtistByID(ctx, artistID); err != nil {
			response.Error(w, err)
			return
		}

		isPublic := true
		if req.IsPublic != nil {
			isPublic = *req.IsPublic
		}

		now := time.Now().UTC()
		song := models.Song{
			ID:           primitive.NewObjectID(),
			Title:        strings.TrimSpace(req.Title),
			Artist:       artistID,
			Duration:     req.Duration,
			Genre:        req.Genre,
			FileURL:      req.FileURL,
			ThumbnailURL: req.ThumbnailURL,
			Lyrics:       req.Lyrics,
			IsPublic:     isPublic,
			PlayCount:    0,
			UploadedBy:   user.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := handler.AddSong(ctx, song); err != nil {
			logrus.WithError(err).Error("Error adding song to database")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, "Song uploaded successfully", map[string]interface{}{"song": song})
	}
}

func deleteSong(handler dao.DbHandler) http.HandlerFunc {
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

		song, err := handler.GetSongByID(ctx, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		if song.UploadedBy != user.ID {
			response.Fail(w, http.StatusForbidden, "Only the uploader can delete this song")
			return
		}

		if err := handler.DeleteSong(ctx, id); err != nil {
			logrus.WithError(err).Error("Error deleting song")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Song deleted successfully", nil)
	}
}

// populateSongs resolves each song's artist reference to a name and image.
func populateSongs(r *http.Request, handler dao.DbHandler, songs []models.Song) ([]models.SongWithArtist, error) {
	artistIDs := make([]primitive.ObjectID, 0, len(songs))
	seen := make(map[primitive.ObjectID]bool)
	for _, song := range songs {
		if !seen[song.Artist] {
			seen[song.Artist] = true
			artistIDs = append(artistIDs, song.Artist)
		}
	}

	artists, err := handler.GetArtistsByIDs(r.Context(), artistIDs)
	if err != nil {
		return nil, err
	}
	artistsByID := make(map[primitive.ObjectID]models.Artist, len(artists))
	for _, artist := range artists {
		artistsByID[artist.ID] = artist
	}

	populated := make([]models.SongWithArtist, 0, len(songs))
	for _, song := range songs {
		artist := artistsByID[song.Artist]
		populated = append(populated, models.SongWithArtist{
			Song: song,
			Artist: models.ArtistRef{
				ID:       song.Artist,
				Name:     artist.Name,
				ImageURL: artist.ImageURL,
			},
		})
	}
	return populated, nil
}
