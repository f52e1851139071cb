package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/auth"
	"music-catalog-api/pkg/config"
	"music-catalog-api/pkg/dao"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/response"
	"music-catalog-api/pkg/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaylistService is the playlist manager surface consumed by the handlers.
type PlaylistService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, name string, description string) (*models.Playlist, error)
	AddSong(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID) (*models.PlaylistDetail, error)
	RemoveSong(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID) (*models.PlaylistDetail, error)
	Update(ctx context.Context, playlistID primitive.ObjectID, update models.PlaylistUpdate) (*models.Playlist, error)
	Delete(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID) error
	GetByID(ctx context.Context, playlistID primitive.ObjectID) (*models.PlaylistDetail, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.PlaylistDetail, error)
}

func ListenAndServe() error {
	cfg := config.Load()
	response.SetEnvironment(cfg.Env)

	allowedHeaders := handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	allowedOrigins := handlers.AllowedOrigins([]string{cfg.ClientURL})
	allowedMethods := handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "OPTIONS", "DELETE"})

	router, err := route(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:      handlers.CORS(allowedHeaders, allowedOrigins, allowedMethods)(router),
		Addr:         fmt.Sprintf(":%v", cfg.Port),
		WriteTimeout: 20 * time.Second,
		ReadTimeout:  20 * time.Second,
	}
	shutdownGracefully(server)

	logrus.Info("Starting API server...")
	return server.ListenAndServe()
}

func route(cfg *config.Config) (*mux.Router, error) {
	dbClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.WithError(err).Error("Error creating database client")
		return nil, err
	}

	dbHandler := &dao.MongoClient{
		Client:             dbClient,
		Database:           cfg.Database,
		UserCollection:     "users",
		SongCollection:     "songs",
		ArtistCollection:   "artists",
		PlaylistCollection: "playlists",
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	guard := &auth.Guard{Tokens: tokens, Users: dbHandler}
	playlists := &service.PlaylistManager{DB: dbHandler}

	r := mux.NewRouter()

	r.HandleFunc("/health", checkHealth(dbHandler)).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", registerUser(dbHandler, tokens)).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", loginUser(dbHandler, tokens)).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", guard.Require(getCurrentUser())).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/refresh", guard.Require(refreshToken(tokens))).Methods(http.MethodPost)

	r.HandleFunc("/api/songs", guard.Optional(getSongs(dbHandler))).Methods(http.MethodGet)
	r.HandleFunc("/api/songs", guard.Require(uploadSong(dbHandler))).Methods(http.MethodPost)
	r.HandleFunc("/api/songs/popular/top", getPopularSongs(dbHandler)).Methods(http.MethodGet)
	r.HandleFunc("/api/songs/{id}", getSongByID(dbHandler)).Methods(http.MethodGet)
	r.HandleFunc("/api/songs/{id}", guard.Require(deleteSong(dbHandler))).Methods(http.MethodDelete)

	r.HandleFunc("/api/artists", getArtists(dbHandler)).Methods(http.MethodGet)
	r.HandleFunc("/api/artists", guard.Require(createArtist(dbHandler))).Methods(http.MethodPost)
	r.HandleFunc("/api/artists/{id}", getArtistByID(dbHandler)).Methods(http.MethodGet)
	r.HandleFunc("/api/artists/{id}", guard.Require(updateArtist(dbHandler))).Methods(http.MethodPut)
	r.HandleFunc("/api/artists/{id}", guard.Require(deleteArtist(dbHandler))).Methods(http.MethodDelete)

	r.HandleFunc("/api/playlists", guard.Require(getPlaylists(playlists))).Methods(http.MethodGet)
	r.HandleFunc("/api/playlists", guard.Require(createPlaylist(playlists))).Methods(http.MethodPost)
	r.HandleFunc("/api/playlists/{id}", guard.Require(getPlaylistByID(playlists))).Methods(http.MethodGet)
	r.HandleFunc("/api/playlists/{id}", guard.Require(updatePlaylist(dbHandler, playlists))).Methods(http.MethodPut)
	r.HandleFunc("/api/playlists/{id}", guard.Require(deletePlaylist(playlists))).Methods(http.MethodDelete)
	r.HandleFunc("/api/playlists/{id}/songs", guard.Require(addSongToPlaylist(dbHandler, playlists))).Methods(http.MethodPost)
	r.HandleFunc("/api/playlists/{id}/songs/{songId}", guard.Require(removeSongFromPlaylist(dbHandler, playlists))).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(endpointNotFound)

	return r, nil
}

func checkHealth(handler dao.DbHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer closeRequestBody(r)
		if err := handler.Ping(r.Context()); err != nil {
			logrus.WithError(err).Error("Database health check failed")
			response.Error(w, err)
			return
		}
		response.Success(w, http.StatusOK, "API is running and connected to database", nil)
	}
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	defer closeRequestBody(r)
	response.Fail(w, http.StatusNotFound, "Endpoint not found")
}

func shutdownGracefully(server *http.Server) {
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		<-signals

		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(c); err != nil {
			logrus.WithError(err).Error("Error shutting down server")
		}

		<-c.Done()
		os.Exit(0)
	}()
}

func closeRequestBody(req *http.Request) {
	if req.Body == nil {
		return
	}
	if err := req.Body.Close(); err != nil {
		logrus.WithError(err).Error("Error closing request body")
	}
}

func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	raw := mux.Vars(r)[name]
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, &apperror.InvalidIDError{Field: name, Value: raw}
	}
	return id, nil
}
