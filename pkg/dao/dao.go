package dao

import (
	"context"

	"music-catalog-api/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DbHandler interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, user models.User) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUserByEmailOrUsername(ctx context.Context, email string, username string) (*models.User, error)
	AddPlaylistToUser(ctx context.Context, userID primitive.ObjectID, playlistID primitive.ObjectID) error
	RemovePlaylistFromUser(ctx context.Context, userID primitive.ObjectID, playlistID primitive.ObjectID) error

	AddSong(ctx context.Context, song models.Song) error
	GetSongs(ctx context.Context, filter bson.M) ([]models.Song, error)
	GetPopularSongs(ctx context.Context, limit int64) ([]models.Song, error)
	GetSongByID(ctx context.Context, id primitive.ObjectID) (*models.Song, error)
	GetSongsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Song, error)
	IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error
	CountSongsByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error)
	DeleteSong(ctx context.Context, id primitive.ObjectID) error

	AddArtist(ctx context.Context, artist models.Artist) error
	GetArtists(ctx context.Context, filter bson.M) ([]models.Artist, error)
	GetArtistByID(ctx context.Context, id primitive.ObjectID) (*models.Artist, error)
	GetArtistsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id primitive.ObjectID) error

	AddPlaylist(ctx context.Context, playlist models.Playlist) error
	GetPlaylistByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error)
	GetPlaylistsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Playlist, error)
	AddSongToPlaylist(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID, duration int) error
	RemoveSongFromPlaylist(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID, decrement int) error
	UpdatePlaylist(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id primitive.ObjectID) error
}
