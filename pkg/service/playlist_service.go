package service

import (
	"context"
	"strings"
	"time"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/dao"
	"music-catalog-api/pkg/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistManager owns playlist membership and the derived totalDuration
// invariant: the stored total always equals the sum of member durations and
// is maintained incrementally, never recomputed on read.
type PlaylistManager struct {
	DB dao.DbHandler
}

// Create inserts an empty playlist and registers its id on the owner. A
// failure of the second write leaves an orphaned but harmless playlist; it is
// surfaced, not compensated.
func (m *PlaylistManager) Create(ctx context.Context, ownerID primitive.ObjectID, name string, description string) (*models.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &apperror.ValidationError{Fields: []string{"Playlist name is required"}}
	}

	now := time.Now().UTC()
	playlist := models.Playlist{
		ID:            primitive.NewObjectID(),
		Name:          name,
		Description:   description,
		Owner:         ownerID,
		Songs:         []primitive.ObjectID{},
		TotalDuration: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.DB.AddPlaylist(ctx, playlist); err != nil {
		return nil, err
	}

	if err := m.DB.AddPlaylistToUser(ctx, ownerID, playlist.ID); err != nil {
		logrus.WithError(err).WithField("playlistId", playlist.ID.Hex()).
			Error("Playlist created but owner registration failed")
		return nil, err
	}

	return &playlist, nil
}

// AddSong appends the song to the playlist membership and increments
// totalDuration by its duration. Adding a song that is already a member is a
// no-op.
func (m *PlaylistManager) AddSong(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID) (*models.PlaylistDetail, error) {
	playlist, err := m.DB.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	song, err := m.DB.GetSongByID(ctx, songID)
	if err != nil {
		return nil, err
	}

	if !containsID(playlist.Songs, songID) {
		if err := m.DB.AddSongToPlaylist(ctx, playlistID, songID, song.Duration); err != nil {
			return nil, err
		}
	}

	return m.GetByID(ctx, playlistID)
}

// RemoveSong removes the song from the membership and decrements
// totalDuration. A song that is not a member, or no longer resolves in the
// catalog, leaves the playlist unchanged. The decrement is clamped to the
// current total so prior drift can never drive it negative.
func (m *PlaylistManager) RemoveSong(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID) (*models.PlaylistDetail, error) {
	playlist, err := m.DB.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	song, err := m.DB.GetSongByID(ctx, songID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	if song != nil && containsID(playlist.Songs, songID) {
		decrement := song.Duration
		if playlist.TotalDuration < decrement {
			decrement = playlist.TotalDuration
		}
		if err := m.DB.RemoveSongFromPlaylist(ctx, playlistID, songID, decrement); err != nil {
			return nil, err
		}
	}

	return m.GetByID(ctx, playlistID)
}

// Update touches name, description and cover image only. Membership and
// totalDuration are never modified through this path.
func (m *PlaylistManager) Update(ctx context.Context, playlistID primitive.ObjectID, update models.PlaylistUpdate) (*models.Playlist, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, &apperror.ValidationError{Fields: []string{"Playlist name is required"}}
		}
		set["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.CoverImageURL != nil {
		set["coverImageUrl"] = *update.CoverImageURL
	}

	return m.DB.UpdatePlaylist(ctx, playlistID, bson.M{"$set": set})
}

// Delete retracts the playlist id from the owner's back-references before
// deleting the record, so a failure between the two steps cannot leave the
// owner pointing at a missing playlist.
func (m *PlaylistManager) Delete(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID) error {
	playlist, err := m.DB.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.Owner != ownerID {
		return &apperror.NotFoundError{Entity: "Playlist"}
	}

	if err := m.DB.RemovePlaylistFromUser(ctx, ownerID, playlistID); err != nil {
		return err
	}

	return m.DB.DeletePlaylist(ctx, playlistID)
}

// GetByID returns the playlist with its songs populated and each song's
// artist reference resolved to a name.
func (m *PlaylistManager) GetByID(ctx context.Context, playlistID primitive.ObjectID) (*models.PlaylistDetail, error) {
	playlist, err := m.DB.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return m.populate(ctx, playlist)
}

// GetByOwner returns the owner's playlists, newest first, populated.
func (m *PlaylistManager) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.PlaylistDetail, error) {
	playlists, err := m.DB.GetPlaylistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]models.PlaylistDetail, 0, len(playlists))
	for i := range playlists {
		detail, err := m.populate(ctx, &playlists[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (m *PlaylistManager) populate(ctx context.Context, playlist *models.Playlist) (*models.PlaylistDetail, error) {
	songs, err := m.DB.GetSongsByIDs(ctx, playlist.Songs)
	if err != nil {
		return nil, err
	}

	songsByID := make(map[primitive.ObjectID]models.Song, len(songs))
	artistIDs := make([]primitive.ObjectID, 0, len(songs))
	seenArtists := make(map[primitive.ObjectID]bool)
	for _, song := range songs {
		songsByID[song.ID] = song
		if !seenArtists[song.Artist] {
			seenArtists[song.Artist] = true
			artistIDs = append(artistIDs, song.Artist)
		}
	}

	artists, err := m.DB.GetArtistsByIDs(ctx, artistIDs)
	if err != nil {
		return nil, err
	}
	artistsByID := make(map[primitive.ObjectID]models.Artist, len(artists))
	for _, artist := range artists {
		artistsByID[artist.ID] = artist
	}

	// Membership order is the insertion order of the playlist document, not
	// whatever order the store returned the songs in.
	populated := make([]models.SongWithArtist, 0, len(playlist.Songs))
	for _, songID := range playlist.Songs {
		song, ok := songsByID[songID]
		if !ok {
			continue
		}
		populated = append(populated, models.SongWithArtist{
			Song: song,
			Artist: models.ArtistRef{
				ID:   song.Artist,
				Name: artistsByID[song.Artist].Name,
			},
		})
	}

	return &models.PlaylistDetail{Playlist: *playlist, Songs: populated}, nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
