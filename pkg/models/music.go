package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genres is the closed set of accepted song genres.
var Genres = []string{
	"Rock", "Pop", "Hip Hop", "R&B", "Country", "Electronic", "Classical",
	"Jazz", "Blues", "Folk", "Reggae", "Punk", "Metal", "Alternative",
	"Indie", "Dance", "Latin", "World", "Soundtrack", "Other",
}

func IsValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

type Song struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Title        string             `json:"title" bson:"title"`
	Artist       primitive.ObjectID `json:"artist" bson:"artist"`
	Duration     int                `json:"duration" bson:"duration"`
	Genre        string             `json:"genre" bson:"genre"`
	FileURL      string             `json:"fileUrl" bson:"fileUrl"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	Lyrics       string             `json:"lyrics,omitempty" bson:"lyrics,omitempty"`
	IsPublic     bool               `json:"isPublic" bson:"isPublic"`
	PlayCount    int                `json:"playCount" bson:"playCount"`
	UploadedBy   primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Artist struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Bio       string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ImageURL  string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Playlist struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id"`
	Name          string               `json:"name" bson:"name"`
	Description   string               `json:"description,omitempty" bson:"description,omitempty"`
	CoverImageURL string               `json:"coverImageUrl,omitempty" bson:"coverImageUrl,omitempty"`
	Owner         primitive.ObjectID   `json:"owner" bson:"owner"`
	Songs         []primitive.ObjectID `json:"songs" bson:"songs"`
	TotalDuration int                  `json:"totalDuration" bson:"totalDuration"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// ArtistRef is the populated form of a song's artist reference.
type ArtistRef struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Bio      string             `json:"bio,omitempty"`
	ImageURL string             `json:"imageUrl,omitempty"`
}

// SongWithArtist shadows the raw artist id with the populated reference.
type SongWithArtist struct {
	Song
	Artist ArtistRef `json:"artist"`
}

// PlaylistDetail shadows the raw song id sequence with populated songs.
type PlaylistDetail struct {
	Playlist
	Songs []SongWithArtist `json:"songs"`
}
