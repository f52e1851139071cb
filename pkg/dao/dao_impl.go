package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoClient struct {
	Client             *mongo.Client
	Database           string
	UserCollection     string
	SongCollection     string
	ArtistCollection   string
	PlaylistCollection string
}

func (db *MongoClient) getUserCollection() *mongo.Collection {
	return db.Client.Database(db.Database).Collection(db.UserCollection)
}

func (db *MongoClient) getSongCollection() *mongo.Collection {
	return db.Client.Database(db.Database).Collection(db.SongCollection)
}

func (db *MongoClient) getArtistCollection() *mongo.Collection {
	return db.Client.Database(db.Database).Collection(db.ArtistCollection)
}

func (db *MongoClient) getPlaylistCollection() *mongo.Collection {
	return db.Client.Database(db.Database).Collection(db.PlaylistCollection)
}

func (db *MongoClient) Ping(ctx context.Context) error {
	if err := db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return &apperror.StoreUnavailableError{Err: err}
	}
	return nil
}

func (db *MongoClient) CreateUser(ctx context.Context, user models.User) error {
	results, err := db.getUserCollection().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			field := "email"
			if strings.Contains(err.Error(), "username") {
				field = "username"
			}
			return &apperror.DuplicateKeyError{Field: field}
		}
		return err
	} else if results.InsertedID == nil {
		return errors.New("no user inserted")
	}
	return nil
}

func (db *MongoClient) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"email": strings.ToLower(login)},
		{"username": login},
	}}

	var user models.User
	if err := db.getUserCollection().FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "User"}
		}
		return nil, err
	}
	return &user, nil
}

func (db *MongoClient) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var user models.User
	if err := db.getUserCollection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "User"}
		}
		return nil, err
	}
	return &user, nil
}

func (db *MongoClient) FindUserByEmailOrUsername(ctx context.Context, email string, username string) (*models.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"email": strings.ToLower(email)},
		{"username": username},
	}}

	var user models.User
	if err := db.getUserCollection().FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (db *MongoClient) AddPlaylistToUser(ctx context.Context, userID primitive.ObjectID, playlistID primitive.ObjectID) error {
	update := bson.M{
		"$push": bson.M{"playlists": playlistID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	results, err := db.getUserCollection().UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	} else if results.MatchedCount == 0 {
		return &apperror.NotFoundError{Entity: "User"}
	}
	return nil
}

func (db *MongoClient) RemovePlaylistFromUser(ctx context.Context, userID primitive.ObjectID, playlistID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"playlists": playlistID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	results, err := db.getUserCollection().UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	} else if results.MatchedCount == 0 {
		return &apperror.NotFoundError{Entity: "User"}
	}
	return nil
}

func (db *MongoClient) AddSong(ctx context.Context, song models.Song) error {
	results, err := db.getSongCollection().InsertOne(ctx, song)
	if err != nil {
		return err
	} else if results.InsertedID == nil {
		return errors.New("no song inserted")
	}
	return nil
}

func (db *MongoClient) GetSongs(ctx context.Context, filter bson.M) ([]models.Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := db.getSongCollection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var results []models.Song
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *MongoClient) GetPopularSongs(ctx context.Context, limit int64) ([]models.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "playCount", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.getSongCollection().Find(ctx, bson.M{"isPublic": true}, opts)
	if err != nil {
		return nil, err
	}

	var results []models.Song
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *MongoClient) GetSongByID(ctx context.Context, id primitive.ObjectID) (*models.Song, error) {
	var song models.Song
	if err := db.getSongCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&song); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "Song"}
		}
		return nil, err
	}
	return &song, nil
}

func (db *MongoClient) GetSongsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Song, error) {
	if len(ids) == 0 {
		return []models.Song{}, nil
	}

	cursor, err := db.getSongCollection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var results []models.Song
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *MongoClient) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.getSongCollection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"playCount": 1}})
	return err
}

func (db *MongoClient) CountSongsByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	return db.getSongCollection().CountDocuments(ctx, bson.M{"artist": artistID})
}

func (db *MongoClient) DeleteSong(ctx context.Context, id primitive.ObjectID) error {
	result := db.getSongCollection().FindOneAndDelete(ctx, bson.M{"_id": id})
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return &apperror.NotFoundError{Entity: "Song"}
		}
		return result.Err()
	}

	var song models.Song
	if err := result.Decode(&song); err != nil {
		return err
	}

	// Retract the song from every playlist and shrink each total duration,
	// floored at zero so drifted totals cannot go negative.
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"songs": bson.M{"$filter": bson.M{
				"input": "$songs",
				"as":    "s",
				"cond":  bson.M{"$ne": bson.A{"$$s", song.ID}},
			}},
			"totalDuration": bson.M{"$max": bson.A{
				0,
				bson.M{"$subtract": bson.A{"$totalDuration", song.Duration}},
			}},
		}}},
	}

	_, err := db.getPlaylistCollection().UpdateMany(ctx, bson.M{"songs": song.ID}, pipeline)
	return err
}

func (db *MongoClient) AddArtist(ctx context.Context, artist models.Artist) error {
	results, err := db.getArtistCollection().InsertOne(ctx, artist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &apperror.DuplicateKeyError{Field: "name"}
		}
		return err
	} else if results.InsertedID == nil {
		return errors.New("no artist inserted")
	}
	return nil
}

func (db *MongoClient) GetArtists(ctx context.Context, filter bson.M) ([]models.Artist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := db.getArtistCollection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var results []models.Artist
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *MongoClient) GetArtistByID(ctx context.Context, id primitive.ObjectID) (*models.Artist, error) {
	var artist models.Artist
	if err := db.getArtistCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&artist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "Artist"}
		}
		return nil, err
	}
	return &artist, nil
}

func (db *MongoClient) GetArtistsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Artist, error) {
	if len(ids) == 0 {
		return []models.Artist{}, nil
	}

	cursor, err := db.getArtistCollection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var results []models.Artist
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *MongoClient) UpdateArtist(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Artist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var artist models.Artist
	if err := db.getArtistCollection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&artist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "Artist"}
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperror.DuplicateKeyError{Field: "name"}
		}
		return nil, err
	}
	return &artist, nil
}

func (db *MongoClient) DeleteArtist(ctx context.Context, id primitive.ObjectID) error {
	results, err := db.getArtistCollection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	} else if results.DeletedCount == 0 {
		return &apperror.NotFoundError{Entity: "Artist"}
	}
	return nil
}

func (db *MongoClient) AddPlaylist(ctx context.Context, playlist models.Playlist) error {
	results, err := db.getPlaylistCollection().InsertOne(ctx, playlist)
	if err != nil {
		return err
	} else if results.InsertedID == nil {
		return errors.New("no playlist inserted")
	}
	return nil
}

func (db *MongoClient) GetPlaylistByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := db.getPlaylistCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&playlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "Playlist"}
		}
		return nil, err
	}
	return &playlist, nil
}

func (db *MongoClient) GetPlaylistsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := db.getPlaylistCollection().Find(ctx, bson.M{"owner": ownerID}, opts)
	if err != nil {
		return nil, err
	}

	var results []models.Playlist
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// AddSongToPlaylist appends the song and bumps totalDuration in one document
// update. The non-membership predicate in the filter makes concurrent
// duplicate adds match zero documents instead of double-counting.
func (db *MongoClient) AddSongToPlaylist(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID, duration int) error {
	filter := bson.M{"_id": playlistID, "songs": bson.M{"$ne": songID}}
	update := bson.M{
		"$push": bson.M{"songs": songID},
		"$inc":  bson.M{"totalDuration": duration},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	_, err := db.getPlaylistCollection().UpdateOne(ctx, filter, update)
	return err
}

// RemoveSongFromPlaylist pulls the song and decrements totalDuration in one
// document update, guarded by a membership predicate so a repeated removal
// cannot decrement twice.
func (db *MongoClient) RemoveSongFromPlaylist(ctx context.Context, playlistID primitive.ObjectID, songID primitive.ObjectID, decrement int) error {
	filter := bson.M{"_id": playlistID, "songs": songID}
	update := bson.M{
		"$pull": bson.M{"songs": songID},
		"$inc":  bson.M{"totalDuration": -decrement},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	_, err := db.getPlaylistCollection().UpdateOne(ctx, filter, update)
	return err
}

func (db *MongoClient) UpdatePlaylist(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist models.Playlist
	if err := db.getPlaylistCollection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&playlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperror.NotFoundError{Entity: "Playlist"}
		}
		return nil, err
	}
	return &playlist, nil
}

func (db *MongoClient) DeletePlaylist(ctx context.Context, id primitive.ObjectID) error {
	results, err := db.getPlaylistCollection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	} else if results.DeletedCount == 0 {
		return &apperror.NotFoundError{Entity: "Playlist"}
	}
	return nil
}
