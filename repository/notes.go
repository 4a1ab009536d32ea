package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeep/model"
	"notekeep/utils"
)

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func NewNoteRepo(db *mongo.Database) *NoteRepo {
	return &NoteRepo{MongoCollection: db.Collection("notes")}
}

// Create inserts the note as-is; the caller has already stamped owner, id and
// timestamps.
func (r *NoteRepo) Create(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

// FindByID retrieves one owner-scoped note. A miss returns (nil, nil) whether
// the id does not exist or belongs to another user.
func (r *NoteRepo) FindByID(ctx context.Context, id, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// Find lists notes for the filter's owner, newest update first.
func (r *NoteRepo) Find(ctx context.Context, filter model.NoteFilter) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	query := bson.M{"user_id": filter.UserID}

	if filter.SearchTerm != "" {
		re := bson.M{"$regex": regexp.QuoteMeta(filter.SearchTerm), "$options": "i"}
		query["$or"] = []bson.M{
			{"title": re},
			{"content": re},
		}
	}

	if filter.FolderID != "" {
		query["folder_id"] = filter.FolderID
	}

	if filter.TagID != "" {
		query["tags"] = filter.TagID
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Update applies a whitelisted patch to one owner-scoped note and returns the
// updated document. A clear on folder_id unsets the field instead of writing
// "". A miss returns (nil, nil).
func (r *NoteRepo) Update(ctx context.Context, id, userID string, patch model.NotePatch) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{"updated_at": time.Now().UTC()}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.SetsFolder() {
		set["folder_id"] = *patch.FolderID
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	update := bson.M{"$set": set}
	if patch.ClearsFolder() {
		update["$unset"] = bson.M{"folder_id": 1}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID}, update, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// Delete removes one owner-scoped note, reporting how many documents matched.
func (r *NoteRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountForUser counts all notes belonging to a user.
func (r *NoteRepo) CountForUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
}
