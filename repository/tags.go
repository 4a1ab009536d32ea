package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeep/model"
	"notekeep/utils"
)

type TagRepo struct {
	MongoCollection *mongo.Collection
}

func NewTagRepo(db *mongo.Database) *TagRepo {
	return &TagRepo{MongoCollection: db.Collection("tags")}
}

func (r *TagRepo) Create(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, tag)
	return err
}

func (r *TagRepo) FindByID(ctx context.Context, id, userID string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepo) FindForUser(ctx context.Context, userID string) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepo) Rename(ctx context.Context, id, userID, name string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tag model.Tag
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"name": name}}, opts).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountOwned reports how many of the given tag ids belong to the user.
// Duplicate requested ids resolve to a single document, so the reference
// validator's equality check rejects them.
func (r *TagRepo) CountOwned(ctx context.Context, userID string, tagIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("count", "tags")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{
		"_id":     bson.M{"$in": tagIDs},
		"user_id": userID,
	})
}
