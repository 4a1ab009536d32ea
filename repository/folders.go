package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeep/model"
	"notekeep/utils"
)

type FolderRepo struct {
	MongoCollection *mongo.Collection
}

func NewFolderRepo(db *mongo.Database) *FolderRepo {
	return &FolderRepo{MongoCollection: db.Collection("folders")}
}

func (r *FolderRepo) Create(ctx context.Context, folder *model.Folder) error {
	timer := utils.TrackDBOperation("insert", "folders")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, folder)
	return err
}

func (r *FolderRepo) FindByID(ctx context.Context, id, userID string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepo) FindForUser(ctx context.Context, userID string) ([]*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	folders := []*model.Folder{}
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// Rename updates the folder name and returns the updated document, or
// (nil, nil) on an owner-scoped miss.
func (r *FolderRepo) Rename(ctx context.Context, id, userID, name string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("update", "folders")
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var folder model.Folder
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"name": name}}, opts).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "folders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountOwned reports how many folders with the given id belong to the user.
// The reference validator needs exactly 1.
func (r *FolderRepo) CountOwned(ctx context.Context, userID, folderID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "folders")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{"_id": folderID, "user_id": userID})
}
