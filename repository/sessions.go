package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeep/model"
	"notekeep/utils"
)

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) *SessionRepo {
	return &SessionRepo{MongoCollection: db.Collection("sessions")}
}

func (r *SessionRepo) Create(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, session)
	return err
}

func (r *SessionRepo) FindByID(ctx context.Context, sessionID string) (*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	var session model.Session
	err := r.MongoCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) FindActiveForUser(ctx context.Context, userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "last_activity_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*model.Session{}
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepo) CountActive(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "sessions")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "is_active": true})
}

// End deactivates one session belonging to the user.
func (r *SessionRepo) End(ctx context.Context, sessionID, userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// EndAll deactivates every active session the user has.
func (r *SessionRepo) EndAll(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// EndLeastActive deactivates the active session with the oldest activity.
func (r *SessionRepo) EndLeastActive(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "last_activity_at", Value: 1}})

	var session model.Session
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}}, opts).Decode(&session)
	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}
	return nil
}

// Touch refreshes the session's activity timestamp.
func (r *SessionRepo) Touch(ctx context.Context, sessionID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"session_id": sessionID},
		bson.M{"$set": bson.M{"last_activity_at": time.Now().UTC()}})
	return err
}
