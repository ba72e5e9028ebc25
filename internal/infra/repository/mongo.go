package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
	"training-chatbot/internal/domain/interfaces/repository/constants"
)

// MongoRepository is a thin generic document accessor keyed by _id.
type MongoRepository[T any] struct {
	mongo *mongo.Database
}

func NewMongoRepository[T any](mongo *mongo.Database) *MongoRepository[T] {
	return &MongoRepository[T]{mongo: mongo}
}

// FindByID decodes the document with the given _id. found is false when no
// document matches.
func (r *MongoRepository[T]) FindByID(ctx context.Context, collectionName string, id string) (entity T, found bool, err error) {
	collection := r.mongo.Collection(collectionName)
	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, false, nil
	}
	if err != nil {
		return entity, false, err
	}
	return entity, true, nil
}

func (r *MongoRepository[T]) Create(ctx context.Context, collectionName string, entity T) error {
	collection := r.mongo.Collection(collectionName)
	_, err := collection.InsertOne(ctx, entity)
	return err
}

// UpdateWhere applies $set with fields to the document matching filter and
// reports whether any document matched.
func (r *MongoRepository[T]) UpdateWhere(ctx context.Context, collectionName string, filter bson.M, fields bson.M) (bool, error) {
	collection := r.mongo.Collection(collectionName)
	result, err := collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Replace overwrites the document with the given _id, creating it if needed.
func (r *MongoRepository[T]) Replace(ctx context.Context, collectionName string, id string, entity T) error {
	collection := r.mongo.Collection(collectionName)
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, entity, options.Replace().SetUpsert(true))
	return err
}

type chatDocument struct {
	UserID    string          `bson:"_id"`
	Messages  []entities.Turn `bson:"messages"`
	Version   int64           `bson:"version"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

type companyInfoDocument struct {
	ID        string    `bson:"_id"`
	Details   string    `bson:"details"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore keeps one document per user in "chats" and the company profile
// as the "default" document of "companyInfo".
type MongoStore struct {
	client  *mongo.Client
	chats   *MongoRepository[chatDocument]
	company *MongoRepository[companyInfoDocument]
	now     func() time.Time
}

func NewMongoStore(client *mongo.Client, database *mongo.Database) *MongoStore {
	return &MongoStore{
		client:  client,
		chats:   NewMongoRepository[chatDocument](database),
		company: NewMongoRepository[companyInfoDocument](database),
		now:     time.Now,
	}
}

func (s *MongoStore) FindTranscript(ctx context.Context, userID string) (entities.Transcript, error) {
	doc, found, err := s.chats.FindByID(ctx, constants.CHATS_COLLECTION, userID)
	if err != nil {
		return entities.Transcript{}, err
	}
	if !found {
		return entities.NewTranscript(userID), nil
	}

	transcript := entities.NewTranscript(userID)
	transcript.Turns = append(transcript.Turns, doc.Messages...)
	transcript.Version = doc.Version
	return transcript, nil
}

// SaveTranscript inserts the first version and afterwards updates only when
// the stored version still matches.
func (s *MongoStore) SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	doc := chatDocument{
		UserID:    transcript.UserID,
		Messages:  transcript.Messages(),
		Version:   transcript.Version + 1,
		UpdatedAt: s.now(),
	}

	if transcript.Version == 0 {
		err := s.chats.Create(ctx, constants.CHATS_COLLECTION, doc)
		if mongo.IsDuplicateKeyError(err) {
			return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
		}
		if err != nil {
			return entities.Transcript{}, err
		}
	} else {
		filter := bson.M{"_id": transcript.UserID, "version": transcript.Version}
		fields := bson.M{"messages": doc.Messages, "version": doc.Version, "updatedAt": doc.UpdatedAt}
		matched, err := s.chats.UpdateWhere(ctx, constants.CHATS_COLLECTION, filter, fields)
		if err != nil {
			return entities.Transcript{}, err
		}
		if !matched {
			return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
		}
	}

	transcript.Turns = doc.Messages
	transcript.Version = doc.Version
	return transcript, nil
}

func (s *MongoStore) FindCompanyProfile(ctx context.Context) (entities.CompanyProfile, error) {
	doc, _, err := s.company.FindByID(ctx, constants.COMPANY_INFO_COLLECTION, entities.CompanyProfileID)
	if err != nil {
		return entities.CompanyProfile{}, err
	}
	return entities.CompanyProfile{Details: doc.Details}, nil
}

func (s *MongoStore) SaveCompanyProfile(ctx context.Context, profile entities.CompanyProfile) error {
	doc := companyInfoDocument{
		ID:        entities.CompanyProfileID,
		Details:   profile.Details,
		UpdatedAt: s.now(),
	}
	return s.company.Replace(ctx, constants.COMPANY_INFO_COLLECTION, entities.CompanyProfileID, doc)
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
