package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/apertura/authcore/core/session"
)

const sessionsCollection = "sessions"

// SessionStore persists session records in a MongoDB collection,
// implementing session.Store.
type SessionStore struct {
	coll *mongo.Collection
}

// sessionDoc is the storage representation of a session. UUIDs are
// stored as their canonical string form.
type sessionDoc struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"user_id"`
	Token        string    `bson:"token"`
	Fingerprint  string    `bson:"fingerprint"`
	IP           string    `bson:"ip_address"`
	UserAgent    string    `bson:"user_agent"`
	ExpiresAt    time.Time `bson:"expires_at"`
	CreatedAt    time.Time `bson:"created_at"`
	LastActiveAt time.Time `bson:"last_active_at"`
}

func toSessionDoc(s *session.Session) sessionDoc {
	return sessionDoc{
		ID:           s.ID.String(),
		UserID:       s.UserID.String(),
		Token:        s.Token,
		Fingerprint:  s.Fingerprint,
		IP:           s.IP,
		UserAgent:    s.UserAgent,
		ExpiresAt:    s.ExpiresAt,
		CreatedAt:    s.CreatedAt,
		LastActiveAt: s.LastActiveAt,
	}
}

func (d sessionDoc) toSession() (*session.Session, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	return &session.Session{
		ID:           id,
		UserID:       userID,
		Token:        d.Token,
		Fingerprint:  d.Fingerprint,
		IP:           d.IP,
		UserAgent:    d.UserAgent,
		ExpiresAt:    d.ExpiresAt,
		CreatedAt:    d.CreatedAt,
		LastActiveAt: d.LastActiveAt,
	}, nil
}

// NewSessionStore returns a session store backed by the "sessions"
// collection of db.
func NewSessionStore(db *mongo.Database) *SessionStore {
	return &SessionStore{coll: db.Collection(sessionsCollection)}
}

// EnsureIndexes creates the indexes the store relies on: a unique index
// on the refresh token and a TTL index that evicts documents once
// expires_at passes. Safe to call repeatedly.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "fingerprint", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}

func (s *SessionStore) Create(ctx context.Context, sess *session.Session) error {
	if _, err := s.coll.InsertOne(ctx, toSessionDoc(sess)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return session.ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (s *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

func (s *SessionStore) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	return s.findOne(ctx, bson.M{"token": token})
}

func (s *SessionStore) FindActive(ctx context.Context, userID uuid.UUID, fp string) (*session.Session, error) {
	return s.findOne(ctx, bson.M{
		"user_id":     userID.String(),
		"fingerprint": fp,
		"expires_at":  bson.M{"$gt": time.Now()},
	})
}

func (s *SessionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	filter := bson.M{
		"user_id":    userID.String(),
		"expires_at": bson.M{"$gt": time.Now()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []sessionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	sessions := make([]session.Session, 0, len(docs))
	for _, doc := range docs {
		sess, err := doc.toSession()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, nil
}

func (s *SessionStore) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"last_active_at": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteOne(ctx, bson.M{"_id": id.String()})
}

func (s *SessionStore) DeleteByToken(ctx context.Context, token string) error {
	return s.deleteOne(ctx, bson.M{"token": token})
}

func (s *SessionStore) DeleteOthers(ctx context.Context, userID uuid.UUID, currentToken string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{
		"user_id":    userID.String(),
		"token":      bson.M{"$ne": currentToken},
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lte": time.Now()},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *SessionStore) findOne(ctx context.Context, filter bson.M) (*session.Session, error) {
	var doc sessionDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return doc.toSession()
}

func (s *SessionStore) deleteOne(ctx context.Context, filter bson.M) error {
	res, err := s.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return session.ErrNotFound
	}
	return nil
}
