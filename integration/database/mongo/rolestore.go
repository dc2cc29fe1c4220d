package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/apertura/authcore/core/authz"
)

const rolesCollection = "admin_roles"

// RoleStore persists admin role records in a MongoDB collection,
// implementing authz.Store. There is at most one record per user.
type RoleStore struct {
	coll *mongo.Collection
}

type roleDoc struct {
	UserID      string            `bson:"_id"`
	Role        string            `bson:"role"`
	Permissions authz.Permissions `bson:"permissions"`
	GrantedBy   *string           `bson:"granted_by,omitempty"`
	ExpiresAt   *time.Time        `bson:"expires_at,omitempty"`
	Active      bool              `bson:"active"`
	AllowedIPs  []string          `bson:"allowed_ips,omitempty"`
	CreatedAt   time.Time         `bson:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at"`
}

func toRoleDoc(r *authz.AdminRole) roleDoc {
	doc := roleDoc{
		UserID:      r.UserID.String(),
		Role:        string(r.Role),
		Permissions: r.Permissions,
		ExpiresAt:   r.ExpiresAt,
		Active:      r.Active,
		AllowedIPs:  r.AllowedIPs,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.GrantedBy != nil {
		grantedBy := r.GrantedBy.String()
		doc.GrantedBy = &grantedBy
	}
	return doc
}

func (d roleDoc) toRole() (*authz.AdminRole, error) {
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	role := &authz.AdminRole{
		UserID:      userID,
		Role:        authz.Role(d.Role),
		Permissions: d.Permissions,
		ExpiresAt:   d.ExpiresAt,
		Active:      d.Active,
		AllowedIPs:  d.AllowedIPs,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.GrantedBy != nil {
		grantedBy, err := uuid.Parse(*d.GrantedBy)
		if err != nil {
			return nil, err
		}
		role.GrantedBy = &grantedBy
	}
	return role, nil
}

// NewRoleStore returns a role store backed by the "admin_roles"
// collection of db.
func NewRoleStore(db *mongo.Database) *RoleStore {
	return &RoleStore{coll: db.Collection(rolesCollection)}
}

func (s *RoleStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*authz.AdminRole, error) {
	var doc roleDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": userID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, authz.ErrNotFound
		}
		return nil, err
	}
	return doc.toRole()
}

func (s *RoleStore) Save(ctx context.Context, role *authz.AdminRole) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": role.UserID.String()},
		toRoleDoc(role),
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *RoleStore) Delete(ctx context.Context, userID uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": userID.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return authz.ErrNotFound
	}
	return nil
}
