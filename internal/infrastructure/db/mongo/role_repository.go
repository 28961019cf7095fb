package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
)

const rolesCollection = "roles"

// MongoRoleRepository reads the seeded role reference data.
type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRole struct {
	ID          int    `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
}

// Seed upserts the two fixed roles. Idempotent; call once at startup.
func (r *MongoRoleRepository) Seed(ctx context.Context) error {
	seed := []mongoRole{
		{
			ID:          domain.RoleIDBuyer,
			Name:        domain.RoleBuyer,
			Description: "User who can purchase products from the vending machine",
		},
		{
			ID:          domain.RoleIDSeller,
			Name:        domain.RoleSeller,
			Description: "User who can manage products and view sales data",
		},
	}

	for _, role := range seed {
		_, err := r.coll.UpdateByID(ctx, role.ID,
			bson.M{"$set": bson.M{"name": role.Name, "description": role.Description}},
			options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed role %q: %w", role.Name, err)
		}
	}
	return nil
}

func (r *MongoRoleRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count roles: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRoleRepository) FindByID(ctx context.Context, id int) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: mr.ID, Name: mr.Name, Description: mr.Description}, nil
}
