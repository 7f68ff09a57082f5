package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/simplesdental/product-api/internal/core/domain"
)

const auditCollection = "audit_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Entity     string `bson:"entity"`
	EntityID   string `bson:"entity_id"`
	Action     string `bson:"action"`
	ActorEmail string `bson:"actor_email"`
	Timestamp  int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		Action:     event.Action,
		ActorEmail: event.ActorEmail,
		Timestamp:  event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
