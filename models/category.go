package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug     string             `bson:"slug" json:"slug"`
	Name     string             `bson:"name" json:"name"`
	Icon     string             `bson:"icon,omitempty" json:"icon,omitempty"`
	ParentID string             `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
}

// Group is a community that can host events, shown in the filter UI only.
type Group struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID     primitive.ObjectID   `bson:"owner_id" json:"owner_id"`
	MemberIDs   []primitive.ObjectID `bson:"member_ids,omitempty" json:"member_ids,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}
