package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// User is the profile document kept in the "users" collection. The document id
// is the identity provider's uid (Google "sub") for federated sign-ins, or a
// generated hex id for email/password accounts.
type User struct {
	Uid       string    `bson:"_id" json:"uid"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Username  string    `bson:"username" json:"username" validate:"required"`
	Password  string    `bson:"password,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ProfileUpdate is the $set document for a dashboard profile edit. Only the
// username is editable from the dashboard; email identifies the account for
// sign-in and must never be rewritten here, and uid/createdAt are immutable.
func ProfileUpdate(username string) bson.M {
	return bson.M{"username": username}
}
