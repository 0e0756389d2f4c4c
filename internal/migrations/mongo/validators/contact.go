package validators

import "go.mongodb.org/mongo-driver/bson"

// Contact messages are stored as sent, so only the types are constrained.
var ContactValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "objectId"},
			"name":       bson.M{"bsonType": "string"},
			"email":      bson.M{"bsonType": "string"},
			"message":    bson.M{"bsonType": "string"},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
