package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"username", "email", "password", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{"bsonType": "objectId"},
			"username": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 50,
			},
			"email": bson.M{
				"bsonType":  "string",
				"maxLength": 254,
			},
			"password": bson.M{
				"bsonType":  "string",
				"minLength": 59,
			},
			"role": bson.M{
				"bsonType": "string",
				"enum":     []string{"customer", "admin"},
			},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
