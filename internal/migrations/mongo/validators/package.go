package validators

import "go.mongodb.org/mongo-driver/bson"

var PackageValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"title", "location", "price"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"title":       bson.M{"bsonType": "string", "minLength": 1},
			"description": bson.M{"bsonType": "string"},
			"location":    bson.M{"bsonType": "string", "minLength": 1},
			"price": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},
			"image_url": bson.M{"bsonType": "string"},
			"duration":  bson.M{"bsonType": "string"},
		},
	},
}
