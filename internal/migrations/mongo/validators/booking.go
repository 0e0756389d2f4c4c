package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"package_id",
			"travel_date",
			"travelers",
			"total_cost",
			"payment_method",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"user_id": bson.M{
				"bsonType": "objectId",
			},

			"package_id": bson.M{
				"bsonType": "objectId",
			},

			"travel_date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"travelers": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"total_cost": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"payment_method": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 40,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum":     []string{"confirmed"},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
