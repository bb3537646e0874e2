package availability

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailability),
	}
}

func (repo *AvailabilityMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) (models.AvailabilityCalendar, bool, error) {
	var raw bson.M
	err := repo.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&raw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrMongoDBFindDocument(err)
	}

	calendar, err := decodeCalendar(raw)
	if err != nil {
		return nil, false, exceptions.ErrMalformedAvailabilityDocument(err, doctorID)
	}
	return calendar, true, nil
}

func (repo *AvailabilityMongoRepository) Upsert(ctx context.Context, doctorID string, calendar models.AvailabilityCalendar) error {
	document := encodeCalendar(doctorID, calendar)
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": doctorID}, document, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

// decodeCalendar turns an availability document into a calendar. Every key but
// _id is a date and must hold an array of strings.
func decodeCalendar(raw bson.M) (models.AvailabilityCalendar, error) {
	calendar := make(models.AvailabilityCalendar, len(raw))
	for key, value := range raw {
		if key == "_id" {
			continue
		}

		entries, ok := value.(primitive.A)
		if !ok {
			return nil, fmt.Errorf("date %s holds %T, want array", key, value)
		}

		times := make([]string, len(entries))
		for i, entry := range entries {
			timeValue, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("date %s entry %d holds %T, want string", key, i, entry)
			}
			times[i] = timeValue
		}
		calendar[key] = times
	}
	return calendar, nil
}

func encodeCalendar(doctorID string, calendar models.AvailabilityCalendar) bson.D {
	document := bson.D{{Key: "_id", Value: doctorID}}
	for _, dateKey := range sortedDateKeys(calendar) {
		times := calendar[dateKey]
		if times == nil {
			times = []string{}
		}
		document = append(document, bson.E{Key: dateKey, Value: times})
	}
	return document
}
