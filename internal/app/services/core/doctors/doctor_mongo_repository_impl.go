package doctors

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (repo *DoctorMongoRepository) FindDoctors(ctx context.Context, filters models.DoctorFilters) ([]models.Doctor, error) {
	cursor, err := repo.Collection.Find(ctx, buildDoctorFilter(filters))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	for cursor.Next(ctx) {
		var doctor models.Doctor
		if err := cursor.Decode(&doctor); err != nil {
			return nil, exceptions.ErrMongoDBDecodeDocument(err)
		}
		doctors = append(doctors, doctor)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	filter := bson.M{"_id": doctorID, "role": constvars.RoleDoctor}
	err := repo.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// UpsertMany replaces each doctor by id, forcing the doctor role. It returns the
// number of documents inserted or modified.
func (repo *DoctorMongoRepository) UpsertMany(ctx context.Context, doctors []models.Doctor) (int, error) {
	if len(doctors) == 0 {
		return 0, nil
	}

	writes := make([]mongo.WriteModel, 0, len(doctors))
	for _, doctor := range doctors {
		doctor.Role = constvars.RoleDoctor
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doctor.ID}).
			SetReplacement(doctor).
			SetUpsert(true))
	}

	result, err := repo.Collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, exceptions.ErrMongoDBUpsertDocument(err)
	}
	return int(result.UpsertedCount + result.ModifiedCount), nil
}

// buildDoctorFilter pushes the structured filters down into the query.
func buildDoctorFilter(filters models.DoctorFilters) bson.M {
	filter := bson.M{"role": constvars.RoleDoctor}
	if filters.Insurance != "" {
		filter["acceptedInsurances"] = filters.Insurance
	}
	if filters.City != "" {
		filter["city"] = filters.City
	}
	if filters.Specialty != "" {
		filter["specialty"] = filters.Specialty
	}
	return filter
}
