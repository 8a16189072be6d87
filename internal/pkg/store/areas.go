package store

import (
	"context"
	"fmt"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/db"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AreaRepository struct {
	repo *MongoRepository[models.Area]
}

func NewAreaRepository() *AreaRepository {
	collection := db.MDB.Database.Collection(consts.AreasCollection)
	mrepo := NewMongoRepository[models.Area](collection)
	return &AreaRepository{repo: mrepo}
}

func (r *AreaRepository) InsertArea(ctx context.Context, area models.Area) (bool, error) {

	_, err := r.repo.Create(area)

	if err != nil {
		logger.Error(ctx, "Areas : Error while inserting %v", err.Error())
		return false, fmt.Errorf("areas : error while inserting %v", err.Error())
	}

	return true, nil
}

func (r *AreaRepository) AreaByID(ctx context.Context, id primitive.ObjectID) (*models.Area, error) {

	area, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorAreaNotFound
		}
		logger.Error(ctx, "Areas : Error querying by id: %v", err)
		return nil, err
	}

	return &area, nil
}

func (r *AreaRepository) AllAreas(ctx context.Context) ([]models.Area, error) {

	areas, err := r.repo.FindAll(bson.M{})
	if err != nil {
		logger.Error(ctx, "Areas : Error listing areas: %v", err)
		return nil, err
	}

	return areas, nil
}

func (r *AreaRepository) UpdateArea(ctx context.Context, area models.Area) error {

	err := r.repo.Update(bson.M{"_id": area.ID}, area)
	if err != nil {
		logger.Error(ctx, "Areas : Error while updating %v", err.Error())
		return fmt.Errorf("areas : error while updating %v", err.Error())
	}

	return nil
}

func (r *AreaRepository) DeleteArea(ctx context.Context, id primitive.ObjectID) error {

	err := r.repo.Delete(bson.M{"_id": id})
	if err != nil {
		logger.Error(ctx, "Areas : Error while deleting %v", err.Error())
		return fmt.Errorf("areas : error while deleting %v", err.Error())
	}

	return nil
}
