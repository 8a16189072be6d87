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

type AreaCostRepository struct {
	repo *MongoRepository[models.AreaCost]
}

func NewAreaCostRepository() *AreaCostRepository {
	collection := db.MDB.Database.Collection(consts.AreaCostsCollection)
	mrepo := NewMongoRepository[models.AreaCost](collection)
	return &AreaCostRepository{repo: mrepo}
}

// CostByAreaMonth returns nil without error when no document exists yet; the
// service treats a missing month as an empty cost sheet.
func (r *AreaCostRepository) CostByAreaMonth(ctx context.Context, areaID primitive.ObjectID, month string) (*models.AreaCost, error) {

	cost, err := r.repo.Read(bson.M{"areaId": areaID, "month": month})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error(ctx, "AreaCosts : Error querying %s %s: %v", areaID.Hex(), month, err)
		return nil, err
	}

	return &cost, nil
}

func (r *AreaCostRepository) UpsertCost(ctx context.Context, cost models.AreaCost) error {

	filter := bson.M{"areaId": cost.AreaID, "month": cost.Month}
	update := bson.M{
		"$set": bson.M{
			"agents":           cost.Agents,
			"expenses":         cost.Expenses,
			"interestEarnings": cost.InterestEarnings,
			"updatedAt":        cost.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       cost.ID,
			"areaId":    cost.AreaID,
			"month":     cost.Month,
			"createdAt": cost.CreatedAt,
		},
	}

	err := r.repo.Upsert(filter, update)
	if err != nil {
		logger.Error(ctx, "AreaCosts : Error while upserting %v", err.Error())
		return fmt.Errorf("areacosts : error while upserting %v", err.Error())
	}

	return nil
}
