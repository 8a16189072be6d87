package store

import (
	"context"
	"fmt"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/db"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Guard rows carry a TTL index on createdAt (see db.CreateDbTtlIfNotExists),
// so a posting that dies mid-run unblocks itself once the TTL lapses.
type BatchInProgressRepository struct {
	repo *MongoRepository[models.BatchInProgress]
}

func NewBatchInProgressRepository() *BatchInProgressRepository {
	collection := db.MDB.Database.Collection(consts.BatchInProgressCollection)
	mrepo := NewMongoRepository[models.BatchInProgress](collection)
	return &BatchInProgressRepository{repo: mrepo}
}

func (r *BatchInProgressRepository) IsBatchInProgress(ctx context.Context, batchKey string) (bool, error) {

	_, err := r.repo.Read(bson.M{"batchKey": batchKey})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		logger.Error(ctx, "BatchInProgress : Error querying the database for %s: %v", batchKey, err)
		return false, err
	}

	return true, nil
}

func (r *BatchInProgressRepository) CreateBatchInProgressEntry(ctx context.Context, entry models.BatchInProgress) (bool, error) {

	_, err := r.repo.Create(entry)

	if err != nil {
		logger.Error(ctx, "BatchInProgress : Error while inserting %v", err.Error())
		return false, fmt.Errorf("batchinprogress : error while inserting %v", err.Error())
	}

	return true, nil
}

func (r *BatchInProgressRepository) DeleteBatchInProgressByKey(ctx context.Context, batchKey string) (bool, error) {

	err := r.repo.Delete(bson.M{"batchKey": batchKey})

	if err != nil {
		logger.Error(ctx, "BatchInProgress : Error while deleting %v", err.Error())
		return false, fmt.Errorf("batchinprogress : error while deleting %v", err.Error())
	}

	return true, nil
}
