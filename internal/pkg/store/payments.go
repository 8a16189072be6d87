package store

import (
	"context"
	"fmt"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/db"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	repo *MongoRepository[models.Payment]
}

func NewPaymentRepository() *PaymentRepository {
	collection := db.MDB.Database.Collection(consts.PaymentsCollection)
	mrepo := NewMongoRepository[models.Payment](collection)
	return &PaymentRepository{repo: mrepo}
}

func (r *PaymentRepository) InsertPayment(ctx context.Context, payment models.Payment) (bool, error) {

	_, err := r.repo.Create(payment)

	if err != nil {
		logger.Error(ctx, "Payments : Error while inserting %v", err.Error())
		return false, fmt.Errorf("payments : error while inserting %v", err.Error())
	}

	return true, nil
}

// InsertPayments writes a batch in order. On failure it returns the ids that
// did make it in, so the caller can roll the partial write back.
func (r *PaymentRepository) InsertPayments(ctx context.Context, payments []models.Payment) ([]primitive.ObjectID, error) {

	documents := make([]interface{}, 0, len(payments))
	for _, payment := range payments {
		documents = append(documents, payment)
	}

	result, err := r.repo.CreateMany(documents)

	var insertedIDs []primitive.ObjectID
	if result != nil {
		for _, id := range result.InsertedIDs {
			if objectID, ok := id.(primitive.ObjectID); ok {
				insertedIDs = append(insertedIDs, objectID)
			}
		}
	}

	if err != nil {
		logger.Error(ctx, "Payments : Error while batch inserting %v", err.Error())
		return insertedIDs, fmt.Errorf("payments : error while batch inserting %v", err.Error())
	}

	return insertedIDs, nil
}

func (r *PaymentRepository) PaymentByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {

	payment, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorPaymentNotFound
		}
		logger.Error(ctx, "Payments : Error querying by id: %v", err)
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepository) PaymentsByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Payment, error) {

	payments, err := r.repo.FindAll(bson.M{"loanId": loanID})
	if err != nil {
		logger.Error(ctx, "Payments : Error listing payments for loan %s: %v", loanID.Hex(), err)
		return nil, err
	}

	return payments, nil
}

// paymentWindowFilter matches payments dated in [from, to). Payment dates are
// normalized to UTC midnight, so a payment dated exactly on to belongs to the
// next window.
func paymentWindowFilter(from, to time.Time) bson.M {
	return bson.M{"date": bson.M{"$gte": from, "$lt": to}}
}

func (r *PaymentRepository) PaymentsInWindow(ctx context.Context, from, to time.Time) ([]models.Payment, error) {

	filter := paymentWindowFilter(from, to)

	payments, err := r.repo.FindAll(filter)
	if err != nil {
		logger.Error(ctx, "Payments : Error listing payments in window: %v", err)
		return nil, err
	}

	return payments, nil
}

func (r *PaymentRepository) PaymentsByDate(ctx context.Context, date time.Time, areaID *primitive.ObjectID) ([]models.Payment, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{"date": bson.M{"$gte": dayStart, "$lt": dayEnd}}
	if areaID != nil {
		filter["areaId"] = *areaID
	}

	payments, err := r.repo.FindAll(filter)
	if err != nil {
		logger.Error(ctx, "Payments : Error listing payments for date: %v", err)
		return nil, err
	}

	return payments, nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, id primitive.ObjectID) error {

	err := r.repo.Delete(bson.M{"_id": id})
	if err != nil {
		logger.Error(ctx, "Payments : Error while deleting %v", err.Error())
		return fmt.Errorf("payments : error while deleting %v", err.Error())
	}

	return nil
}

func (r *PaymentRepository) DeletePaymentsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {

	deleted, err := r.repo.DeleteMany(bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error(ctx, "Payments : Error while deleting batch %v", err.Error())
		return deleted, fmt.Errorf("payments : error while deleting batch %v", err.Error())
	}

	return deleted, nil
}

// DeletePaymentsByLoanID cascades a loan delete to its payments.
func (r *PaymentRepository) DeletePaymentsByLoanID(ctx context.Context, loanID primitive.ObjectID) (int64, error) {

	deleted, err := r.repo.DeleteMany(bson.M{"loanId": loanID})
	if err != nil {
		logger.Error(ctx, "Payments : Error cascading delete for loan %s: %v", loanID.Hex(), err)
		return deleted, fmt.Errorf("payments : error cascading delete %v", err.Error())
	}

	return deleted, nil
}

// UnpublishedPayments lists payments whose ledger event never reached Kafka,
// capped at limit per retry run.
func (r *PaymentRepository) UnpublishedPayments(ctx context.Context, limit int32) ([]models.Payment, error) {

	pipeline := []bson.M{
		{"$match": bson.M{"publishedToKafka": false}},
		{"$sort": bson.M{"createdAt": 1}},
		{"$limit": limit},
	}

	var payments []models.Payment
	if err := r.repo.AggregateAll(pipeline, &payments); err != nil {
		logger.Error(ctx, "Payments : Error listing unpublished payments: %v", err)
		return nil, err
	}

	return payments, nil
}

func (r *PaymentRepository) MarkPublishedToKafka(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {

	_, err := r.repo.UpdateMany(bson.M{"_id": bson.M{"$in": ids}}, bson.M{"publishedToKafka": true})
	if err != nil {
		logger.Error(ctx, "Payments : Error marking payments published: %v", err)
		return nil, err
	}

	return ids, nil
}
