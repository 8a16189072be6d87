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

type LoanRepository struct {
	repo *MongoRepository[models.Loan]
}

func NewLoanRepository() *LoanRepository {
	collection := db.MDB.Database.Collection(consts.LoansCollection)
	mrepo := NewMongoRepository[models.Loan](collection)
	return &LoanRepository{repo: mrepo}
}

func (r *LoanRepository) InsertLoan(ctx context.Context, loan models.Loan) (bool, error) {

	_, err := r.repo.Create(loan)

	if err != nil {
		logger.Error(ctx, "Loans : Error while inserting %v", err.Error())
		return false, fmt.Errorf("loans : error while inserting %v", err.Error())
	}

	return true, nil
}

func (r *LoanRepository) LoanBySerialNumber(ctx context.Context, serialNumber string) (*models.Loan, error) {

	loan, err := r.repo.Read(bson.M{"serialNumber": serialNumber})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorLoanNotFound
		}
		logger.Error(ctx, "Loans : Error querying by serial number: %v", err)
		return nil, err
	}

	return &loan, nil
}

func (r *LoanRepository) LoanByID(ctx context.Context, id primitive.ObjectID) (*models.Loan, error) {

	loan, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorLoanNotFound
		}
		logger.Error(ctx, "Loans : Error querying by id: %v", err)
		return nil, err
	}

	return &loan, nil
}

func (r *LoanRepository) AllLoans(ctx context.Context) ([]models.Loan, error) {

	loans, err := r.repo.FindAll(bson.M{})
	if err != nil {
		logger.Error(ctx, "Loans : Error listing loans: %v", err)
		return nil, err
	}

	return loans, nil
}

func (r *LoanRepository) LoansByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Loan, error) {

	loans, err := r.repo.FindAll(bson.M{"areaId": areaID})
	if err != nil {
		logger.Error(ctx, "Loans : Error listing loans for area %s: %v", areaID.Hex(), err)
		return nil, err
	}

	return loans, nil
}

// OverdueLoans returns unsettled loans whose deadline has passed, the
// candidate set for a penalty accrual sweep.
func (r *LoanRepository) OverdueLoans(ctx context.Context, now time.Time) ([]models.Loan, error) {

	filter := bson.M{
		"isFullyPaid":  false,
		"deadlineDate": bson.M{"$lt": now},
	}

	loans, err := r.repo.FindAll(filter)
	if err != nil {
		logger.Error(ctx, "Loans : Error listing overdue loans: %v", err)
		return nil, err
	}

	return loans, nil
}

func (r *LoanRepository) UpdateLoan(ctx context.Context, loan models.Loan) error {

	err := r.repo.Update(bson.M{"_id": loan.ID}, loan)
	if err != nil {
		logger.Error(ctx, "Loans : Error while updating %s: %v", loan.SerialNumber, err.Error())
		return fmt.Errorf("loans : error while updating %v", err.Error())
	}

	return nil
}

func (r *LoanRepository) DeleteLoan(ctx context.Context, id primitive.ObjectID) error {

	err := r.repo.Delete(bson.M{"_id": id})
	if err != nil {
		logger.Error(ctx, "Loans : Error while deleting %v", err.Error())
		return fmt.Errorf("loans : error while deleting %v", err.Error())
	}

	return nil
}
