package mongodb

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/docid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type companyRepo struct {
	store  domain.DocumentStore
	hasher domain.PasswordHasher
}

func NewCompanyRepository(store domain.DocumentStore, hasher domain.PasswordHasher) domain.CompanyRepository {
	return &companyRepo{store: store, hasher: hasher}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) (primitive.ObjectID, error) {
	company.Email = NormalizeEmail(company.Email)

	existing, err := r.FindByEmail(ctx, company.Email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, apperror.Duplicate("Email already registered")
	}

	if company.Password == "" {
		return primitive.NilObjectID, apperror.FieldError("password", "Missing data for required field.")
	}
	hash, err := r.hasher.Hash(company.Password)
	if err != nil {
		return primitive.NilObjectID, apperror.Internal(err)
	}

	company.ID = primitive.NilObjectID
	company.Password = hash
	company.Jobs = emptyIfNil(company.Jobs)

	id, err := r.store.Insert(ctx, domain.CollectionCompanies, company)
	company.Password = ""
	return id, err
}

func (r *companyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	var company domain.Company
	found, err := r.store.FindByID(ctx, domain.CollectionCompanies, id, &company)
	if err != nil || !found {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var company domain.Company
	filter := bson.D{{Key: "email", Value: NormalizeEmail(email)}}
	found, err := r.store.FindOne(ctx, domain.CollectionCompanies, filter, &company, domain.FindOptions{})
	if err != nil || !found {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) FindAll(ctx context.Context, page domain.Page) ([]domain.Company, error) {
	var companies []domain.Company
	opts := domain.PageOptions(page, newestFirst)
	opts.Projection = withoutPassword
	if err := r.store.FindMany(ctx, domain.CollectionCompanies, bson.D{}, &companies, opts); err != nil {
		return nil, err
	}
	return emptyIfNil(companies), nil
}

func (r *companyRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, domain.CollectionCompanies, bson.D{})
}

// Update rejects an email already used by another company.
func (r *companyRepo) Update(ctx context.Context, id string, upd domain.CompanyUpdate) (int64, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return 0, err
	}

	if upd.Email != nil {
		email := NormalizeEmail(*upd.Email)
		upd.Email = &email

		existing, err := r.FindByEmail(ctx, email)
		if err != nil {
			return 0, err
		}
		if existing != nil && existing.ID != oid {
			return 0, apperror.Duplicate("Email already registered")
		}
	}
	return r.store.UpdateOne(ctx, domain.CollectionCompanies, oid, upd.SetDoc())
}

func (r *companyRepo) UpdatePassword(ctx context.Context, id, password string) (int64, error) {
	hash, err := r.hasher.Hash(password)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return r.store.UpdateOne(ctx, domain.CollectionCompanies, id, bson.D{{Key: "password", Value: hash}})
}

func (r *companyRepo) Authenticate(ctx context.Context, email, password string) (*domain.Company, error) {
	company, err := r.FindByEmail(ctx, email)
	if err != nil || company == nil || company.Password == "" {
		return nil, err
	}
	if !r.hasher.Verify(company.Password, password) {
		return nil, nil
	}
	company.Password = ""
	return company, nil
}

// AddJob appends jobID to the company's job references; re-adding is a no-op
// reported as false.
func (r *companyRepo) AddJob(ctx context.Context, companyID, jobID string) (bool, error) {
	jid, err := docid.Parse(jobID)
	if err != nil {
		return false, err
	}
	return r.store.AppendUnique(ctx, domain.CollectionCompanies, companyID, "jobs", jid)
}

func (r *companyRepo) RemoveJob(ctx context.Context, companyID, jobID string) (bool, error) {
	jid, err := docid.Parse(jobID)
	if err != nil {
		return false, err
	}
	n, err := r.store.Pull(ctx, domain.CollectionCompanies, companyID, "jobs", jid)
	return n > 0, err
}
