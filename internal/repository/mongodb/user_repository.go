package mongodb

import (
	"context"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepo struct {
	store  domain.DocumentStore
	hasher domain.PasswordHasher
	now    func() time.Time
}

func NewUserRepository(store domain.DocumentStore, hasher domain.PasswordHasher) domain.UserRepository {
	return &userRepo{store: store, hasher: hasher, now: func() time.Time { return time.Now().UTC() }}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.Email = NormalizeEmail(user.Email)

	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, apperror.Duplicate("Email already registered")
	}

	if user.Password == "" {
		return primitive.NilObjectID, apperror.FieldError("password", "Missing data for required field.")
	}
	hash, err := r.hasher.Hash(user.Password)
	if err != nil {
		return primitive.NilObjectID, apperror.Internal(err)
	}

	user.ID = primitive.NilObjectID
	user.Password = hash
	user.Skills = emptyIfNil(user.Skills)
	user.Experience = emptyIfNil(user.Experience)
	user.Education = emptyIfNil(user.Education)

	id, err := r.store.Insert(ctx, domain.CollectionUsers, user)
	user.Password = ""
	return id, err
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	found, err := r.store.FindByID(ctx, domain.CollectionUsers, id, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	filter := bson.D{{Key: "email", Value: NormalizeEmail(email)}}
	found, err := r.store.FindOne(ctx, domain.CollectionUsers, filter, &user, domain.FindOptions{})
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (int64, error) {
	return r.store.UpdateOne(ctx, domain.CollectionUsers, id, upd.SetDoc())
}

func (r *userRepo) UpdatePassword(ctx context.Context, id, password string) (int64, error) {
	hash, err := r.hasher.Hash(password)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return r.store.UpdateOne(ctx, domain.CollectionUsers, id, bson.D{{Key: "password", Value: hash}})
}

// Authenticate returns nil, nil for an unknown email, a record without a
// password or a wrong password alike.
func (r *userRepo) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil || user == nil || user.Password == "" {
		return nil, err
	}
	if !r.hasher.Verify(user.Password, password) {
		return nil, nil
	}
	user.Password = ""
	return user, nil
}

func (r *userRepo) AddExperience(ctx context.Context, userID string, exp domain.Experience) (string, error) {
	exp.ID = primitive.NewObjectID().Hex()
	exp.Stamp(r.now())
	if err := r.store.Push(ctx, domain.CollectionUsers, userID, "experience", exp); err != nil {
		return "", err
	}
	return exp.ID, nil
}

func (r *userRepo) AddEducation(ctx context.Context, userID string, edu domain.Education) (string, error) {
	edu.ID = primitive.NewObjectID().Hex()
	edu.Stamp(r.now())
	if err := r.store.Push(ctx, domain.CollectionUsers, userID, "education", edu); err != nil {
		return "", err
	}
	return edu.ID, nil
}
