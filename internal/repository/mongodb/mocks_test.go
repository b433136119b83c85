package mongodb_test

import (
	"context"
	"strings"

	"go-jobsearch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error) {
	args := m.Called(ctx, coll, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockStore) InsertMany(ctx context.Context, coll string, docs []any) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, coll, docs)
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockStore) FindOne(ctx context.Context, coll string, filter any, out any, opts domain.FindOptions) (bool, error) {
	args := m.Called(ctx, coll, filter, out, opts)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) FindByID(ctx context.Context, coll string, id any, out any) (bool, error) {
	args := m.Called(ctx, coll, id, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) FindMany(ctx context.Context, coll string, filter any, out any, opts domain.FindOptions) error {
	return m.Called(ctx, coll, filter, out, opts).Error(0)
}

func (m *MockStore) UpdateOne(ctx context.Context, coll string, id any, set bson.D) (int64, error) {
	args := m.Called(ctx, coll, id, set)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) UpdateMany(ctx context.Context, coll string, filter any, set bson.D) (int64, error) {
	args := m.Called(ctx, coll, filter, set)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) DeleteOne(ctx context.Context, coll string, id any) (int64, error) {
	args := m.Called(ctx, coll, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) DeleteMany(ctx context.Context, coll string, filter any) (int64, error) {
	args := m.Called(ctx, coll, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, coll string, filter any) (int64, error) {
	args := m.Called(ctx, coll, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) EnsureExists(ctx context.Context, coll string, id any, out any) error {
	return m.Called(ctx, coll, id, out).Error(0)
}

func (m *MockStore) Push(ctx context.Context, coll string, id any, field string, value any) error {
	return m.Called(ctx, coll, id, field, value).Error(0)
}

func (m *MockStore) AppendUnique(ctx context.Context, coll string, id any, field string, value primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, coll, id, field, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Pull(ctx context.Context, coll string, id any, field string, value primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, coll, id, field, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateIndex(ctx context.Context, coll string, keys bson.D, unique bool) (string, error) {
	args := m.Called(ctx, coll, keys, unique)
	return args.String(0), args.Error(1)
}

// fakeHasher marks hashes with a prefix so tests can tell them apart.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(hash, password string) bool {
	return strings.HasPrefix(hash, "hashed:") && strings.TrimPrefix(hash, "hashed:") == password
}
