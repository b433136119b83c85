package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/repository/mongodb"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	containerOnce sync.Once
	container     *tcmongo.MongoDBContainer
	client        *mongo.Client
	containerErr  error
)

func TestMain(m *testing.M) {
	code := m.Run()

	if container != nil {
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = client.Disconnect(shutdown)
		if err := container.Terminate(shutdown); err != nil {
			fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
		}
		cancel()
	}
	os.Exit(code)
}

// testGateway returns a gateway over a fresh database in a shared throwaway
// MongoDB container, skipping when no container runtime is available.
func testGateway(t *testing.T) *mongodb.Gateway {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		startCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, containerErr = tcmongo.Run(startCtx, "mongo:7")
		if containerErr != nil {
			return
		}
		uri, err := container.ConnectionString(startCtx)
		if err != nil {
			containerErr = err
			return
		}
		client, containerErr = mongo.Connect(startCtx, options.Client().ApplyURI(uri))
	})
	if containerErr != nil {
		t.Skipf("mongo container unavailable: %v", containerErr)
	}

	db := client.Database(fmt.Sprintf("test_%s", primitive.NewObjectID().Hex()))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	gw := mongodb.NewGateway(db, logger.Discard(), 3)
	require.NoError(t, mongodb.EnsureIndexes(ctx, gw))
	return gw
}

func TestGatewayCRUD(t *testing.T) {
	gw := testGateway(t)

	doc := bson.M{"name": "acme"}
	id, err := gw.Insert(ctx, "things", doc)
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Contains(t, doc, "created_at")

	var got bson.M
	found, err := gw.FindByID(ctx, "things", id.Hex(), &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "acme", got["name"])
	created := got["created_at"].(primitive.DateTime)

	found, err = gw.FindByID(ctx, "things", primitive.NewObjectID(), &got)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = gw.FindByID(ctx, "things", "xyz", &got)
	assert.True(t, apperror.Is(err, apperror.KindInvalidIdentifier))

	n, err := gw.UpdateOne(ctx, "things", id, bson.D{{Key: "city", Value: "Oslo"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var updated bson.M
	require.NoError(t, gw.EnsureExists(ctx, "things", id, &updated))
	assert.Equal(t, "acme", updated["name"], "partial update keeps other fields")
	assert.Equal(t, "Oslo", updated["city"])
	assert.Equal(t, created, updated["created_at"])

	n, err = gw.UpdateOne(ctx, "things", id, bson.D{{Key: "city", Value: "Oslo"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "a matched write counts even when nothing changes")

	n, err = gw.UpdateOne(ctx, "things", primitive.NewObjectID(), bson.D{{Key: "city", Value: "Rome"}})
	require.NoError(t, err)
	assert.Zero(t, n)

	err = gw.EnsureExists(ctx, "things", primitive.NewObjectID(), &updated)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	n, err = gw.DeleteOne(ctx, "things", id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGatewayFindManyCapsLimit(t *testing.T) {
	gw := testGateway(t)

	docs := []any{}
	for i := 0; i < 5; i++ {
		docs = append(docs, bson.M{"n": i})
	}
	ids, err := gw.InsertMany(ctx, "things", docs)
	require.NoError(t, err)
	assert.Len(t, ids, 5)

	var capped []bson.M
	require.NoError(t, gw.FindMany(ctx, "things", nil, &capped, domain.FindOptions{Limit: 50}))
	assert.Len(t, capped, 3)

	var all []bson.M
	sort := []domain.SortField{{Field: "n", Direction: domain.Descending}}
	require.NoError(t, gw.FindMany(ctx, "things", bson.D{}, &all, domain.FindOptions{Sort: sort}))
	require.Len(t, all, 5)
	assert.EqualValues(t, 4, all[0]["n"])

	var none []bson.M
	require.NoError(t, gw.FindMany(ctx, "things", bson.D{{Key: "n", Value: 99}}, &none, domain.FindOptions{}))
	assert.Empty(t, none)

	count, err := gw.Count(ctx, "things", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestGatewayAppendUnique(t *testing.T) {
	gw := testGateway(t)
	repo := mongodb.NewCompanyRepository(gw, fakeHasher{})

	company := &domain.Company{Name: "Acme", Email: "hr@acme.com", Password: "secret1"}
	companyID, err := repo.Create(ctx, company)
	require.NoError(t, err)
	jobID := primitive.NewObjectID()

	added, err := repo.AddJob(ctx, companyID.Hex(), jobID.Hex())
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddJob(ctx, companyID.Hex(), jobID.Hex())
	require.NoError(t, err)
	assert.False(t, added)

	stored, err := repo.FindByID(ctx, companyID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{jobID}, stored.Jobs)

	_, err = repo.AddJob(ctx, primitive.NewObjectID().Hex(), jobID.Hex())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	removed, err := repo.RemoveJob(ctx, companyID.Hex(), jobID.Hex())
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestRepositoriesAgainstMongo(t *testing.T) {
	gw := testGateway(t)
	users := mongodb.NewUserRepository(gw, fakeHasher{})
	jobs := mongodb.NewJobRepository(gw)
	apps := mongodb.NewApplicationRepository(gw)

	userID, err := users.Create(ctx, &domain.User{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{FirstName: "A", LastName: "B", Email: " A@X.COM ", Password: "secret1"})
	assert.True(t, apperror.Is(err, apperror.KindDuplicate))

	u, err := users.Authenticate(ctx, "a@x.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = users.Authenticate(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, userID, u.ID)
	assert.Empty(t, u.Password)

	expID, err := users.AddExperience(ctx, userID.Hex(), domain.Experience{Title: "Engineer", Company: "Acme", StartDate: time.Now().UTC()})
	require.NoError(t, err)
	u, err = users.FindByID(ctx, userID.Hex())
	require.NoError(t, err)
	require.Len(t, u.Experience, 1)
	assert.Equal(t, expID, u.Experience[0].ID)

	companyID := primitive.NewObjectID()
	low := &domain.Job{Title: "Go developer", Description: "Backend", Location: "Berlin", CompanyID: companyID,
		Requirements: []string{"Go"}, Salary: &domain.Salary{Min: 40000, Max: 60000, Currency: "EUR"}}
	high := &domain.Job{Title: "Rust developer", Description: "Systems, some golang", Location: "Remote", CompanyID: companyID,
		Type: domain.JobTypeContract, Requirements: []string{"Rust"}, Salary: &domain.Salary{Min: 70000, Max: 90000, Currency: "EUR"}}
	other := &domain.Job{Title: "Designer", Description: "UI", Location: "berlin", CompanyID: primitive.NewObjectID(), Requirements: []string{"Figma"}}
	for _, j := range []*domain.Job{low, high, other} {
		_, err := jobs.Create(ctx, j)
		require.NoError(t, err)
	}

	minSalary := int64(50000)
	maxSalary := int64(80000)
	cases := []domain.JobFilters{
		{},
		{Keyword: "GO"},
		{Location: "BERLIN"},
		{Type: domain.JobTypeContract},
		{CompanyID: &companyID},
		{MinSalary: &minSalary},
		{MaxSalary: &maxSalary},
		{Keyword: "developer", Location: "berlin"},
	}
	for _, f := range cases {
		found, err := jobs.Search(ctx, f, domain.Unbounded)
		require.NoError(t, err)
		count, err := jobs.Count(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(len(found)), count, "filters %+v", f)
	}

	byKeyword, err := jobs.Search(ctx, domain.JobFilters{Keyword: "GO"}, domain.Unbounded)
	require.NoError(t, err)
	assert.Len(t, byKeyword, 2)

	appID, err := apps.Create(ctx, &domain.Application{UserID: userID, JobID: low.ID})
	require.NoError(t, err)
	_, err = apps.Create(ctx, &domain.Application{UserID: userID, JobID: low.ID})
	assert.True(t, apperror.Is(err, apperror.KindDuplicate))

	n, err := apps.CountByJob(ctx, low.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	added, err := jobs.AddApplication(ctx, low.ID.Hex(), appID.Hex())
	require.NoError(t, err)
	assert.True(t, added)

	ok, err := apps.UpdateStatus(ctx, appID.Hex(), domain.ApplicationStatusInterview)
	require.NoError(t, err)
	assert.True(t, ok)

	interviewing, err := apps.FindByStatus(ctx, domain.ApplicationStatusInterview, domain.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, interviewing, 1)
	assert.Equal(t, appID, interviewing[0].ID)
}

func TestUniqueIndexRejectsDirectDuplicate(t *testing.T) {
	gw := testGateway(t)

	_, err := gw.Insert(ctx, domain.CollectionUsers, bson.M{"email": "dup@x.com"})
	require.NoError(t, err)
	_, err = gw.Insert(ctx, domain.CollectionUsers, bson.M{"email": "dup@x.com"})
	assert.True(t, apperror.Is(err, apperror.KindDuplicate))
}
