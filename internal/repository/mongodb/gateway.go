package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/docid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	fieldID        = "_id"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"

	// DefaultMaxLimit caps caller-supplied page sizes.
	DefaultMaxLimit = 100
)

// Gateway implements domain.DocumentStore over a MongoDB database. Every
// driver failure leaves it as an apperror: duplicate keys become
// DuplicateEntity and everything else StoreError.
type Gateway struct {
	db       *mongo.Database
	logger   *slog.Logger
	maxLimit int64
	now      func() time.Time
}

func NewGateway(db *mongo.Database, logger *slog.Logger, maxLimit int) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Gateway{
		db:       db,
		logger:   logger,
		maxLimit: int64(maxLimit),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var _ domain.DocumentStore = (*Gateway)(nil)

func (g *Gateway) Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error) {
	doc = g.stamp(doc)

	res, err := g.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, g.translate("insert", coll, err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	if identified, ok := doc.(domain.Identified); ok {
		identified.SetID(id)
	}
	g.logger.DebugContext(ctx, "document inserted", "collection", coll, "id", id.Hex())
	return id, nil
}

func (g *Gateway) InsertMany(ctx context.Context, coll string, docs []any) ([]primitive.ObjectID, error) {
	if len(docs) == 0 {
		return []primitive.ObjectID{}, nil
	}
	for i := range docs {
		docs[i] = g.stamp(docs[i])
	}

	res, err := g.db.Collection(coll).InsertMany(ctx, docs)
	if err != nil {
		return nil, g.translate("insert_many", coll, err)
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for i, raw := range res.InsertedIDs {
		id, _ := raw.(primitive.ObjectID)
		if identified, ok := docs[i].(domain.Identified); ok {
			identified.SetID(id)
		}
		ids = append(ids, id)
	}
	g.logger.DebugContext(ctx, "documents inserted", "collection", coll, "count", len(ids))
	return ids, nil
}

// FindOne decodes the first match into out. Absence is (false, nil).
func (g *Gateway) FindOne(ctx context.Context, coll string, filter any, out any, opts domain.FindOptions) (bool, error) {
	findOpts := options.FindOne()
	if len(opts.Sort) > 0 {
		findOpts.SetSort(sortDoc(opts.Sort))
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}

	err := g.db.Collection(coll).FindOne(ctx, orEmpty(filter), findOpts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, g.translate("find_one", coll, err)
	}
	return true, nil
}

// FindByID validates id first; a malformed id is an error, not absence.
func (g *Gateway) FindByID(ctx context.Context, coll string, id any, out any) (bool, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return false, err
	}
	return g.FindOne(ctx, coll, byID(oid), out, domain.FindOptions{})
}

// FindMany decodes every match into out, a pointer to a slice. A zero
// Limit is unbounded; larger limits are capped at the gateway maximum.
func (g *Gateway) FindMany(ctx context.Context, coll string, filter any, out any, opts domain.FindOptions) error {
	findOpts := options.Find()
	if len(opts.Sort) > 0 {
		findOpts.SetSort(sortDoc(opts.Sort))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(min(opts.Limit, g.maxLimit))
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}

	cursor, err := g.db.Collection(coll).Find(ctx, orEmpty(filter), findOpts)
	if err != nil {
		return g.translate("find_many", coll, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return g.translate("find_many", coll, err)
	}
	return nil
}

// UpdateOne merges set into the document and always moves updated_at.
// It returns the matched count, so an unmatched but valid id returns 0
// and a write that changes nothing still returns 1.
func (g *Gateway) UpdateOne(ctx context.Context, coll string, id any, set bson.D) (int64, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return 0, err
	}

	res, err := g.db.Collection(coll).UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: g.withUpdatedAt(set)}})
	if err != nil {
		return 0, g.translate("update_one", coll, err)
	}
	g.logger.DebugContext(ctx, "document updated", "collection", coll, "id", oid.Hex(), "matched", res.MatchedCount, "modified", res.ModifiedCount)
	return res.MatchedCount, nil
}

func (g *Gateway) UpdateMany(ctx context.Context, coll string, filter any, set bson.D) (int64, error) {
	res, err := g.db.Collection(coll).UpdateMany(ctx, orEmpty(filter), bson.D{{Key: "$set", Value: g.withUpdatedAt(set)}})
	if err != nil {
		return 0, g.translate("update_many", coll, err)
	}
	g.logger.DebugContext(ctx, "documents updated", "collection", coll, "modified", res.ModifiedCount)
	return res.ModifiedCount, nil
}

func (g *Gateway) DeleteOne(ctx context.Context, coll string, id any) (int64, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return 0, err
	}

	res, err := g.db.Collection(coll).DeleteOne(ctx, byID(oid))
	if err != nil {
		return 0, g.translate("delete_one", coll, err)
	}
	g.logger.DebugContext(ctx, "document deleted", "collection", coll, "id", oid.Hex(), "deleted", res.DeletedCount)
	return res.DeletedCount, nil
}

func (g *Gateway) DeleteMany(ctx context.Context, coll string, filter any) (int64, error) {
	res, err := g.db.Collection(coll).DeleteMany(ctx, orEmpty(filter))
	if err != nil {
		return 0, g.translate("delete_many", coll, err)
	}
	return res.DeletedCount, nil
}

func (g *Gateway) Count(ctx context.Context, coll string, filter any) (int64, error) {
	n, err := g.db.Collection(coll).CountDocuments(ctx, orEmpty(filter))
	if err != nil {
		return 0, g.translate("count", coll, err)
	}
	return n, nil
}

// EnsureExists is FindByID for call sites that require the document.
func (g *Gateway) EnsureExists(ctx context.Context, coll string, id any, out any) error {
	found, err := g.FindByID(ctx, coll, id, out)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound(notFoundMessage(coll))
	}
	return nil
}

// Push appends value to the array field of one document atomically. It
// fails with NotFound when the document does not exist.
func (g *Gateway) Push(ctx context.Context, coll string, id any, field string, value any) error {
	oid, err := docid.Parse(id)
	if err != nil {
		return err
	}

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: field, Value: value}}},
		{Key: "$set", Value: bson.D{{Key: fieldUpdatedAt, Value: g.now()}}},
	}
	res, err := g.db.Collection(coll).UpdateOne(ctx, byID(oid), update)
	if err != nil {
		return g.translate("push", coll, err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound(notFoundMessage(coll))
	}
	return nil
}

// AppendUnique pushes value onto the array field of one document unless it
// is already there, in a single atomic update. The presence check matches
// both the native id and its hex form. It returns false when the value was
// already present and NotFound when the document does not exist.
func (g *Gateway) AppendUnique(ctx context.Context, coll string, id any, field string, value primitive.ObjectID) (bool, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return false, err
	}

	filter := bson.D{
		{Key: fieldID, Value: oid},
		{Key: field, Value: bson.D{{Key: "$nin", Value: bson.A{value, value.Hex()}}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: field, Value: value}}},
		{Key: "$set", Value: bson.D{{Key: fieldUpdatedAt, Value: g.now()}}},
	}

	res, err := g.db.Collection(coll).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, g.translate("append_unique", coll, err)
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	n, err := g.Count(ctx, coll, byID(oid))
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, apperror.NotFound(notFoundMessage(coll))
	}
	return false, nil
}

// Pull removes every occurrence of value (native or hex) from the array field.
func (g *Gateway) Pull(ctx context.Context, coll string, id any, field string, value primitive.ObjectID) (int64, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return 0, err
	}

	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: field, Value: bson.D{{Key: "$in", Value: bson.A{value, value.Hex()}}}}}},
		{Key: "$set", Value: bson.D{{Key: fieldUpdatedAt, Value: g.now()}}},
	}
	res, err := g.db.Collection(coll).UpdateOne(ctx, byID(oid), update)
	if err != nil {
		return 0, g.translate("pull", coll, err)
	}
	return res.ModifiedCount, nil
}

func (g *Gateway) CreateIndex(ctx context.Context, coll string, keys bson.D, unique bool) (string, error) {
	model := mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(unique)}
	name, err := g.db.Collection(coll).Indexes().CreateOne(ctx, model)
	if err != nil {
		return "", g.translate("create_index", coll, err)
	}
	g.logger.InfoContext(ctx, "index ensured", "collection", coll, "index", name, "unique", unique)
	return name, nil
}

// stamp sets created_at (when unset) and updated_at on a document about to
// be inserted. Typed documents stamp themselves; maps are stamped in place.
func (g *Gateway) stamp(doc any) any {
	now := g.now()
	switch d := doc.(type) {
	case domain.Stamper:
		d.Stamp(now)
	case bson.M:
		if _, ok := d[fieldCreatedAt]; !ok {
			d[fieldCreatedAt] = now
		}
		d[fieldUpdatedAt] = now
	case bson.D:
		hasCreated := false
		out := make(bson.D, 0, len(d)+2)
		for _, e := range d {
			switch e.Key {
			case fieldUpdatedAt:
				continue
			case fieldCreatedAt:
				hasCreated = true
			}
			out = append(out, e)
		}
		if !hasCreated {
			out = append(out, bson.E{Key: fieldCreatedAt, Value: now})
		}
		return append(out, bson.E{Key: fieldUpdatedAt, Value: now})
	}
	return doc
}

func (g *Gateway) withUpdatedAt(set bson.D) bson.D {
	out := make(bson.D, 0, len(set)+1)
	for _, e := range set {
		if e.Key != fieldUpdatedAt {
			out = append(out, e)
		}
	}
	return append(out, bson.E{Key: fieldUpdatedAt, Value: g.now()})
}

func (g *Gateway) translate(op, coll string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if mongo.IsDuplicateKeyError(err) {
		g.logger.Warn("duplicate key", "op", op, "collection", coll, "error", err)
		return apperror.Duplicate(fmt.Sprintf("%s already exists", entityName(coll)))
	}
	g.logger.Error("database operation failed", "op", op, "collection", coll, "error", err)
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Store("Database operation timed out", err)
	}
	return apperror.Store("Database error", err)
}

func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: fieldID, Value: oid}}
}

func sortDoc(fields []domain.SortField) bson.D {
	d := make(bson.D, 0, len(fields))
	for _, f := range fields {
		dir := f.Direction
		if dir != domain.Descending {
			dir = domain.Ascending
		}
		d = append(d, bson.E{Key: f.Field, Value: dir})
	}
	return d
}

func orEmpty(filter any) any {
	if filter == nil {
		return bson.D{}
	}
	return filter
}

func entityName(coll string) string {
	switch coll {
	case domain.CollectionUsers:
		return "User"
	case domain.CollectionCompanies:
		return "Company"
	case domain.CollectionJobs:
		return "Job"
	case domain.CollectionApplications:
		return "Application"
	}
	return "Document"
}

func notFoundMessage(coll string) string {
	return entityName(coll) + " not found"
}
