package mongodb

import (
	"regexp"

	"go-jobsearch-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildJobFilter turns search filters into a query. Search and Count both
// go through it so they always agree. Unset clauses are skipped and the
// rest are ANDed; keyword and location are case-insensitive substring
// matches.
func BuildJobFilter(f domain.JobFilters) bson.D {
	filter := bson.D{}

	if f.Keyword != "" {
		kw := containsInsensitive(f.Keyword)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: kw}},
			bson.D{{Key: "description", Value: kw}},
			bson.D{{Key: "requirements", Value: kw}},
		}})
	}

	if f.Location != "" {
		filter = append(filter, bson.E{Key: "location", Value: containsInsensitive(f.Location)})
	}

	if f.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: f.Type})
	}

	if f.CompanyID != nil && !f.CompanyID.IsZero() {
		filter = append(filter, bson.E{Key: "company_id", Value: *f.CompanyID})
	}

	if f.MinSalary != nil {
		filter = append(filter, bson.E{Key: "salary.min", Value: bson.D{{Key: "$gte", Value: *f.MinSalary}}})
	}

	if f.MaxSalary != nil {
		filter = append(filter, bson.E{Key: "salary.max", Value: bson.D{{Key: "$lte", Value: *f.MaxSalary}}})
	}

	return filter
}

func containsInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
