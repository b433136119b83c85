package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a job seeker as stored in the users collection.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"first_name" json:"first_name"`
	LastName       string             `bson:"last_name" json:"last_name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	City           string             `bson:"city,omitempty" json:"city,omitempty"`
	Country        string             `bson:"country,omitempty" json:"country,omitempty"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	Resume         string             `bson:"resume,omitempty" json:"resume,omitempty"`
	Skills         []string           `bson:"skills" json:"skills"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	Timestamps     `bson:",inline"`
}

func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

// Experience is an entry of User.Experience. Its id is a generated string,
// not a document key.
type Experience struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Company     string     `bson:"company" json:"company"`
	Location    string     `bson:"location,omitempty" json:"location,omitempty"`
	StartDate   time.Time  `bson:"start_date" json:"start_date"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Current     bool       `bson:"current" json:"current"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Timestamps  `bson:",inline"`
}

type Education struct {
	ID          string     `bson:"id" json:"id"`
	Institution string     `bson:"institution" json:"institution"`
	Degree      string     `bson:"degree" json:"degree"`
	Field       string     `bson:"field" json:"field"`
	StartDate   time.Time  `bson:"start_date" json:"start_date"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Current     bool       `bson:"current" json:"current"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Timestamps  `bson:",inline"`
}

// UserUpdate is a partial profile update; nil fields are left untouched.
// Email and password are not updatable through it.
type UserUpdate struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	Address        *string
	City           *string
	Country        *string
	ProfilePicture *string
	Resume         *string
	Skills         *[]string
}

func (u UserUpdate) SetDoc() bson.D {
	var set bson.D
	set = appendSet(set, "first_name", u.FirstName)
	set = appendSet(set, "last_name", u.LastName)
	set = appendSet(set, "phone", u.Phone)
	set = appendSet(set, "address", u.Address)
	set = appendSet(set, "city", u.City)
	set = appendSet(set, "country", u.Country)
	set = appendSet(set, "profile_picture", u.ProfilePicture)
	set = appendSet(set, "resume", u.Resume)
	set = appendSet(set, "skills", u.Skills)
	return set
}

type UserRepository interface {
	// Create hashes user.Password, applies defaults and rejects a taken email.
	Create(ctx context.Context, user *User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (int64, error)
	UpdatePassword(ctx context.Context, id, password string) (int64, error)
	// Authenticate returns nil without an error for any credential mismatch.
	Authenticate(ctx context.Context, email, password string) (*User, error)
	AddExperience(ctx context.Context, userID string, exp Experience) (string, error)
	AddEducation(ctx context.Context, userID string, edu Education) (string, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, upd UserUpdate) (*User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	AddExperience(ctx context.Context, userID string, exp Experience) (*User, error)
	AddEducation(ctx context.Context, userID string, edu Education) (*User, error)
	ListApplications(ctx context.Context, userID string, page Page) ([]ApplicationDetail, int64, error)
}
