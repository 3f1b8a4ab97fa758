package users

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered storefront account
type User struct {
	ID                          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email                       string             `bson:"email" json:"email"`
	FirstName                   string             `bson:"firstName" json:"firstName"`
	LastName                    string             `bson:"lastName" json:"lastName"`
	CountryCode                 string             `bson:"countryCode" json:"countryCode"`
	Phone                       string             `bson:"phone" json:"phone"`
	Password                    string             `bson:"password" json:"-"`
	AgreeWithNewslettersReceive bool               `bson:"agreeWithNewslettersReceive" json:"agreeWithNewslettersReceive"`
	BusinessName                string             `bson:"businessName,omitempty" json:"businessName,omitempty"`
	VatNumber                   string             `bson:"vatNumber,omitempty" json:"vatNumber,omitempty"`
}

// RegisterRequest represents the payload for creating a new account
type RegisterRequest struct {
	Email                       string `json:"email" binding:"required,email"`
	Password                    string `json:"password" binding:"required,min=6"`
	FirstName                   string `json:"firstName" binding:"required"`
	LastName                    string `json:"lastName"`
	CountryCode                 string `json:"countryCode"`
	Phone                       string `json:"phone"`
	AgreeWithNewslettersReceive bool   `json:"agreeWithNewslettersReceive"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateNameRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// UpdatePhoneRequest carries the dialing code and the national number; the
// number is stored in the user's phone field.
type UpdatePhoneRequest struct {
	CountryCode string `json:"countryCode" binding:"required"`
	Number      string `json:"number" binding:"required"`
}

type UpdateBusinessDetailsRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	VatNumber    string `json:"vatNumber" binding:"required"`
}
