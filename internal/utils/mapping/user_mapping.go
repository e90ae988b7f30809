package mapping

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Name:           d.Name,
		Username:       d.Username,
		Email:          TextFromString(d.Email),
		PasswordHash:   TextFromString(d.PasswordHash),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: TextFromString(d.ProviderUserID),
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Username:       m.Username,
		Email:          StringFromText(m.Email),
		PasswordHash:   StringFromText(m.PasswordHash),
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: StringFromText(m.ProviderUserID),
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainSlice converts a slice of rows with the given mapper.
func ToDomainSlice[M any, D any](ms []M, fn func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = fn(m)
	}
	return ds
}
