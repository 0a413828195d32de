package impl

import (
	"io"
	"log/slog"

	"vestira/internal/domain/entity"
	"vestira/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(id uuid.UUID) *entity.Account {
	return &entity.Account{
		ID:       id,
		Kind:     entity.KindUser,
		Email:    "user@example.com",
		Username: "someuser",
	}
}

func newTestPartner(id uuid.UUID) *entity.Account {
	return &entity.Account{
		ID:         id,
		Kind:       entity.KindPartner,
		Email:      "partner@example.com",
		Name:       "Partner Person",
		BrandName:  "Brand Co",
		ProfilePic: entity.DefaultProfilePic,
	}
}

func newSessionClaims(accountID uuid.UUID, kind entity.AccountKind) *service.SessionClaims {
	return &service.SessionClaims{
		AccountID: accountID,
		Kind:      kind,
	}
}

func newTestReel(id, partnerID uuid.UUID, price float64) *entity.Reel {
	return &entity.Reel{
		ID:        id,
		PartnerID: partnerID,
		Partner:   newTestPartner(partnerID),
		VideoURL:  "https://cdn.example.com/videos/" + id.String() + ".mp4",
		Caption:   "fresh drop",
		Price:     price,
	}
}
